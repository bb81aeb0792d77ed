package room

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/hotel-management/internal/transport"
	"github.com/frahmantamala/hotel-management/pkg/logger"
)

type ServiceAPI interface {
	List(limit, offset int) ([]*Room, int64, error)
	GetByID(id int64) (*Room, error)
	Create(dto RoomDTO) (*Room, error)
	Update(id int64, dto RoomDTO) (*Room, error)
	Delete(id int64) error

	ListIssues(roomID int64, limit, offset int) ([]*MaintenanceIssue, int64, error)
	ReportIssue(ctx context.Context, roomID int64, dto ReportIssueDTO) (*MaintenanceIssue, error)
	ResolveIssue(roomID, issueID int64) (*MaintenanceIssue, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// List handles GET /rooms.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := transport.PaginationFromRequest(r)

	rooms, total, err := h.Service.List(page.Limit(), page.Offset())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.PaginatedResponse{
		Data:       rooms,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: total,
	})
}

// Get handles GET /rooms/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	room, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, room)
}

// Create handles POST /rooms.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto RoomDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, room)
}

// Update handles PUT /rooms/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	var dto RoomDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.Service.Update(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, room)
}

// Delete handles DELETE /rooms/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListIssues handles GET /rooms/{id}/issues.
func (h *Handler) ListIssues(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}
	page := transport.PaginationFromRequest(r)

	issues, total, err := h.Service.ListIssues(id, page.Limit(), page.Offset())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.PaginatedResponse{
		Data:       issues,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: total,
	})
}

// ReportIssue handles POST /rooms/{id}/issues.
func (h *Handler) ReportIssue(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	var dto ReportIssueDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	issue, err := h.Service.ReportIssue(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, issue)
}

// ResolveIssue handles POST /rooms/{id}/issues/{issueId}/resolve.
func (h *Handler) ResolveIssue(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	issueID, err := strconv.ParseInt(chi.URLParam(r, "issueId"), 10, 64)
	if err != nil || issueID <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid issue id")
		return
	}

	issue, err := h.Service.ResolveIssue(id, issueID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, issue)
}

func (h *Handler) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid room id")
		return 0, false
	}
	return id, true
}
