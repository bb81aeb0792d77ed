package reservation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/hotel-management/internal/transport"
	"github.com/frahmantamala/hotel-management/pkg/logger"
)

type ServiceAPI interface {
	ArrivalsForDate(date time.Time, limit, offset int) ([]*Reservation, int64, error)
	DeparturesForDate(date time.Time, limit, offset int) ([]*Reservation, int64, error)
	CreateCheckIn(ctx context.Context, dto CreateReservationDTO) (*Reservation, error)
	CheckOut(ctx context.Context, id int64) (*Reservation, error)
	Cancel(ctx context.Context, id int64) (*Reservation, error)
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

// ListCheckIns handles GET /reservations/check-ins?date=YYYY-MM-DD.
func (h *Handler) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}
	page := transport.PaginationFromRequest(r)

	reservations, total, err := h.Service.ArrivalsForDate(date, page.Limit(), page.Offset())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.PaginatedResponse{
		Data:       reservations,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: total,
	})
}

// ListCheckOuts handles GET /reservations/check-outs?date=YYYY-MM-DD.
func (h *Handler) ListCheckOuts(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}
	page := transport.PaginationFromRequest(r)

	reservations, total, err := h.Service.DeparturesForDate(date, page.Limit(), page.Offset())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.PaginatedResponse{
		Data:       reservations,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: total,
	})
}

// CreateCheckIn handles POST /reservations/check-ins.
func (h *Handler) CreateCheckIn(w http.ResponseWriter, r *http.Request) {
	var dto CreateReservationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reservation, err := h.Service.CreateCheckIn(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, reservation)
}

// CheckOut handles POST /reservations/{id}/check-out.
func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	reservation, err := h.Service.CheckOut(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, reservation)
}

// Cancel handles POST /reservations/{id}/cancel.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	reservation, err := h.Service.Cancel(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, reservation)
}

func (h *Handler) dateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now(), true
	}
	date, err := time.Parse(DateFormat, raw)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}

func (h *Handler) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid reservation id")
		return 0, false
	}
	return id, true
}
