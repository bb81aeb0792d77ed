package shift

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
	GetForStaff(ctx context.Context, staffID int64) ([]ShiftEntry, error)
	Upsert(ctx context.Context, staffID int64, dto UpsertShiftDTO) ([]ShiftEntry, error)
	Remove(ctx context.Context, staffID, shiftID int64) ([]ShiftEntry, error)
	ReplaceAll(ctx context.Context, staffID int64, entries []ShiftEntry) ([]ShiftEntry, error)
	StateForStaff(staffID int64) SyncState
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

// GetShifts handles GET /staff/{id}/shifts.
func (h *Handler) GetShifts(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.staffIDParam(w, r)
	if !ok {
		return
	}

	entries, err := h.Service.GetForStaff(r.Context(), staffID)
	if err != nil {
		h.Logger.Error("failed to load shifts", "staff_id", staffID, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.writeSchedule(w, http.StatusOK, staffID, entries)
}

// UpsertShift handles POST /staff/{id}/shifts: a single add-or-edit intent.
func (h *Handler) UpsertShift(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.staffIDParam(w, r)
	if !ok {
		return
	}

	var dto UpsertShiftDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	entries, err := h.Service.Upsert(r.Context(), staffID, dto)
	if err != nil {
		h.writeSyncError(w, staffID, entries, err)
		return
	}

	h.writeSchedule(w, http.StatusOK, staffID, entries)
}

// ReplaceShifts handles PUT /staff/{id}/shifts: overwrite the whole week.
func (h *Handler) ReplaceShifts(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.staffIDParam(w, r)
	if !ok {
		return
	}

	var dto ReplaceShiftsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	entries := make([]ShiftEntry, 0, len(dto.Shifts))
	for _, s := range dto.Shifts {
		entries = append(entries, ShiftEntry{
			ID:        s.ID,
			StaffID:   staffID,
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	result, err := h.Service.ReplaceAll(r.Context(), staffID, entries)
	if err != nil {
		h.writeSyncError(w, staffID, result, err)
		return
	}

	h.writeSchedule(w, http.StatusOK, staffID, result)
}

// DeleteShift handles DELETE /staff/{id}/shifts/{shiftId}.
func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.staffIDParam(w, r)
	if !ok {
		return
	}

	shiftID, err := strconv.ParseInt(chi.URLParam(r, "shiftId"), 10, 64)
	if err != nil || shiftID <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid shift id")
		return
	}

	entries, err := h.Service.Remove(r.Context(), staffID, shiftID)
	if err != nil {
		h.writeSyncError(w, staffID, entries, err)
		return
	}

	h.writeSchedule(w, http.StatusOK, staffID, entries)
}

func (h *Handler) staffIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	staffID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || staffID <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid staff id")
		return 0, false
	}
	return staffID, true
}

func (h *Handler) writeSchedule(w http.ResponseWriter, status int, staffID int64, entries []ShiftEntry) {
	if entries == nil {
		entries = []ShiftEntry{}
	}
	h.WriteJSON(w, status, ShiftListResponse{
		Shifts:    entries,
		SyncState: h.Service.StateForStaff(staffID).String(),
	})
}

// writeSyncError maps reconciler errors. A failed persist still returns the
// retained schedule so the caller sees what the server will retry from.
func (h *Handler) writeSyncError(w http.ResponseWriter, staffID int64, entries []ShiftEntry, err error) {
	switch err {
	case ErrSyncInFlight:
		h.WriteError(w, http.StatusConflict, "a schedule update is already in progress")
	case ErrEntryNotFound:
		h.WriteError(w, http.StatusNotFound, "shift entry not found")
	case ErrInvalidDay, ErrInvalidTimeFormat, ErrInvalidTimeRange:
		h.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.Logger.Error("shift sync failed", "staff_id", staffID, "error", err)
		if entries == nil {
			entries = []ShiftEntry{}
		}
		h.WriteJSON(w, http.StatusBadGateway, ShiftListResponse{
			Shifts:    entries,
			SyncState: h.Service.StateForStaff(staffID).String(),
		})
	}
}
