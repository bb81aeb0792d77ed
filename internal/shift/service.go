package shift

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/frahmantamala/hotel-management/internal/core/events"
	"github.com/google/uuid"
)

const EventShiftsReplaced = "shifts.replaced"

// Service owns one reconciler per staff member and translates transport
// intents into reconciler operations.
type Service struct {
	store  Store
	bus    *events.EventBus
	logger *slog.Logger

	mu          sync.Mutex
	reconcilers map[int64]*Reconciler
}

func NewService(store Store, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		store:       store,
		bus:         bus,
		logger:      logger,
		reconcilers: make(map[int64]*Reconciler),
	}
}

// reconcilerFor returns the staff member's reconciler, creating and priming
// it from the store on first use. A reconciler is only cached once its priming
// reload succeeded: an unprimed one holds an empty list, and mutating through
// it would replace-all the store from state that was never loaded.
func (s *Service) reconcilerFor(ctx context.Context, staffID int64) (*Reconciler, error) {
	s.mu.Lock()
	rec, ok := s.reconcilers[staffID]
	if !ok {
		rec = NewReconciler(staffID, s.store, s.logger)
		s.reconcilers[staffID] = rec
	}
	s.mu.Unlock()

	if !ok {
		if _, err := rec.Reload(ctx); err != nil {
			s.mu.Lock()
			if s.reconcilers[staffID] == rec {
				delete(s.reconcilers, staffID)
			}
			s.mu.Unlock()
			return nil, err
		}
	}
	return rec, nil
}

// GetForStaff returns the staff member's current weekly shift list.
func (s *Service) GetForStaff(ctx context.Context, staffID int64) ([]ShiftEntry, error) {
	rec, err := s.reconcilerFor(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return rec.Shifts(), nil
}

// StateForStaff reports the staff member's reconciler sync state. Staff with
// no reconciler yet are idle by definition.
func (s *Service) StateForStaff(staffID int64) SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.reconcilers[staffID]; ok {
		return rec.State()
	}
	return StateIdle
}

// Upsert applies a single add-or-edit intent for the staff member.
func (s *Service) Upsert(ctx context.Context, staffID int64, dto UpsertShiftDTO) ([]ShiftEntry, error) {
	rec, err := s.reconcilerFor(ctx, staffID)
	if err != nil {
		return nil, err
	}

	entries, err := rec.Upsert(ctx, dto.DayOfWeek, dto.StartTime, dto.EndTime, dto.ID)
	if err != nil {
		return entries, err
	}

	s.publishReplaced(ctx, staffID, len(entries))
	return entries, nil
}

// Remove deletes one entry from the staff member's schedule.
func (s *Service) Remove(ctx context.Context, staffID, shiftID int64) ([]ShiftEntry, error) {
	rec, err := s.reconcilerFor(ctx, staffID)
	if err != nil {
		return nil, err
	}

	entries, err := rec.Remove(ctx, shiftID)
	if err != nil {
		return entries, err
	}

	s.publishReplaced(ctx, staffID, len(entries))
	return entries, nil
}

// ReplaceAll overwrites the staff member's entire schedule.
func (s *Service) ReplaceAll(ctx context.Context, staffID int64, entries []ShiftEntry) ([]ShiftEntry, error) {
	rec, err := s.reconcilerFor(ctx, staffID)
	if err != nil {
		return nil, err
	}

	result, err := rec.ReplaceAll(ctx, entries)
	if err != nil {
		return result, err
	}

	s.publishReplaced(ctx, staffID, len(result))
	return result, nil
}

// ResyncAll reloads every active reconciler from the store. Reconcilers with
// an operation in flight skip the tick; it is dropped, not queued.
func (s *Service) ResyncAll(ctx context.Context) {
	s.mu.Lock()
	recs := make([]*Reconciler, 0, len(s.reconcilers))
	for _, rec := range s.reconcilers {
		recs = append(recs, rec)
	}
	s.mu.Unlock()

	for _, rec := range recs {
		if _, err := rec.Reload(ctx); err != nil {
			if err == ErrSyncInFlight {
				s.logger.Debug("shift resync tick dropped: operation in flight", "staff_id", rec.staffID)
				continue
			}
			s.logger.Error("shift resync failed", "staff_id", rec.staffID, "error", err)
		}
	}
}

func (s *Service) publishReplaced(ctx context.Context, staffID int64, count int) {
	if s.bus == nil {
		return
	}

	event := events.BaseEvent{
		ID:        uuid.NewString(),
		Type:      EventShiftsReplaced,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"staff_id":    staffID,
			"shift_count": count,
		},
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish shifts replaced event", "staff_id", staffID, "error", err)
	}
}
