package shift

import (
	"context"
	"log/slog"
	"sync"
)

// Store is the persistence contract for shift schedules. There is no
// per-entry write: the only mutation is replacing a staff member's entire
// list, so every reconciler mutation resends the full set. ReplaceForStaff
// returns the persisted entries so ids assigned by the store can be adopted.
type Store interface {
	GetForStaff(ctx context.Context, staffID int64) ([]ShiftEntry, error)
	ReplaceForStaff(ctx context.Context, staffID int64, entries []ShiftEntry) ([]ShiftEntry, error)
}

// SyncState describes the reconciler's position in its sync cycle.
type SyncState int

const (
	// StateIdle means local state and the store agreed at last contact.
	StateIdle SyncState = iota
	// StatePending means a replace-all write is in flight.
	StatePending
	// StateFailedRetained means the last write failed and the optimistic
	// local state was kept rather than rolled back.
	StateFailedRetained
)

func (s SyncState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateFailedRetained:
		return "failed_retained"
	default:
		return "idle"
	}
}

// Reconciler maintains one staff member's weekly shift list and its day index
// under add/edit/delete intents.
//
// Mutations are optimistic: local state is updated first, then the full list
// is written to the store. On a write failure local state is retained, the
// state machine moves to FailedRetained and the error is surfaced to the
// caller; nothing is rolled back. A single in-flight flag serializes
// overlapping operations by skipping the late arrival, not by queueing it.
type Reconciler struct {
	staffID int64
	store   Store
	logger  *slog.Logger

	mu       sync.Mutex
	inFlight bool
	state    SyncState
	shifts   []ShiftEntry
	byDay    map[string][]ShiftEntry
}

func NewReconciler(staffID int64, store Store, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		staffID: staffID,
		store:   store,
		logger:  logger,
		byDay:   map[string][]ShiftEntry{},
	}
}

// Shifts returns a copy of the current local list.
func (r *Reconciler) Shifts() []ShiftEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyShifts(r.shifts)
}

// ShiftsByDay returns a copy of the derived day index.
func (r *Reconciler) ShiftsByDay() map[string][]ShiftEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string][]ShiftEntry, len(r.byDay))
	for day, entries := range r.byDay {
		out[day] = copyShifts(entries)
	}
	return out
}

// State reports the current sync state.
func (r *Reconciler) State() SyncState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Upsert applies an add-or-edit intent and resends the full list.
//
// With existingID set, that entry's day and time fields are replaced in
// place. Without it, an entry already occupying dayOfWeek is overwritten
// keeping its id; the add path is an implicit upsert-by-day, which the
// schedule screen relies on. Only when the day is free is a new entry
// appended. Validation failures reject before any store call.
func (r *Reconciler) Upsert(ctx context.Context, dayOfWeek, startTime, endTime string, existingID int64) ([]ShiftEntry, error) {
	if !IsValidDay(dayOfWeek) {
		return r.Shifts(), ErrInvalidDay
	}
	if err := ValidateTimeRange(startTime, endTime); err != nil {
		return r.Shifts(), err
	}

	r.mu.Lock()
	if r.inFlight {
		r.logger.Warn("shift upsert skipped: sync in flight", "staff_id", r.staffID)
		snapshot := copyShifts(r.shifts)
		r.mu.Unlock()
		return snapshot, ErrSyncInFlight
	}

	if existingID != 0 {
		idx := r.indexByID(existingID)
		if idx < 0 {
			snapshot := copyShifts(r.shifts)
			r.mu.Unlock()
			return snapshot, ErrEntryNotFound
		}
		// Editing onto an occupied day displaces that day's other entry,
		// keeping the one-per-day invariant.
		if other := r.indexByDay(dayOfWeek); other >= 0 && r.shifts[other].ID != existingID {
			r.shifts = append(r.shifts[:other], r.shifts[other+1:]...)
			idx = r.indexByID(existingID)
		}
		r.shifts[idx].DayOfWeek = dayOfWeek
		r.shifts[idx].StartTime = startTime
		r.shifts[idx].EndTime = endTime
	} else if idx := r.indexByDay(dayOfWeek); idx >= 0 {
		r.shifts[idx].StartTime = startTime
		r.shifts[idx].EndTime = endTime
	} else {
		r.shifts = append(r.shifts, ShiftEntry{
			StaffID:   r.staffID,
			DayOfWeek: dayOfWeek,
			StartTime: startTime,
			EndTime:   endTime,
		})
	}

	r.rebuildIndexLocked()
	return r.syncLocked(ctx)
}

// Remove deletes the entry with the given id and resends the reduced list.
func (r *Reconciler) Remove(ctx context.Context, id int64) ([]ShiftEntry, error) {
	r.mu.Lock()
	if r.inFlight {
		r.logger.Warn("shift remove skipped: sync in flight", "staff_id", r.staffID)
		snapshot := copyShifts(r.shifts)
		r.mu.Unlock()
		return snapshot, ErrSyncInFlight
	}

	idx := r.indexByID(id)
	if idx < 0 {
		snapshot := copyShifts(r.shifts)
		r.mu.Unlock()
		return snapshot, ErrEntryNotFound
	}

	r.shifts = append(r.shifts[:idx], r.shifts[idx+1:]...)
	r.rebuildIndexLocked()
	return r.syncLocked(ctx)
}

// ReplaceAll overwrites the whole local list after validating every entry,
// then persists it. This backs the bulk write endpoint.
func (r *Reconciler) ReplaceAll(ctx context.Context, entries []ShiftEntry) ([]ShiftEntry, error) {
	seen := map[string]bool{}
	for _, e := range entries {
		if !IsValidDay(e.DayOfWeek) {
			return r.Shifts(), ErrInvalidDay
		}
		if err := ValidateTimeRange(e.StartTime, e.EndTime); err != nil {
			return r.Shifts(), err
		}
		if seen[e.DayOfWeek] {
			return r.Shifts(), ErrInvalidDay
		}
		seen[e.DayOfWeek] = true
	}

	r.mu.Lock()
	if r.inFlight {
		r.logger.Warn("shift replace-all skipped: sync in flight", "staff_id", r.staffID)
		snapshot := copyShifts(r.shifts)
		r.mu.Unlock()
		return snapshot, ErrSyncInFlight
	}

	r.shifts = copyShifts(entries)
	for i := range r.shifts {
		r.shifts[i].StaffID = r.staffID
	}
	r.rebuildIndexLocked()
	return r.syncLocked(ctx)
}

// Reload fetches the authoritative list and replaces local state. A non-empty
// local list is never clobbered by an empty fetch result; an empty result is
// adopted only when local state was already empty. The guard covers a store
// that transiently reports an erroneous empty list.
func (r *Reconciler) Reload(ctx context.Context) ([]ShiftEntry, error) {
	r.mu.Lock()
	if r.inFlight {
		snapshot := copyShifts(r.shifts)
		r.mu.Unlock()
		return snapshot, ErrSyncInFlight
	}
	r.inFlight = true
	prev := r.state
	r.state = StatePending
	localCount := len(r.shifts)
	r.mu.Unlock()

	fetched, err := r.store.GetForStaff(ctx, r.staffID)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight = false

	if err != nil {
		r.state = prev
		r.logger.Error("shift reload failed, keeping local state",
			"staff_id", r.staffID, "error", err)
		return copyShifts(r.shifts), err
	}

	if len(fetched) == 0 && localCount > 0 {
		r.state = prev
		r.logger.Warn("shift reload returned empty list, keeping non-empty local state",
			"staff_id", r.staffID, "local_count", localCount)
		return copyShifts(r.shifts), nil
	}

	r.shifts = copyShifts(fetched)
	r.rebuildIndexLocked()
	r.state = StateIdle
	return copyShifts(r.shifts), nil
}

// syncLocked persists the current list. Called with r.mu held; releases it.
func (r *Reconciler) syncLocked(ctx context.Context) ([]ShiftEntry, error) {
	r.inFlight = true
	r.state = StatePending
	snapshot := copyShifts(r.shifts)
	r.mu.Unlock()

	persisted, err := r.store.ReplaceForStaff(ctx, r.staffID, snapshot)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight = false

	if err != nil {
		r.state = StateFailedRetained
		r.logger.Error("shift sync failed, retaining optimistic local state",
			"staff_id", r.staffID, "error", err)
		return copyShifts(r.shifts), err
	}

	// Adopt ids the store assigned to new entries.
	if len(persisted) == len(r.shifts) {
		r.shifts = copyShifts(persisted)
		r.rebuildIndexLocked()
	}
	r.state = StateIdle
	return copyShifts(r.shifts), nil
}

func (r *Reconciler) indexByID(id int64) int {
	for i := range r.shifts {
		if r.shifts[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Reconciler) indexByDay(day string) int {
	for i := range r.shifts {
		if r.shifts[i].DayOfWeek == day {
			return i
		}
	}
	return -1
}

func (r *Reconciler) rebuildIndexLocked() {
	byDay := make(map[string][]ShiftEntry, len(r.shifts))
	for _, entry := range r.shifts {
		byDay[entry.DayOfWeek] = append(byDay[entry.DayOfWeek], entry)
	}
	r.byDay = byDay
}

func copyShifts(in []ShiftEntry) []ShiftEntry {
	out := make([]ShiftEntry, len(in))
	copy(out, in)
	return out
}
