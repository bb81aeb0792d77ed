package shift

import "github.com/frahmantamala/hotel-management/internal"

// UpsertShiftDTO carries one add-or-edit intent. ID zero means add (or
// overwrite the entry already on that day); non-zero edits that entry.
type UpsertShiftDTO struct {
	ID        int64  `json:"id,omitempty"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (d *UpsertShiftDTO) Validate() error {
	if !IsValidDay(d.DayOfWeek) {
		return internal.NewValidationFieldError("day_of_week", "must be a weekday name, Monday through Sunday", internal.ErrCodeValidationFailed)
	}
	if err := ValidateTimeRange(d.StartTime, d.EndTime); err != nil {
		switch err {
		case ErrInvalidTimeFormat:
			return internal.NewValidationError("times must be in HH:MM 24-hour format", internal.ErrCodeValidationFailed)
		case ErrInvalidTimeRange:
			return internal.NewValidationError("start_time must be before end_time", internal.ErrCodeInvalidTimeRange)
		}
		return err
	}
	return nil
}

// ReplaceShiftsDTO carries a full weekly schedule for the bulk write endpoint.
type ReplaceShiftsDTO struct {
	Shifts []UpsertShiftDTO `json:"shifts"`
}

func (d *ReplaceShiftsDTO) Validate() error {
	seen := map[string]bool{}
	for i := range d.Shifts {
		if err := d.Shifts[i].Validate(); err != nil {
			return err
		}
		if seen[d.Shifts[i].DayOfWeek] {
			return internal.NewValidationFieldError("day_of_week", "at most one shift per day", internal.ErrCodeValidationFailed)
		}
		seen[d.Shifts[i].DayOfWeek] = true
	}
	return nil
}

// ShiftListResponse wraps the schedule with its sync state so callers can
// tell a confirmed list from an optimistically retained one.
type ShiftListResponse struct {
	Shifts    []ShiftEntry `json:"shifts"`
	SyncState string       `json:"sync_state"`
}
