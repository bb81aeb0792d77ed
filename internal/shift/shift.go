package shift

import (
	"errors"
	"regexp"
	"time"
)

// ShiftEntry is one staff member's working window on a weekday. The schedule
// is weekly: at most one entry may exist per (staff, day), enforced here and
// by a unique index in the database.
type ShiftEntry struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	StaffID   int64     `json:"staff_id" gorm:"column:staff_id;not null;uniqueIndex:idx_shifts_staff_day"`
	DayOfWeek string    `json:"day_of_week" gorm:"column:day_of_week;not null;uniqueIndex:idx_shifts_staff_day"`
	StartTime string    `json:"start_time" gorm:"column:start_time;not null"`
	EndTime   string    `json:"end_time" gorm:"column:end_time;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (ShiftEntry) TableName() string {
	return "shifts"
}

// DayNames lists valid values for ShiftEntry.DayOfWeek, in week order.
var DayNames = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func IsValidDay(day string) bool {
	for _, d := range DayNames {
		if d == day {
			return true
		}
	}
	return false
}

// timePattern is the strict zero-padded 24-hour shape. Lexicographic
// comparison of matching values equals chronological comparison.
var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ValidateTimeRange checks both times against the HH:MM pattern and requires
// startTime to precede endTime within the same day.
func ValidateTimeRange(startTime, endTime string) error {
	if !timePattern.MatchString(startTime) || !timePattern.MatchString(endTime) {
		return ErrInvalidTimeFormat
	}
	if startTime[:2] > "23" || startTime[3:] > "59" || endTime[:2] > "23" || endTime[3:] > "59" {
		return ErrInvalidTimeFormat
	}
	if startTime >= endTime {
		return ErrInvalidTimeRange
	}
	return nil
}

// Domain errors
var (
	ErrInvalidTimeFormat = errors.New("time must match HH:MM 24-hour format")
	ErrInvalidTimeRange  = errors.New("start time must be before end time")
	ErrInvalidDay        = errors.New("invalid day of week")
	ErrEntryNotFound     = errors.New("shift entry not found")
	ErrSyncInFlight      = errors.New("shift sync already in progress")
)
