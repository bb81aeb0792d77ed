package postgres

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/hotel-management/internal/shift"
)

// ShiftRepository implements the shift.Store interface using GORM
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) shift.Store {
	return &ShiftRepository{db: db}
}

// GetForStaff retrieves a staff member's schedule in week order.
func (r *ShiftRepository) GetForStaff(ctx context.Context, staffID int64) ([]shift.ShiftEntry, error) {
	var entries []shift.ShiftEntry
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	sortWeekOrder(entries)
	return entries, nil
}

// ReplaceForStaff overwrites the staff member's schedule in one transaction.
// Entries arriving with an id keep it so edits stay stable across the
// delete-and-insert; new entries get ids from the sequence. The persisted
// rows are returned so callers can adopt assigned ids.
func (r *ShiftRepository) ReplaceForStaff(ctx context.Context, staffID int64, entries []shift.ShiftEntry) ([]shift.ShiftEntry, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staffID).Delete(&shift.ShiftEntry{}).Error; err != nil {
			return err
		}

		now := time.Now()
		for i := range entries {
			entries[i].StaffID = staffID
			entries[i].UpdatedAt = now
			if entries[i].CreatedAt.IsZero() {
				entries[i].CreatedAt = now
			}
		}

		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		return nil, err
	}

	sortWeekOrder(entries)
	return entries, nil
}

func sortWeekOrder(entries []shift.ShiftEntry) {
	rank := make(map[string]int, len(shift.DayNames))
	for i, d := range shift.DayNames {
		rank[d] = i
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return rank[entries[i].DayOfWeek] < rank[entries[j].DayOfWeek]
	})
}
