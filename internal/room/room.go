package room

import (
	"time"

	"github.com/frahmantamala/hotel-management/internal"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

const (
	IssueStatusOpen     = "open"
	IssueStatusResolved = "resolved"
)

// Room is a bookable hotel room.
type Room struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	RoomNumber    string    `json:"room_number" gorm:"column:room_number;uniqueIndex;not null"`
	RoomType      string    `json:"room_type" gorm:"column:room_type;not null"`
	Floor         int       `json:"floor" gorm:"column:floor"`
	PricePerNight int64     `json:"price_per_night" gorm:"column:price_per_night;not null"`
	Status        string    `json:"status" gorm:"column:status;default:available"`
	Description   string    `json:"description,omitempty" gorm:"column:description"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Room) TableName() string {
	return "rooms"
}

func (r *Room) IsAvailable() bool {
	return r.Status == StatusAvailable
}

// MaintenanceIssue is a defect reported against a room. A room with open
// issues is held out of the bookable pool until they are resolved.
type MaintenanceIssue struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	RoomID      int64      `json:"room_id" gorm:"column:room_id;not null;index"`
	Description string     `json:"description" gorm:"column:description;not null"`
	ReportedBy  string     `json:"reported_by,omitempty" gorm:"column:reported_by"`
	Status      string     `json:"status" gorm:"column:status;default:open"`
	ReportedAt  time.Time  `json:"reported_at" gorm:"column:reported_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty" gorm:"column:resolved_at"`
}

// TableName returns the table name for GORM
func (MaintenanceIssue) TableName() string {
	return "room_maintenance_issues"
}

var (
	ErrRoomNotFound  = internal.NewNotFoundError("Room not found", internal.ErrCodeRoomNotFound)
	ErrIssueNotFound = internal.NewNotFoundError("Maintenance issue not found", internal.ErrCodeEntryNotFound)
	ErrDuplicateRoom = internal.NewConflictError("Room number already exists", internal.ErrCodeValidationFailed)
)
