package reservation

import (
	"time"

	"github.com/frahmantamala/hotel-management/internal"
)

const (
	StatusReserved   = "reserved"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

// DateFormat is the wire format for stay dates.
const DateFormat = "2006-01-02"

// Reservation ties a customer to a room for a date range.
type Reservation struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	CustomerID   int64      `json:"customer_id" gorm:"column:customer_id;not null"`
	RoomID       int64      `json:"room_id" gorm:"column:room_id;not null"`
	CheckInDate  time.Time  `json:"check_in_date" gorm:"column:check_in_date;type:date;not null"`
	CheckOutDate time.Time  `json:"check_out_date" gorm:"column:check_out_date;type:date;not null"`
	Status       string     `json:"status" gorm:"column:status;default:reserved"`
	NumGuests    int        `json:"num_guests" gorm:"column:num_guests;default:1"`
	TotalAmount  int64      `json:"total_amount" gorm:"column:total_amount"`
	Notes        string     `json:"notes,omitempty" gorm:"column:notes"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty" gorm:"column:checked_in_at"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty" gorm:"column:checked_out_at"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Reservation) TableName() string {
	return "reservations"
}

func (r *Reservation) CanCheckIn() bool {
	return r.Status == StatusReserved
}

func (r *Reservation) CanCheckOut() bool {
	return r.Status == StatusCheckedIn
}

func (r *Reservation) CanCancel() bool {
	return r.Status == StatusReserved || r.Status == StatusCheckedIn
}

func (r *Reservation) MarkCheckedIn() {
	now := time.Now()
	r.Status = StatusCheckedIn
	r.CheckedInAt = &now
	r.UpdatedAt = now
}

func (r *Reservation) MarkCheckedOut() {
	now := time.Now()
	r.Status = StatusCheckedOut
	r.CheckedOutAt = &now
	r.UpdatedAt = now
}

func (r *Reservation) MarkCancelled() {
	r.Status = StatusCancelled
	r.UpdatedAt = time.Now()
}

var (
	ErrReservationNotFound = internal.NewNotFoundError("Reservation not found", internal.ErrCodeReservationNotFound)
	ErrAlreadyCheckedIn    = internal.NewConflictError("Reservation is already checked in", internal.ErrCodeRoomOccupied)
	ErrAlreadyCheckedOut   = internal.NewConflictError("Reservation is already checked out", internal.ErrCodeAlreadyCheckedOut)
	ErrNotCheckedIn        = internal.NewConflictError("Reservation has not been checked in", internal.ErrCodeValidationFailed)
)
