package reservation

import (
	"time"

	"github.com/frahmantamala/hotel-management/internal"
)

// CreateReservationDTO is the payload for the check-in creation endpoint.
// Dates arrive as YYYY-MM-DD strings.
type CreateReservationDTO struct {
	CustomerID   int64  `json:"customer_id"`
	RoomID       int64  `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	NumGuests    int    `json:"num_guests"`
	TotalAmount  int64  `json:"total_amount"`
	Notes        string `json:"notes,omitempty"`
}

func (dto *CreateReservationDTO) Validate() error {
	if dto.CustomerID <= 0 {
		return internal.NewValidationFieldError("customer_id", "customer is required", internal.ErrCodeValidationFailed)
	}
	if dto.RoomID <= 0 {
		return internal.NewValidationFieldError("room_id", "room is required", internal.ErrCodeValidationFailed)
	}

	checkIn, err := time.Parse(DateFormat, dto.CheckInDate)
	if err != nil {
		return internal.NewValidationFieldError("check_in_date", "must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	checkOut, err := time.Parse(DateFormat, dto.CheckOutDate)
	if err != nil {
		return internal.NewValidationFieldError("check_out_date", "must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	if !checkOut.After(checkIn) {
		return internal.NewValidationError("check_out_date must be after check_in_date", internal.ErrCodeInvalidDate)
	}

	if dto.NumGuests < 0 {
		return internal.NewValidationFieldError("num_guests", "must not be negative", internal.ErrCodeValidationFailed)
	}
	if dto.TotalAmount < 0 {
		return internal.NewValidationFieldError("total_amount", "must not be negative", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (dto *CreateReservationDTO) Dates() (checkIn, checkOut time.Time) {
	checkIn, _ = time.Parse(DateFormat, dto.CheckInDate)
	checkOut, _ = time.Parse(DateFormat, dto.CheckOutDate)
	return checkIn, checkOut
}
