package room

import (
	"strings"

	"github.com/frahmantamala/hotel-management/internal"
)

// RoomDTO is the payload for create and update.
type RoomDTO struct {
	RoomNumber    string `json:"room_number"`
	RoomType      string `json:"room_type"`
	Floor         int    `json:"floor"`
	PricePerNight int64  `json:"price_per_night"`
	Status        string `json:"status,omitempty"`
	Description   string `json:"description,omitempty"`
}

func (dto *RoomDTO) Validate() error {
	if strings.TrimSpace(dto.RoomNumber) == "" {
		return internal.NewValidationFieldError("room_number", "room number is required", internal.ErrCodeValidationFailed)
	}
	if strings.TrimSpace(dto.RoomType) == "" {
		return internal.NewValidationFieldError("room_type", "room type is required", internal.ErrCodeValidationFailed)
	}
	if dto.PricePerNight <= 0 {
		return internal.NewValidationFieldError("price_per_night", "price must be greater than 0", internal.ErrCodeValidationFailed)
	}
	switch dto.Status {
	case "", StatusAvailable, StatusOccupied, StatusMaintenance:
	default:
		return internal.NewValidationFieldError("status", "unknown room status", internal.ErrCodeValidationFailed)
	}
	return nil
}

// ReportIssueDTO is the payload for reporting a maintenance issue.
type ReportIssueDTO struct {
	Description string `json:"description"`
	ReportedBy  string `json:"reported_by,omitempty"`
}

func (dto *ReportIssueDTO) Validate() error {
	if strings.TrimSpace(dto.Description) == "" {
		return internal.NewValidationFieldError("description", "description is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
