package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeGuestCheckedIn  = "reservation.checked_in"
	EventTypeGuestCheckedOut = "reservation.checked_out"
	EventTypeRoomIssueRaised = "room.issue_raised"
)

type GuestCheckedInEvent struct {
	BaseEvent
	ReservationID int64  `json:"reservation_id"`
	CustomerID    int64  `json:"customer_id"`
	RoomNumber    string `json:"room_number"`
}

func NewGuestCheckedInEvent(reservationID, customerID int64, roomNumber string) *GuestCheckedInEvent {
	return &GuestCheckedInEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeGuestCheckedIn,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"reservation_id": reservationID,
				"customer_id":    customerID,
				"room_number":    roomNumber,
			},
		},
		ReservationID: reservationID,
		CustomerID:    customerID,
		RoomNumber:    roomNumber,
	}
}

type GuestCheckedOutEvent struct {
	BaseEvent
	ReservationID int64  `json:"reservation_id"`
	CustomerID    int64  `json:"customer_id"`
	RoomNumber    string `json:"room_number"`
	TotalAmount   int64  `json:"total_amount"`
}

func NewGuestCheckedOutEvent(reservationID, customerID int64, roomNumber string, totalAmount int64) *GuestCheckedOutEvent {
	return &GuestCheckedOutEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeGuestCheckedOut,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"reservation_id": reservationID,
				"customer_id":    customerID,
				"room_number":    roomNumber,
				"total_amount":   totalAmount,
			},
		},
		ReservationID: reservationID,
		CustomerID:    customerID,
		RoomNumber:    roomNumber,
		TotalAmount:   totalAmount,
	}
}

type RoomIssueRaisedEvent struct {
	BaseEvent
	RoomID      int64  `json:"room_id"`
	RoomNumber  string `json:"room_number"`
	Description string `json:"description"`
}

func NewRoomIssueRaisedEvent(roomID int64, roomNumber, description string) *RoomIssueRaisedEvent {
	return &RoomIssueRaisedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeRoomIssueRaised,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"room_id":     roomID,
				"room_number": roomNumber,
				"description": description,
			},
		},
		RoomID:      roomID,
		RoomNumber:  roomNumber,
		Description: description,
	}
}
