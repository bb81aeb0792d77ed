package reservation

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/hotel-management/internal/core/events"
)

// Repository interface defines the data access methods for reservations
type Repository interface {
	Create(reservation *Reservation) error
	GetByID(id int64) (*Reservation, error)
	ListArrivalsByDate(date time.Time, limit, offset int) ([]*Reservation, int64, error)
	ListDeparturesByDate(date time.Time, limit, offset int) ([]*Reservation, int64, error)
	Update(reservation *Reservation) error
}

// RoomChecker reports whether a room can host a new stay.
type RoomChecker interface {
	IsAvailable(roomID int64) (bool, error)
	RoomNumber(roomID int64) (string, error)
	SetOccupied(roomID int64, occupied bool) error
}

// Service handles reservation business logic
type Service struct {
	repo   Repository
	rooms  RoomChecker
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, rooms RoomChecker, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		rooms:  rooms,
		bus:    bus,
		logger: logger,
	}
}

// ArrivalsForDate lists reservations due to check in on the given date.
func (s *Service) ArrivalsForDate(date time.Time, limit, offset int) ([]*Reservation, int64, error) {
	reservations, total, err := s.repo.ListArrivalsByDate(date, limit, offset)
	if err != nil {
		s.logger.Error("failed to list arrivals", "date", date.Format(DateFormat), "error", err)
		return nil, 0, err
	}
	return reservations, total, nil
}

// DeparturesForDate lists checked-in reservations due to check out on the
// given date.
func (s *Service) DeparturesForDate(date time.Time, limit, offset int) ([]*Reservation, int64, error) {
	reservations, total, err := s.repo.ListDeparturesByDate(date, limit, offset)
	if err != nil {
		s.logger.Error("failed to list departures", "date", date.Format(DateFormat), "error", err)
		return nil, 0, err
	}
	return reservations, total, nil
}

// CreateCheckIn registers a reservation and checks the guest in immediately,
// the walk-in flow the front desk uses.
func (s *Service) CreateCheckIn(ctx context.Context, dto CreateReservationDTO) (*Reservation, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("reservation validation failed", "error", err)
		return nil, err
	}

	available, err := s.rooms.IsAvailable(dto.RoomID)
	if err != nil {
		s.logger.Error("room availability check failed", "room_id", dto.RoomID, "error", err)
		return nil, err
	}
	if !available {
		return nil, ErrAlreadyCheckedIn
	}

	checkIn, checkOut := dto.Dates()
	now := time.Now()
	reservation := &Reservation{
		CustomerID:   dto.CustomerID,
		RoomID:       dto.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumGuests:    dto.NumGuests,
		TotalAmount:  dto.TotalAmount,
		Notes:        dto.Notes,
		Status:       StatusReserved,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	reservation.MarkCheckedIn()

	if err := s.repo.Create(reservation); err != nil {
		s.logger.Error("failed to create reservation", "error", err)
		return nil, err
	}

	if err := s.rooms.SetOccupied(dto.RoomID, true); err != nil {
		s.logger.Error("failed to mark room occupied", "room_id", dto.RoomID, "error", err)
	}

	s.publishCheckedIn(ctx, reservation)

	s.logger.Info("guest checked in",
		"reservation_id", reservation.ID,
		"customer_id", reservation.CustomerID,
		"room_id", reservation.RoomID)

	return reservation, nil
}

// CheckOut completes a stay: flips the reservation, frees the room and
// publishes the checkout event the accounting subscriber listens for.
func (s *Service) CheckOut(ctx context.Context, id int64) (*Reservation, error) {
	reservation, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if reservation.Status == StatusCheckedOut {
		return nil, ErrAlreadyCheckedOut
	}
	if !reservation.CanCheckOut() {
		return nil, ErrNotCheckedIn
	}

	reservation.MarkCheckedOut()
	if err := s.repo.Update(reservation); err != nil {
		s.logger.Error("failed to update reservation", "reservation_id", id, "error", err)
		return nil, err
	}

	if err := s.rooms.SetOccupied(reservation.RoomID, false); err != nil {
		s.logger.Error("failed to free room", "room_id", reservation.RoomID, "error", err)
	}

	s.publishCheckedOut(ctx, reservation)

	s.logger.Info("guest checked out",
		"reservation_id", reservation.ID,
		"room_id", reservation.RoomID,
		"total_amount", reservation.TotalAmount)

	return reservation, nil
}

// Cancel voids a reservation that has not been completed.
func (s *Service) Cancel(ctx context.Context, id int64) (*Reservation, error) {
	reservation, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !reservation.CanCancel() {
		return nil, ErrAlreadyCheckedOut
	}

	wasCheckedIn := reservation.Status == StatusCheckedIn
	reservation.MarkCancelled()
	if err := s.repo.Update(reservation); err != nil {
		s.logger.Error("failed to cancel reservation", "reservation_id", id, "error", err)
		return nil, err
	}

	if wasCheckedIn {
		if err := s.rooms.SetOccupied(reservation.RoomID, false); err != nil {
			s.logger.Error("failed to free room", "room_id", reservation.RoomID, "error", err)
		}
	}

	s.logger.Info("reservation cancelled", "reservation_id", id)
	return reservation, nil
}

func (s *Service) publishCheckedIn(ctx context.Context, r *Reservation) {
	if s.bus == nil {
		return
	}
	roomNumber, err := s.rooms.RoomNumber(r.RoomID)
	if err != nil {
		roomNumber = ""
	}
	event := events.NewGuestCheckedInEvent(r.ID, r.CustomerID, roomNumber)
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish check-in event", "reservation_id", r.ID, "error", err)
	}
}

func (s *Service) publishCheckedOut(ctx context.Context, r *Reservation) {
	if s.bus == nil {
		return
	}
	roomNumber, err := s.rooms.RoomNumber(r.RoomID)
	if err != nil {
		roomNumber = ""
	}
	event := events.NewGuestCheckedOutEvent(r.ID, r.CustomerID, roomNumber, r.TotalAmount)
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish check-out event", "reservation_id", r.ID, "error", err)
	}
}
