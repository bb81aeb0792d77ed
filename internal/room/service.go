package room

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/hotel-management/internal/core/events"
)

// Repository interface defines the data access methods for rooms
type Repository interface {
	Create(room *Room) error
	GetByID(id int64) (*Room, error)
	GetByNumber(number string) (*Room, error)
	List(limit, offset int) ([]*Room, int64, error)
	Update(room *Room) error
	Delete(id int64) error

	CreateIssue(issue *MaintenanceIssue) error
	GetIssueByID(id int64) (*MaintenanceIssue, error)
	ListIssues(roomID int64, limit, offset int) ([]*MaintenanceIssue, int64, error)
	UpdateIssue(issue *MaintenanceIssue) error
	CountOpenIssues(roomID int64) (int64, error)
}

// Service handles room business logic
type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

func (s *Service) List(limit, offset int) ([]*Room, int64, error) {
	rooms, total, err := s.repo.List(limit, offset)
	if err != nil {
		s.logger.Error("failed to list rooms", "error", err)
		return nil, 0, err
	}
	return rooms, total, nil
}

func (s *Service) GetByID(id int64) (*Room, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(dto RoomDTO) (*Room, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByNumber(dto.RoomNumber); err == nil && existing != nil {
		return nil, ErrDuplicateRoom
	}

	status := dto.Status
	if status == "" {
		status = StatusAvailable
	}

	now := time.Now()
	room := &Room{
		RoomNumber:    dto.RoomNumber,
		RoomType:      dto.RoomType,
		Floor:         dto.Floor,
		PricePerNight: dto.PricePerNight,
		Status:        status,
		Description:   dto.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(room); err != nil {
		s.logger.Error("failed to create room", "room_number", dto.RoomNumber, "error", err)
		return nil, err
	}

	s.logger.Info("room created", "room_id", room.ID, "room_number", room.RoomNumber)
	return room, nil
}

func (s *Service) Update(id int64, dto RoomDTO) (*Room, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	room, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.RoomNumber != room.RoomNumber {
		if existing, err := s.repo.GetByNumber(dto.RoomNumber); err == nil && existing != nil {
			return nil, ErrDuplicateRoom
		}
	}

	room.RoomNumber = dto.RoomNumber
	room.RoomType = dto.RoomType
	room.Floor = dto.Floor
	room.PricePerNight = dto.PricePerNight
	if dto.Status != "" {
		room.Status = dto.Status
	}
	room.Description = dto.Description
	room.UpdatedAt = time.Now()

	if err := s.repo.Update(room); err != nil {
		s.logger.Error("failed to update room", "room_id", id, "error", err)
		return nil, err
	}
	return room, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete room", "room_id", id, "error", err)
		return err
	}
	s.logger.Info("room deleted", "room_id", id)
	return nil
}

// ListIssues lists maintenance issues for a room.
func (s *Service) ListIssues(roomID int64, limit, offset int) ([]*MaintenanceIssue, int64, error) {
	if _, err := s.repo.GetByID(roomID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListIssues(roomID, limit, offset)
}

// ReportIssue files a maintenance issue and pulls the room out of the
// bookable pool.
func (s *Service) ReportIssue(ctx context.Context, roomID int64, dto ReportIssueDTO) (*MaintenanceIssue, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	room, err := s.repo.GetByID(roomID)
	if err != nil {
		return nil, err
	}

	issue := &MaintenanceIssue{
		RoomID:      roomID,
		Description: dto.Description,
		ReportedBy:  dto.ReportedBy,
		Status:      IssueStatusOpen,
		ReportedAt:  time.Now(),
	}
	if err := s.repo.CreateIssue(issue); err != nil {
		s.logger.Error("failed to create maintenance issue", "room_id", roomID, "error", err)
		return nil, err
	}

	if room.Status == StatusAvailable {
		room.Status = StatusMaintenance
		room.UpdatedAt = time.Now()
		if err := s.repo.Update(room); err != nil {
			s.logger.Error("failed to flag room for maintenance", "room_id", roomID, "error", err)
		}
	}

	if s.bus != nil {
		event := events.NewRoomIssueRaisedEvent(roomID, room.RoomNumber, dto.Description)
		if err := s.bus.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish room issue event", "room_id", roomID, "error", err)
		}
	}

	s.logger.Info("maintenance issue reported", "room_id", roomID, "issue_id", issue.ID)
	return issue, nil
}

// ResolveIssue closes an issue; the room returns to the bookable pool once
// its last open issue is resolved.
func (s *Service) ResolveIssue(roomID, issueID int64) (*MaintenanceIssue, error) {
	issue, err := s.repo.GetIssueByID(issueID)
	if err != nil {
		return nil, err
	}
	if issue.RoomID != roomID {
		return nil, ErrIssueNotFound
	}
	if issue.Status == IssueStatusResolved {
		return issue, nil
	}

	now := time.Now()
	issue.Status = IssueStatusResolved
	issue.ResolvedAt = &now
	if err := s.repo.UpdateIssue(issue); err != nil {
		s.logger.Error("failed to resolve maintenance issue", "issue_id", issueID, "error", err)
		return nil, err
	}

	open, err := s.repo.CountOpenIssues(roomID)
	if err == nil && open == 0 {
		if room, rerr := s.repo.GetByID(roomID); rerr == nil && room.Status == StatusMaintenance {
			room.Status = StatusAvailable
			room.UpdatedAt = now
			if uerr := s.repo.Update(room); uerr != nil {
				s.logger.Error("failed to return room to service", "room_id", roomID, "error", uerr)
			}
		}
	}

	s.logger.Info("maintenance issue resolved", "room_id", roomID, "issue_id", issueID)
	return issue, nil
}

// IsAvailable reports whether the room can host a new stay. Satisfies the
// availability check the reservation flow depends on.
func (s *Service) IsAvailable(roomID int64) (bool, error) {
	room, err := s.repo.GetByID(roomID)
	if err != nil {
		return false, err
	}
	return room.IsAvailable(), nil
}

// RoomNumber resolves a room id to its display number.
func (s *Service) RoomNumber(roomID int64) (string, error) {
	room, err := s.repo.GetByID(roomID)
	if err != nil {
		return "", err
	}
	return room.RoomNumber, nil
}

// SetOccupied flips the room between occupied and available as guests check
// in and out. Maintenance status is never overwritten by a checkout.
func (s *Service) SetOccupied(roomID int64, occupied bool) error {
	room, err := s.repo.GetByID(roomID)
	if err != nil {
		return err
	}

	if occupied {
		room.Status = StatusOccupied
	} else if room.Status == StatusOccupied {
		room.Status = StatusAvailable
	}
	room.UpdatedAt = time.Now()
	return s.repo.Update(room)
}
