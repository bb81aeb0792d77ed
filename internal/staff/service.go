package staff

import (
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Repository interface defines the data access methods for staff accounts
type Repository interface {
	Create(member *StaffMember, roleNames []string) error
	GetByID(id int64) (*StaffMember, error)
	GetByEmail(email string) (*StaffMember, error)
	List(search, role string, limit, offset int) ([]*StaffMember, int64, error)
	Update(member *StaffMember, roleNames []string) error
	Delete(id int64) error
}

// Service handles staff account management
type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// List returns staff filtered by free-text search and/or role name.
func (s *Service) List(search, role string, limit, offset int) ([]*StaffMember, int64, error) {
	members, total, err := s.repo.List(search, role, limit, offset)
	if err != nil {
		s.logger.Error("failed to list staff", "error", err)
		return nil, 0, err
	}
	return members, total, nil
}

func (s *Service) GetByID(id int64) (*StaffMember, error) {
	return s.repo.GetByID(id)
}

// Create hires a staff member: hashes the password and assigns roles.
func (s *Service) Create(dto CreateStaffDTO) (*StaffMember, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	now := time.Now()
	member := &StaffMember{
		Email:        dto.Email,
		Name:         dto.Name,
		Phone:        dto.Phone,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(member, dto.Roles); err != nil {
		s.logger.Error("failed to create staff member", "email", dto.Email, "error", err)
		return nil, err
	}

	s.logger.Info("staff member created", "staff_id", member.ID, "roles", dto.Roles)
	return member, nil
}

// Update edits a staff member, replacing their role set.
func (s *Service) Update(id int64, dto UpdateStaffDTO) (*StaffMember, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	member, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	member.Name = dto.Name
	member.Phone = dto.Phone
	if dto.IsActive != nil {
		member.IsActive = *dto.IsActive
	}
	if dto.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err)
			return nil, err
		}
		member.PasswordHash = string(hash)
	}
	member.UpdatedAt = time.Now()

	if err := s.repo.Update(member, dto.Roles); err != nil {
		s.logger.Error("failed to update staff member", "staff_id", id, "error", err)
		return nil, err
	}
	return member, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete staff member", "staff_id", id, "error", err)
		return err
	}
	s.logger.Info("staff member deleted", "staff_id", id)
	return nil
}
