package customer

import (
	"log/slog"
	"time"
)

// Repository interface defines the data access methods for customers
type Repository interface {
	Create(customer *Customer) error
	GetByID(id int64) (*Customer, error)
	Search(query string, limit, offset int) ([]*Customer, int64, error)
	Update(customer *Customer) error
	Delete(id int64) error
}

// Service handles customer business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Search lists customers matching the query, or all when the query is empty.
func (s *Service) Search(query string, limit, offset int) ([]*Customer, int64, error) {
	customers, total, err := s.repo.Search(query, limit, offset)
	if err != nil {
		s.logger.Error("failed to search customers", "query", query, "error", err)
		return nil, 0, err
	}
	return customers, total, nil
}

func (s *Service) GetByID(id int64) (*Customer, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(dto CustomerDTO) (*Customer, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	customer := &Customer{
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		Email:          dto.Email,
		Phone:          dto.Phone,
		IdentityNumber: dto.IdentityNumber,
		Address:        dto.Address,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(customer); err != nil {
		s.logger.Error("failed to create customer", "error", err)
		return nil, err
	}

	s.logger.Info("customer created", "customer_id", customer.ID)
	return customer, nil
}

func (s *Service) Update(id int64, dto CustomerDTO) (*Customer, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	customer.FirstName = dto.FirstName
	customer.LastName = dto.LastName
	customer.Email = dto.Email
	customer.Phone = dto.Phone
	customer.IdentityNumber = dto.IdentityNumber
	customer.Address = dto.Address
	customer.UpdatedAt = time.Now()

	if err := s.repo.Update(customer); err != nil {
		s.logger.Error("failed to update customer", "customer_id", id, "error", err)
		return nil, err
	}
	return customer, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete customer", "customer_id", id, "error", err)
		return err
	}
	s.logger.Info("customer deleted", "customer_id", id)
	return nil
}
