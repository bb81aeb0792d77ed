package staff

import (
	"strings"

	"github.com/frahmantamala/hotel-management/internal"
)

// CreateStaffDTO is the payload for hiring a new staff member.
type CreateStaffDTO struct {
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone,omitempty"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

func (dto *CreateStaffDTO) Validate() error {
	if !strings.Contains(dto.Email, "@") {
		return internal.NewValidationFieldError("email", "email is not valid", internal.ErrCodeValidationFailed)
	}
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if len(dto.Password) < 8 {
		return internal.NewValidationFieldError("password", "password must be at least 8 characters", internal.ErrCodeValidationFailed)
	}
	if len(dto.Roles) == 0 {
		return internal.NewValidationFieldError("roles", "at least one role is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateStaffDTO is the payload for editing a staff member. Password is
// optional; empty leaves the current one in place.
type UpdateStaffDTO struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone,omitempty"`
	Password string   `json:"password,omitempty"`
	Roles    []string `json:"roles"`
	IsActive *bool    `json:"is_active,omitempty"`
}

func (dto *UpdateStaffDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if dto.Password != "" && len(dto.Password) < 8 {
		return internal.NewValidationFieldError("password", "password must be at least 8 characters", internal.ErrCodeValidationFailed)
	}
	if len(dto.Roles) == 0 {
		return internal.NewValidationFieldError("roles", "at least one role is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
