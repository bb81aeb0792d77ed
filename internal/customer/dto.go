package customer

import (
	"strings"

	"github.com/frahmantamala/hotel-management/internal"
)

// CustomerDTO is the payload for create and update.
type CustomerDTO struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	IdentityNumber string `json:"identity_number"`
	Address        string `json:"address,omitempty"`
}

func (dto *CustomerDTO) Validate() error {
	if strings.TrimSpace(dto.FirstName) == "" {
		return internal.NewValidationFieldError("first_name", "first name is required", internal.ErrCodeValidationFailed)
	}
	if strings.TrimSpace(dto.LastName) == "" {
		return internal.NewValidationFieldError("last_name", "last name is required", internal.ErrCodeValidationFailed)
	}
	if dto.Email != "" && !strings.Contains(dto.Email, "@") {
		return internal.NewValidationFieldError("email", "email is not valid", internal.ErrCodeValidationFailed)
	}
	return nil
}
