package accounting

import (
	"strings"
	"time"

	"github.com/frahmantamala/hotel-management/internal"
)

// TransactionDTO is the payload for creating or updating a ledger line. The
// kind comes from the route, never the body.
type TransactionDTO struct {
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
}

func (dto *TransactionDTO) Validate() error {
	if strings.TrimSpace(dto.Category) == "" {
		return internal.NewValidationFieldError("category", "category is required", internal.ErrCodeValidationFailed)
	}
	if dto.Amount <= 0 {
		return internal.NewValidationFieldError("amount", "amount must be greater than 0", internal.ErrCodeValidationFailed)
	}
	if _, err := time.Parse(DateFormat, dto.Date); err != nil {
		return internal.NewValidationFieldError("date", "must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	return nil
}

func (dto *TransactionDTO) ParsedDate() time.Time {
	date, _ := time.Parse(DateFormat, dto.Date)
	return date
}
