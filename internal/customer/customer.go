package customer

import (
	"time"

	"github.com/frahmantamala/hotel-management/internal"
)

// Customer is a hotel guest record.
type Customer struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	FirstName      string    `json:"first_name" gorm:"column:first_name;not null"`
	LastName       string    `json:"last_name" gorm:"column:last_name;not null"`
	Email          string    `json:"email" gorm:"column:email"`
	Phone          string    `json:"phone" gorm:"column:phone"`
	IdentityNumber string    `json:"identity_number" gorm:"column:identity_number"`
	Address        string    `json:"address,omitempty" gorm:"column:address"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

var ErrCustomerNotFound = internal.NewNotFoundError("Customer not found", internal.ErrCodeCustomerNotFound)
