package accounting

import (
	"time"

	"github.com/frahmantamala/hotel-management/internal"
)

const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// DateFormat is the wire format for transaction dates.
const DateFormat = "2006-01-02"

// Transaction is a single ledger line, income or expense.
type Transaction struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Kind        string    `json:"kind" gorm:"column:kind;not null;index"`
	Category    string    `json:"category" gorm:"column:category;not null"`
	Description string    `json:"description,omitempty" gorm:"column:description"`
	Amount      int64     `json:"amount" gorm:"column:amount;not null"`
	Date        time.Time `json:"date" gorm:"column:date;type:date;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// DailySummary aggregates one day's ledger.
type DailySummary struct {
	Date         string `json:"date"`
	TotalIncome  int64  `json:"total_income"`
	TotalExpense int64  `json:"total_expense"`
	Net          int64  `json:"net"`
}

// WeeklySummary aggregates the Monday-to-Sunday week containing a date.
type WeeklySummary struct {
	StartDate    string         `json:"start_date"`
	EndDate      string         `json:"end_date"`
	TotalIncome  int64          `json:"total_income"`
	TotalExpense int64          `json:"total_expense"`
	Net          int64          `json:"net"`
	Days         []DailySummary `json:"days"`
}

var ErrTransactionNotFound = internal.NewNotFoundError("Transaction not found", internal.ErrCodeEntryNotFound)
