package report

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/hotel-management/internal/accounting"
)

// Ledger is the slice of the accounting store the report needs.
type Ledger interface {
	ListByDateRange(from, to time.Time) ([]*accounting.Transaction, error)
}

// Service builds financial reports from the ledger.
type Service struct {
	ledger Ledger
	logger *slog.Logger
}

func NewService(ledger Ledger, logger *slog.Logger) *Service {
	return &Service{
		ledger: ledger,
		logger: logger,
	}
}

// MonthlyReport returns the year's revenue/expense series. Months with no
// transactions appear as zero buckets, so the series is always length 12.
func (s *Service) MonthlyReport(year int) (*MonthlyReport, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	transactions, err := s.ledger.ListByDateRange(from, to)
	if err != nil {
		s.logger.Error("failed to build monthly report", "year", year, "error", err)
		return nil, err
	}

	report := &MonthlyReport{
		Year:   year,
		Months: make([]MonthlyTotal, 12),
	}
	for i := range report.Months {
		report.Months[i].Month = i + 1
	}

	for _, tx := range transactions {
		if tx.Date.Year() != year {
			continue
		}
		bucket := &report.Months[int(tx.Date.Month())-1]
		switch tx.Kind {
		case accounting.KindIncome:
			bucket.Revenue += tx.Amount
		case accounting.KindExpense:
			bucket.Expense += tx.Amount
		}
	}

	for i := range report.Months {
		report.Months[i].Net = report.Months[i].Revenue - report.Months[i].Expense
	}

	return report, nil
}
