package accounting

import (
	"log/slog"
	"time"
)

// Repository interface defines the data access methods for transactions
type Repository interface {
	Create(tx *Transaction) error
	GetByID(id int64) (*Transaction, error)
	ListByKind(kind string, limit, offset int) ([]*Transaction, int64, error)
	ListByDateRange(from, to time.Time) ([]*Transaction, error)
	Update(tx *Transaction) error
	Delete(id int64) error
}

// Service handles the hotel ledger: incomes, expenses and their summaries.
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

// ListByKind lists ledger lines of one kind, newest first.
func (s *Service) ListByKind(kind string, limit, offset int) ([]*Transaction, int64, error) {
	transactions, total, err := s.repo.ListByKind(kind, limit, offset)
	if err != nil {
		s.logger.Error("failed to list transactions", "kind", kind, "error", err)
		return nil, 0, err
	}
	return transactions, total, nil
}

// Create records a new ledger line of the given kind.
func (s *Service) Create(kind string, dto TransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	tx := &Transaction{
		Kind:        kind,
		Category:    dto.Category,
		Description: dto.Description,
		Amount:      dto.Amount,
		Date:        dto.ParsedDate(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(tx); err != nil {
		s.logger.Error("failed to create transaction", "kind", kind, "error", err)
		return nil, err
	}

	s.logger.Info("transaction recorded", "transaction_id", tx.ID, "kind", kind, "amount", tx.Amount)
	return tx, nil
}

// Update rewrites a ledger line. The kind guards against updating an income
// through the expense route and vice versa.
func (s *Service) Update(kind string, id int64, dto TransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx.Kind != kind {
		return nil, ErrTransactionNotFound
	}

	tx.Category = dto.Category
	tx.Description = dto.Description
	tx.Amount = dto.Amount
	tx.Date = dto.ParsedDate()
	tx.UpdatedAt = time.Now()

	if err := s.repo.Update(tx); err != nil {
		s.logger.Error("failed to update transaction", "transaction_id", id, "error", err)
		return nil, err
	}
	return tx, nil
}

// Delete removes a ledger line, kind-guarded like Update.
func (s *Service) Delete(kind string, id int64) error {
	tx, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tx.Kind != kind {
		return ErrTransactionNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete transaction", "transaction_id", id, "error", err)
		return err
	}
	s.logger.Info("transaction deleted", "transaction_id", id, "kind", kind)
	return nil
}

// DailySummary totals one day's ledger.
func (s *Service) DailySummary(date time.Time) (*DailySummary, error) {
	day := truncateToDay(date)
	transactions, err := s.repo.ListByDateRange(day, day)
	if err != nil {
		s.logger.Error("failed to build daily summary", "date", day.Format(DateFormat), "error", err)
		return nil, err
	}

	summary := summarizeDay(day, transactions)
	return &summary, nil
}

// WeeklySummary totals the Monday-to-Sunday week containing the date, with
// a per-day breakdown.
func (s *Service) WeeklySummary(date time.Time) (*WeeklySummary, error) {
	start := weekStart(date)
	end := start.AddDate(0, 0, 6)

	transactions, err := s.repo.ListByDateRange(start, end)
	if err != nil {
		s.logger.Error("failed to build weekly summary", "start", start.Format(DateFormat), "error", err)
		return nil, err
	}

	summary := &WeeklySummary{
		StartDate: start.Format(DateFormat),
		EndDate:   end.Format(DateFormat),
		Days:      make([]DailySummary, 0, 7),
	}

	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		daily := summarizeDay(day, transactions)
		summary.TotalIncome += daily.TotalIncome
		summary.TotalExpense += daily.TotalExpense
		summary.Days = append(summary.Days, daily)
	}
	summary.Net = summary.TotalIncome - summary.TotalExpense

	return summary, nil
}

func summarizeDay(day time.Time, transactions []*Transaction) DailySummary {
	summary := DailySummary{Date: day.Format(DateFormat)}
	for _, tx := range transactions {
		if !sameDay(tx.Date, day) {
			continue
		}
		switch tx.Kind {
		case KindIncome:
			summary.TotalIncome += tx.Amount
		case KindExpense:
			summary.TotalExpense += tx.Amount
		}
	}
	summary.Net = summary.TotalIncome - summary.TotalExpense
	return summary
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart returns the Monday of the week containing t.
func weekStart(t time.Time) time.Time {
	day := truncateToDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
