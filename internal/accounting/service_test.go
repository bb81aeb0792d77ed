package accounting_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hotel-management/internal/accounting"
)

func TestAccounting(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Accounting Suite")
}

type mockRepo struct {
	transactions map[int64]*accounting.Transaction
	nextID       int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{transactions: map[int64]*accounting.Transaction{}, nextID: 1}
}

func (m *mockRepo) Create(tx *accounting.Transaction) error {
	tx.ID = m.nextID
	m.nextID++
	stored := *tx
	m.transactions[tx.ID] = &stored
	return nil
}

func (m *mockRepo) GetByID(id int64) (*accounting.Transaction, error) {
	tx, ok := m.transactions[id]
	if !ok {
		return nil, accounting.ErrTransactionNotFound
	}
	copied := *tx
	return &copied, nil
}

func (m *mockRepo) ListByKind(kind string, limit, offset int) ([]*accounting.Transaction, int64, error) {
	var out []*accounting.Transaction
	for _, tx := range m.transactions {
		if tx.Kind == kind {
			copied := *tx
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockRepo) ListByDateRange(from, to time.Time) ([]*accounting.Transaction, error) {
	var out []*accounting.Transaction
	for _, tx := range m.transactions {
		if !tx.Date.Before(from) && !tx.Date.After(to) {
			copied := *tx
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockRepo) Update(tx *accounting.Transaction) error {
	stored := *tx
	m.transactions[tx.ID] = &stored
	return nil
}

func (m *mockRepo) Delete(id int64) error {
	delete(m.transactions, id)
	return nil
}

var _ = Describe("Accounting Service", func() {
	var (
		repo *mockRepo
		svc  *accounting.Service
	)

	testLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	record := func(kind, date string, amount int64) *accounting.Transaction {
		tx, err := svc.Create(kind, accounting.TransactionDTO{
			Category: "general",
			Amount:   amount,
			Date:     date,
		})
		Expect(err).NotTo(HaveOccurred())
		return tx
	}

	BeforeEach(func() {
		repo = newMockRepo()
		svc = accounting.NewService(repo, testLogger)
	})

	Describe("Create", func() {
		It("should record a ledger line with the route's kind", func() {
			tx := record(accounting.KindIncome, "2026-08-10", 500000)
			Expect(tx.ID).To(BeNumerically(">", 0))
			Expect(tx.Kind).To(Equal(accounting.KindIncome))
		})

		It("should reject a non-positive amount", func() {
			_, err := svc.Create(accounting.KindExpense, accounting.TransactionDTO{
				Category: "supplies",
				Amount:   0,
				Date:     "2026-08-10",
			})
			Expect(err).To(HaveOccurred())
		})

		It("should reject a malformed date", func() {
			_, err := svc.Create(accounting.KindIncome, accounting.TransactionDTO{
				Category: "rooms",
				Amount:   100,
				Date:     "10/08/2026",
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("kind guarding", func() {
		It("should not update an income through the expense route", func() {
			tx := record(accounting.KindIncome, "2026-08-10", 500000)

			_, err := svc.Update(accounting.KindExpense, tx.ID, accounting.TransactionDTO{
				Category: "supplies",
				Amount:   100,
				Date:     "2026-08-10",
			})
			Expect(err).To(Equal(accounting.ErrTransactionNotFound))
		})

		It("should not delete an expense through the income route", func() {
			tx := record(accounting.KindExpense, "2026-08-10", 90000)
			Expect(svc.Delete(accounting.KindIncome, tx.ID)).To(HaveOccurred())
			Expect(svc.Delete(accounting.KindExpense, tx.ID)).To(Succeed())
		})
	})

	Describe("DailySummary", func() {
		It("should total one day's incomes and expenses", func() {
			record(accounting.KindIncome, "2026-08-10", 500000)
			record(accounting.KindIncome, "2026-08-10", 250000)
			record(accounting.KindExpense, "2026-08-10", 100000)
			record(accounting.KindIncome, "2026-08-11", 999999)

			date, _ := time.Parse(accounting.DateFormat, "2026-08-10")
			summary, err := svc.DailySummary(date)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.TotalIncome).To(Equal(int64(750000)))
			Expect(summary.TotalExpense).To(Equal(int64(100000)))
			Expect(summary.Net).To(Equal(int64(650000)))
		})
	})

	Describe("WeeklySummary", func() {
		It("should cover Monday through Sunday of the containing week", func() {
			// 2026-08-10 is a Monday.
			record(accounting.KindIncome, "2026-08-10", 100)
			record(accounting.KindIncome, "2026-08-16", 200)
			record(accounting.KindExpense, "2026-08-12", 50)
			record(accounting.KindIncome, "2026-08-17", 999)

			midweek, _ := time.Parse(accounting.DateFormat, "2026-08-13")
			summary, err := svc.WeeklySummary(midweek)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.StartDate).To(Equal("2026-08-10"))
			Expect(summary.EndDate).To(Equal("2026-08-16"))
			Expect(summary.TotalIncome).To(Equal(int64(300)))
			Expect(summary.TotalExpense).To(Equal(int64(50)))
			Expect(summary.Net).To(Equal(int64(250)))
			Expect(summary.Days).To(HaveLen(7))
			Expect(summary.Days[0].TotalIncome).To(Equal(int64(100)))
			Expect(summary.Days[6].TotalIncome).To(Equal(int64(200)))
		})

		It("should start the week on Monday even when asked about a Sunday", func() {
			sunday, _ := time.Parse(accounting.DateFormat, "2026-08-16")
			summary, err := svc.WeeklySummary(sunday)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.StartDate).To(Equal("2026-08-10"))
		})
	})
})
