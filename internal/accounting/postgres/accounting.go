package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/hotel-management/internal/accounting"
)

// TransactionRepository implements the accounting.Repository interface using GORM
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) accounting.Repository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(tx *accounting.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *TransactionRepository) GetByID(id int64) (*accounting.Transaction, error) {
	var tx accounting.Transaction
	err := r.db.Where("id = ?", id).First(&tx).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, accounting.ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) ListByKind(kind string, limit, offset int) ([]*accounting.Transaction, int64, error) {
	query := r.db.Model(&accounting.Transaction{}).Where("kind = ?", kind)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []*accounting.Transaction
	err := query.
		Order("date DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error
	return transactions, total, err
}

// ListByDateRange returns every transaction between from and to inclusive.
func (r *TransactionRepository) ListByDateRange(from, to time.Time) ([]*accounting.Transaction, error) {
	var transactions []*accounting.Transaction
	err := r.db.
		Where("date >= ? AND date < ?", from, to.AddDate(0, 0, 1)).
		Order("date ASC").
		Find(&transactions).Error
	return transactions, err
}

func (r *TransactionRepository) Update(tx *accounting.Transaction) error {
	tx.UpdatedAt = time.Now()
	return r.db.Save(tx).Error
}

func (r *TransactionRepository) Delete(id int64) error {
	return r.db.Delete(&accounting.Transaction{}, id).Error
}
