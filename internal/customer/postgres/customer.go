package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/hotel-management/internal/customer"
)

// CustomerRepository implements the customer.Repository interface using GORM
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(c *customer.Customer) error {
	return r.db.Create(c).Error
}

func (r *CustomerRepository) GetByID(id int64) (*customer.Customer, error) {
	var c customer.Customer
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Search matches name, email, phone and identity number; an empty query
// lists everyone.
func (r *CustomerRepository) Search(query string, limit, offset int) ([]*customer.Customer, int64, error) {
	q := r.db.Model(&customer.Customer{})
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR phone LIKE ? OR identity_number LIKE ?",
			pattern, pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []*customer.Customer
	err := q.
		Order("last_name ASC, first_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&customers).Error
	return customers, total, err
}

func (r *CustomerRepository) Update(c *customer.Customer) error {
	c.UpdatedAt = time.Now()
	return r.db.Save(c).Error
}

func (r *CustomerRepository) Delete(id int64) error {
	return r.db.Delete(&customer.Customer{}, id).Error
}
