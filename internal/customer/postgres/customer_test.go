package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/hotel-management/internal/customer"
	customerPostgres "github.com/frahmantamala/hotel-management/internal/customer/postgres"
)

func TestCustomerPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Customer Postgres Suite")
}

var _ = Describe("Customer PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo customer.Repository
	)

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&customer.Customer{})
		Expect(err).NotTo(HaveOccurred())

		repo = customerPostgres.NewCustomerRepository(db)
	})

	create := func(first, last, email string) *customer.Customer {
		c := &customer.Customer{
			FirstName: first,
			LastName:  last,
			Email:     email,
			Phone:     "0812000",
		}
		Expect(repo.Create(c)).To(Succeed())
		return c
	}

	Describe("Create and GetByID", func() {
		It("should persist and read back a customer", func() {
			c := create("Siti", "Rahma", "siti@example.com")
			Expect(c.ID).To(BeNumerically(">", 0))

			got, err := repo.GetByID(c.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.FirstName).To(Equal("Siti"))
		})

		It("should return not-found for an unknown id", func() {
			_, err := repo.GetByID(99)
			Expect(err).To(Equal(customer.ErrCustomerNotFound))
		})
	})

	Describe("Search", func() {
		BeforeEach(func() {
			create("Siti", "Rahma", "siti@example.com")
			create("Budi", "Santoso", "budi@example.com")
			create("Ayu", "Rahmawati", "ayu@example.com")
		})

		It("should list everyone on an empty query, ordered by name", func() {
			customers, total, err := repo.Search("", 20, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
			Expect(customers[0].LastName).To(Equal("Rahma"))
		})

		It("should match partial names", func() {
			customers, total, err := repo.Search("Rahma", 20, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
			Expect(customers).To(HaveLen(2))
		})

		It("should match by email", func() {
			_, total, err := repo.Search("budi@", 20, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
		})

		It("should paginate", func() {
			customers, total, err := repo.Search("", 2, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
			Expect(customers).To(HaveLen(2))

			rest, _, err := repo.Search("", 2, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(rest).To(HaveLen(1))
		})
	})

	Describe("Update and Delete", func() {
		It("should update fields in place", func() {
			c := create("Siti", "Rahma", "siti@example.com")
			c.Phone = "0813999"
			Expect(repo.Update(c)).To(Succeed())

			got, err := repo.GetByID(c.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Phone).To(Equal("0813999"))
		})

		It("should delete a customer", func() {
			c := create("Siti", "Rahma", "siti@example.com")
			Expect(repo.Delete(c.ID)).To(Succeed())

			_, err := repo.GetByID(c.ID)
			Expect(err).To(Equal(customer.ErrCustomerNotFound))
		})
	})
})
