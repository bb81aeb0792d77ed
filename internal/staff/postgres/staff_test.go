package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/hotel-management/internal/staff"
	staffPostgres "github.com/frahmantamala/hotel-management/internal/staff/postgres"
)

func TestStaffPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Staff Postgres Suite")
}

var _ = Describe("Staff PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo staff.Repository
	)

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&staff.StaffMember{}, &staff.Role{}, &staff.UserRole{})
		Expect(err).NotTo(HaveOccurred())

		repo = staffPostgres.NewStaffRepository(db)
	})

	hire := func(email, name string, roles ...string) *staff.StaffMember {
		member := &staff.StaffMember{
			Email:        email,
			Name:         name,
			PasswordHash: "$2a$10$fakefakefakefakefakefake",
			IsActive:     true,
		}
		Expect(repo.Create(member, roles)).To(Succeed())
		return member
	}

	Describe("Create", func() {
		It("should insert the account with its role links", func() {
			member := hire("rina@hotel.test", "Rina", "Receptionist")
			Expect(member.ID).To(BeNumerically(">", 0))

			got, err := repo.GetByID(member.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Roles).To(Equal([]string{"Receptionist"}))
		})

		It("should reuse existing role rows across hires", func() {
			hire("rina@hotel.test", "Rina", "Receptionist")
			hire("dewi@hotel.test", "Dewi", "Receptionist", "Accountant")

			var count int64
			Expect(db.Model(&staff.Role{}).Where("name = ?", "Receptionist").Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(1)))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			hire("rina@hotel.test", "Rina", "Receptionist")
			hire("dewi@hotel.test", "Dewi", "Accountant")
			hire("agus@hotel.test", "Agus", "Housekeeper")
		})

		It("should filter by role", func() {
			members, total, err := repo.List("", "Accountant", 20, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(members[0].Name).To(Equal("Dewi"))
		})

		It("should filter by search over name and email", func() {
			_, total, err := repo.List("agus@", "", 20, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
		})

		It("should combine search and role filters", func() {
			_, total, err := repo.List("Rina", "Accountant", 20, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
		})

		It("should attach each member's roles", func() {
			members, _, err := repo.List("", "", 20, 0)
			Expect(err).NotTo(HaveOccurred())
			for _, member := range members {
				Expect(member.Roles).NotTo(BeEmpty())
			}
		})
	})

	Describe("Update", func() {
		It("should replace the role set", func() {
			member := hire("rina@hotel.test", "Rina", "Receptionist")

			member.Name = "Rina S."
			Expect(repo.Update(member, []string{"Manager"})).To(Succeed())

			got, err := repo.GetByID(member.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Rina S."))
			Expect(got.Roles).To(Equal([]string{"Manager"}))
		})
	})

	Describe("Delete", func() {
		It("should remove the account and its role links", func() {
			member := hire("rina@hotel.test", "Rina", "Receptionist")
			Expect(repo.Delete(member.ID)).To(Succeed())

			_, err := repo.GetByID(member.ID)
			Expect(err).To(Equal(staff.ErrStaffNotFound))

			var links int64
			Expect(db.Model(&staff.UserRole{}).Where("user_id = ?", member.ID).Count(&links).Error).To(Succeed())
			Expect(links).To(BeZero())
		})
	})
})
