package staff_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/hotel-management/internal/staff"
)

func TestStaff(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Staff Suite")
}

type mockRepo struct {
	members map[int64]*staff.StaffMember
	nextID  int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{members: map[int64]*staff.StaffMember{}, nextID: 1}
}

func (m *mockRepo) Create(member *staff.StaffMember, roleNames []string) error {
	member.ID = m.nextID
	m.nextID++
	member.Roles = append([]string(nil), roleNames...)
	stored := *member
	m.members[member.ID] = &stored
	return nil
}

func (m *mockRepo) GetByID(id int64) (*staff.StaffMember, error) {
	member, ok := m.members[id]
	if !ok {
		return nil, staff.ErrStaffNotFound
	}
	copied := *member
	return &copied, nil
}

func (m *mockRepo) GetByEmail(email string) (*staff.StaffMember, error) {
	for _, member := range m.members {
		if member.Email == email {
			copied := *member
			return &copied, nil
		}
	}
	return nil, staff.ErrStaffNotFound
}

func (m *mockRepo) List(search, role string, limit, offset int) ([]*staff.StaffMember, int64, error) {
	var out []*staff.StaffMember
	for _, member := range m.members {
		if role != "" {
			found := false
			for _, r := range member.Roles {
				if r == role {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		copied := *member
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (m *mockRepo) Update(member *staff.StaffMember, roleNames []string) error {
	member.Roles = append([]string(nil), roleNames...)
	stored := *member
	m.members[member.ID] = &stored
	return nil
}

func (m *mockRepo) Delete(id int64) error {
	delete(m.members, id)
	return nil
}

var _ = Describe("Staff Service", func() {
	var (
		repo    *mockRepo
		service *staff.Service
	)

	testLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	BeforeEach(func() {
		repo = newMockRepo()
		service = staff.NewService(repo, bcrypt.MinCost, testLogger)
	})

	Describe("Create", func() {
		It("should hash the password with the configured cost and assign roles", func() {
			member, err := service.Create(staff.CreateStaffDTO{
				Email:    "rina@hotel.test",
				Name:     "Rina",
				Password: "password123",
				Roles:    []string{"Receptionist"},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(member.IsActive).To(BeTrue())
			Expect(member.Roles).To(Equal([]string{"Receptionist"}))

			Expect(bcrypt.CompareHashAndPassword(
				[]byte(member.PasswordHash), []byte("password123"))).To(Succeed())
			cost, err := bcrypt.Cost([]byte(member.PasswordHash))
			Expect(err).NotTo(HaveOccurred())
			Expect(cost).To(Equal(bcrypt.MinCost))
		})

		It("should reject a duplicate email", func() {
			_, err := service.Create(staff.CreateStaffDTO{
				Email: "rina@hotel.test", Name: "Rina",
				Password: "password123", Roles: []string{"Receptionist"},
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(staff.CreateStaffDTO{
				Email: "rina@hotel.test", Name: "Other Rina",
				Password: "password456", Roles: []string{"Manager"},
			})
			Expect(err).To(MatchError(staff.ErrDuplicateEmail))
			Expect(repo.members).To(HaveLen(1))
		})

		It("should reject short passwords and empty role sets before the repository", func() {
			_, err := service.Create(staff.CreateStaffDTO{
				Email: "rina@hotel.test", Name: "Rina",
				Password: "short", Roles: []string{"Receptionist"},
			})
			Expect(err).To(HaveOccurred())

			_, err = service.Create(staff.CreateStaffDTO{
				Email: "rina@hotel.test", Name: "Rina",
				Password: "password123", Roles: nil,
			})
			Expect(err).To(HaveOccurred())

			Expect(repo.members).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		var created *staff.StaffMember

		BeforeEach(func() {
			var err error
			created, err = service.Create(staff.CreateStaffDTO{
				Email: "rina@hotel.test", Name: "Rina",
				Password: "password123", Roles: []string{"Receptionist"},
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should replace the role set", func() {
			updated, err := service.Update(created.ID, staff.UpdateStaffDTO{
				Name:  "Rina",
				Roles: []string{"Manager", "Accountant"},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Roles).To(Equal([]string{"Manager", "Accountant"}))
		})

		It("should keep the current password when none is given", func() {
			updated, err := service.Update(created.ID, staff.UpdateStaffDTO{
				Name:  "Rina",
				Roles: []string{"Receptionist"},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.PasswordHash).To(Equal(created.PasswordHash))
		})

		It("should rehash when a new password is given", func() {
			updated, err := service.Update(created.ID, staff.UpdateStaffDTO{
				Name:     "Rina",
				Password: "newpassword1",
				Roles:    []string{"Receptionist"},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.PasswordHash).NotTo(Equal(created.PasswordHash))
			Expect(bcrypt.CompareHashAndPassword(
				[]byte(updated.PasswordHash), []byte("newpassword1"))).To(Succeed())
		})

		It("should toggle is_active only when the field is present", func() {
			inactive := false
			updated, err := service.Update(created.ID, staff.UpdateStaffDTO{
				Name:     "Rina",
				Roles:    []string{"Receptionist"},
				IsActive: &inactive,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.IsActive).To(BeFalse())

			updated, err = service.Update(created.ID, staff.UpdateStaffDTO{
				Name:  "Rina",
				Roles: []string{"Receptionist"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.IsActive).To(BeFalse(), "absent field must not reset the flag")
		})

		It("should return not-found for an unknown id", func() {
			_, err := service.Update(99, staff.UpdateStaffDTO{
				Name: "Nobody", Roles: []string{"Receptionist"},
			})
			Expect(err).To(MatchError(staff.ErrStaffNotFound))
		})
	})

	Describe("Delete", func() {
		It("should remove an existing member and reject unknown ids", func() {
			created, _ := service.Create(staff.CreateStaffDTO{
				Email: "rina@hotel.test", Name: "Rina",
				Password: "password123", Roles: []string{"Receptionist"},
			})

			Expect(service.Delete(created.ID)).To(Succeed())
			Expect(service.Delete(created.ID)).To(MatchError(staff.ErrStaffNotFound))
		})
	})

	Describe("List", func() {
		It("should filter by role", func() {
			_, _ = service.Create(staff.CreateStaffDTO{
				Email: "rina@hotel.test", Name: "Rina",
				Password: "password123", Roles: []string{"Receptionist"},
			})
			_, _ = service.Create(staff.CreateStaffDTO{
				Email: "budi@hotel.test", Name: "Budi",
				Password: "password123", Roles: []string{"Accountant"},
			})

			members, total, err := service.List("", "Accountant", 20, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(HaveLen(1))
			Expect(total).To(Equal(int64(1)))
			Expect(members[0].Email).To(Equal("budi@hotel.test"))
		})
	})
})
