package access_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hotel-management/internal/access"
	"github.com/frahmantamala/hotel-management/internal/auth"
)

func TestAccess(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Access Suite")
}

var _ = Describe("Gate", func() {
	var gate *access.Gate

	newUser := func(roles ...string) *auth.User {
		return &auth.User{
			ID:    1,
			Email: "staff@hotel.test",
			Roles: roles,
		}
	}

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		gate = access.NewGate(access.DefaultPolicy(), logger)
	})

	Describe("CanAccess", func() {
		Context("when the user holds an admin-equivalent role", func() {
			It("should allow every page regardless of policy", func() {
				pages := []string{
					access.PageAccounting,
					access.PageFinancialReport,
					access.PageManageStaff,
					access.PageManageRooms,
					access.PageCheckOut,
					"some-unknown-page",
				}

				for _, role := range []string{"Admin", "admin", "ADMIN", "SuperAdmin", "superadmin", "Administrator"} {
					for _, page := range pages {
						Expect(gate.CanAccess(newUser(role), page)).To(BeTrue(),
							"role %s should access %s", role, page)
					}
				}
			})

			It("should allow when the admin role is buried in a mixed role set", func() {
				user := newUser("Receptionist", "superADMIN")
				Expect(gate.CanAccess(user, access.PageManageStaff)).To(BeTrue())
			})
		})

		Context("when the user holds only mapped roles", func() {
			It("should allow pages the role is mapped to", func() {
				Expect(gate.CanAccess(newUser("Accountant"), access.PageAccounting)).To(BeTrue())
				Expect(gate.CanAccess(newUser("Receptionist"), access.PageCheckOut)).To(BeTrue())
				Expect(gate.CanAccess(newUser("Manager"), access.PageManageStaff)).To(BeTrue())
			})

			It("should deny pages the role is not mapped to", func() {
				Expect(gate.CanAccess(newUser("Accountant"), access.PageManageStaff)).To(BeFalse())
				Expect(gate.CanAccess(newUser("Receptionist"), access.PageFinancialReport)).To(BeFalse())
				Expect(gate.CanAccess(newUser("Housekeeper"), access.PageAccounting)).To(BeFalse())
			})

			It("should compare roles case-insensitively", func() {
				Expect(gate.CanAccess(newUser("aCCOuntant"), access.PageAccounting)).To(BeTrue())
			})
		})

		Context("when the page is not in the policy", func() {
			It("should fail open and allow", func() {
				Expect(gate.CanAccess(newUser("Housekeeper"), "brand-new-page")).To(BeTrue())
			})
		})

		Context("when roles arrive as a comma-separated string", func() {
			It("should normalize before evaluating", func() {
				user := newUser("Receptionist, Accountant")
				Expect(gate.CanAccess(user, access.PageAccounting)).To(BeTrue())
				Expect(gate.CanAccess(user, access.PageCheckIn)).To(BeTrue())
				Expect(gate.CanAccess(user, access.PageManageStaff)).To(BeFalse())
			})

			It("should trim whitespace and drop empty entries", func() {
				user := newUser("  Accountant , ,  ")
				Expect(gate.CanAccess(user, access.PageAccounting)).To(BeTrue())
			})
		})

		Context("when the session user is absent", func() {
			It("should report not-allowed so the caller can defer", func() {
				Expect(gate.CanAccess(nil, access.PageAccounting)).To(BeFalse())
			})
		})

		Context("with degenerate inputs", func() {
			It("should never panic", func() {
				Expect(func() {
					gate.CanAccess(newUser(), "")
					gate.CanAccess(newUser(""), access.PageCheckIn)
					gate.CanAccess(&auth.User{}, access.PageCheckOut)
				}).NotTo(Panic())
			})

			It("should deny a roleless user on a mapped page but allow on unmapped", func() {
				Expect(gate.CanAccess(newUser(), access.PageManageStaff)).To(BeFalse())
				Expect(gate.CanAccess(newUser(), "unmapped")).To(BeTrue())
			})
		})
	})

	Describe("NormalizeRoles", func() {
		It("should split comma-joined single elements", func() {
			Expect(access.NormalizeRoles([]string{"Admin,Receptionist"})).To(Equal([]string{"Admin", "Receptionist"}))
		})

		It("should pass through clean slices unchanged", func() {
			Expect(access.NormalizeRoles([]string{"Admin", "Receptionist"})).To(Equal([]string{"Admin", "Receptionist"}))
		})

		It("should drop empty entries", func() {
			Expect(access.NormalizeRoles([]string{" ", "", "Accountant "})).To(Equal([]string{"Accountant"}))
		})
	})
})
