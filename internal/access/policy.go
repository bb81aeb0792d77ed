package access

// Role names as stored on user accounts. Comparison is always
// case-insensitive because upstream data is inconsistently cased.
const (
	RoleAdmin        = "Admin"
	RoleSuperAdmin   = "SuperAdmin"
	RoleManager      = "Manager"
	RoleReceptionist = "Receptionist"
	RoleAccountant   = "Accountant"
	RoleHousekeeper  = "Housekeeper"
)

// Page identifiers for protected screens.
const (
	PageCheckIn         = "checkIn"
	PageCheckOut        = "checkOut"
	PageManageRooms     = "manage-rooms"
	PageManageCustomers = "manage-customers"
	PageManageStaff     = "manage-staff"
	PageAccounting      = "accounting"
	PageFinancialReport = "financial-reports"
)

// Policy maps a page identifier to the roles permitted to view it. Admin
// equivalents bypass the policy entirely and are not listed per page.
type Policy map[string][]string

// DefaultPolicy returns the static page-access mapping.
func DefaultPolicy() Policy {
	return Policy{
		PageCheckIn:         {RoleReceptionist, RoleManager},
		PageCheckOut:        {RoleReceptionist, RoleManager},
		PageManageRooms:     {RoleReceptionist, RoleManager, RoleHousekeeper},
		PageManageCustomers: {RoleReceptionist, RoleManager},
		PageManageStaff:     {RoleManager},
		PageAccounting:      {RoleAccountant, RoleManager},
		PageFinancialReport: {RoleAccountant, RoleManager},
	}
}
