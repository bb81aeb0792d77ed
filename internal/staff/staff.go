package staff

import (
	"time"

	"github.com/frahmantamala/hotel-management/internal"
)

// StaffMember is an employee account. It maps onto the same users table the
// session layer authenticates against.
type StaffMember struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"column:name;not null"`
	Phone        string    `json:"phone,omitempty" gorm:"column:phone"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`

	Roles []string `json:"roles" gorm:"-"`
}

// TableName returns the table name for GORM
func (StaffMember) TableName() string {
	return "users"
}

// Role is a named permission group.
type Role struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"column:name;uniqueIndex;not null"`
}

// TableName returns the table name for GORM
func (Role) TableName() string {
	return "roles"
}

// UserRole links a staff member to a role.
type UserRole struct {
	UserID     int64     `json:"user_id" gorm:"column:user_id;primaryKey"`
	RoleID     int64     `json:"role_id" gorm:"column:role_id;primaryKey"`
	AssignedAt time.Time `json:"assigned_at" gorm:"column:assigned_at"`
}

// TableName returns the table name for GORM
func (UserRole) TableName() string {
	return "user_roles"
}

var (
	ErrStaffNotFound  = internal.NewNotFoundError("Staff member not found", internal.ErrCodeStaffNotFound)
	ErrDuplicateEmail = internal.NewConflictError("Email already in use", internal.ErrCodeValidationFailed)
	ErrUnknownRole    = internal.NewValidationError("Unknown role name", internal.ErrCodeValidationFailed)
)
