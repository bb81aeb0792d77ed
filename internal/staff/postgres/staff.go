package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/hotel-management/internal/staff"
)

// StaffRepository implements the staff.Repository interface using GORM
type StaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) staff.Repository {
	return &StaffRepository{db: db}
}

// Create inserts the account and its role links in one transaction.
func (r *StaffRepository) Create(member *staff.StaffMember, roleNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		if err := replaceRoles(tx, member.ID, roleNames); err != nil {
			return err
		}
		member.Roles = roleNames
		return nil
	})
}

func (r *StaffRepository) GetByID(id int64) (*staff.StaffMember, error) {
	var member staff.StaffMember
	err := r.db.Where("id = ?", id).First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, staff.ErrStaffNotFound
		}
		return nil, err
	}

	roles, err := r.rolesFor(id)
	if err != nil {
		return nil, err
	}
	member.Roles = roles
	return &member, nil
}

func (r *StaffRepository) GetByEmail(email string) (*staff.StaffMember, error) {
	var member staff.StaffMember
	err := r.db.Where("email = ?", email).First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, staff.ErrStaffNotFound
		}
		return nil, err
	}
	return &member, nil
}

// List filters by free-text search over name/email and optionally by role.
func (r *StaffRepository) List(search, role string, limit, offset int) ([]*staff.StaffMember, int64, error) {
	query := r.db.Model(&staff.StaffMember{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}
	if role != "" {
		query = query.Where(
			"id IN (SELECT ur.user_id FROM user_roles ur JOIN roles ro ON ro.id = ur.role_id WHERE ro.name = ?)",
			role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []*staff.StaffMember
	err := query.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	for _, member := range members {
		roles, rerr := r.rolesFor(member.ID)
		if rerr != nil {
			return nil, 0, rerr
		}
		member.Roles = roles
	}
	return members, total, nil
}

// Update saves the account and replaces its role links.
func (r *StaffRepository) Update(member *staff.StaffMember, roleNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		member.UpdatedAt = time.Now()
		if err := tx.Save(member).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", member.ID).Delete(&staff.UserRole{}).Error; err != nil {
			return err
		}
		if err := replaceRoles(tx, member.ID, roleNames); err != nil {
			return err
		}
		member.Roles = roleNames
		return nil
	})
}

func (r *StaffRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&staff.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&staff.StaffMember{}, id).Error
	})
}

func (r *StaffRepository) rolesFor(userID int64) ([]string, error) {
	var roles []string
	err := r.db.Model(&staff.Role{}).
		Select("roles.name").
		Joins("JOIN user_roles ur ON ur.role_id = roles.id").
		Where("ur.user_id = ?", userID).
		Order("ur.assigned_at ASC").
		Pluck("roles.name", &roles).Error
	return roles, err
}

// replaceRoles links the user to each named role, creating missing role rows
// on the fly.
func replaceRoles(tx *gorm.DB, userID int64, roleNames []string) error {
	now := time.Now()
	for _, name := range roleNames {
		var role staff.Role
		err := tx.Where("name = ?", name).First(&role).Error
		if err == gorm.ErrRecordNotFound {
			role = staff.Role{Name: name}
			if err := tx.Create(&role).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		link := staff.UserRole{UserID: userID, RoleID: role.ID, AssignedAt: now}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}
