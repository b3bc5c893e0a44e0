package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "superadmin" // Platform owner - feature purchasing, user management
	RoleAdmin      Role = "admin"      // Company administrator
	RoleManager    Role = "manager"    // Can view team reports
	RoleOfficer    Role = "officer"    // HR officer - attendance operations
	RoleEmployee   Role = "employee"   // Regular employee
)

// UserStatus mirrors the Active/Inactive toggle on the management screen
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	Department   string
	Designation  *string
	Phone        *string
	Status       UserStatus
	JoinDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}

// IsSuperAdmin checks if user is the platform super admin
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsAdmin checks if user is admin or super admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// CanViewReports checks if user can open the reporting screens
func (u *User) CanViewReports() bool {
	return HasPermission(u.Role, PermissionReportsView)
}

// IsActive reports whether the account may log in
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsValidRole reports whether the role is one the dashboard can dispatch
func IsValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleOfficer, RoleEmployee:
		return true
	}
	return false
}

// ValidRoles returns the accepted role values for request validation
func ValidRoles() []string {
	return []string{
		string(RoleSuperAdmin),
		string(RoleAdmin),
		string(RoleManager),
		string(RoleOfficer),
		string(RoleEmployee),
	}
}
