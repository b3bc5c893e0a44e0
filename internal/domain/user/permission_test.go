package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       Role
		permission Permission
		want       bool
	}{
		{"superadmin manages features", RoleSuperAdmin, PermissionFeatureManage, true},
		{"superadmin manages users", RoleSuperAdmin, PermissionUserManage, true},
		{"admin views users", RoleAdmin, PermissionUserView, true},
		{"admin cannot manage features", RoleAdmin, PermissionFeatureManage, false},
		{"manager views reports", RoleManager, PermissionReportsView, true},
		{"officer views all attendance", RoleOfficer, PermissionAttendanceViewAll, true},
		{"employee views own attendance", RoleEmployee, PermissionAttendanceViewOwn, true},
		{"employee cannot view reports", RoleEmployee, PermissionReportsView, false},
		{"employee cannot view all attendance", RoleEmployee, PermissionAttendanceViewAll, false},
		{"unknown role has nothing", Role("visitor"), PermissionViewOwnProfile, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestRoleHelpers(t *testing.T) {
	super := User{Role: RoleSuperAdmin}
	assert.True(t, super.IsSuperAdmin())
	assert.True(t, super.IsAdmin())

	admin := User{Role: RoleAdmin}
	assert.False(t, admin.IsSuperAdmin())
	assert.True(t, admin.IsAdmin())

	employee := User{Role: RoleEmployee}
	assert.False(t, employee.IsAdmin())
	assert.False(t, employee.CanViewReports())

	manager := User{Role: RoleManager}
	assert.True(t, manager.CanViewReports())
}

func TestIsValidRole(t *testing.T) {
	for _, r := range ValidRoles() {
		assert.True(t, IsValidRole(Role(r)), r)
	}
	assert.False(t, IsValidRole(Role("guest")))
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&User{Status: StatusActive}).IsActive())
	assert.False(t, (&User{Status: StatusInactive}).IsActive())
	assert.False(t, (&User{}).IsActive())
}
