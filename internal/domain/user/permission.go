package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Attendance
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Reports (monthly summary, department rollup, overtime, shifts)
	PermissionReportsView   Permission = "reports.view"
	PermissionReportsExport Permission = "reports.export"

	// User Management
	PermissionUserView   Permission = "user.view"
	PermissionUserManage Permission = "user.manage"

	// Feature purchasing (super-admin area)
	PermissionFeatureManage Permission = "feature.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionReportsView,
		PermissionReportsExport,
		PermissionUserView,
		PermissionUserManage,
		PermissionFeatureManage,
	},
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionReportsView,
		PermissionReportsExport,
		PermissionUserView,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionReportsView,
	},
	RoleOfficer: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
