package feature

// Feature codes for the purchasable dashboard areas. The super-admin home
// renders this catalog and gates each tile on whether it has been purchased.
const (
	UserManagement  = "User-Management"
	HRMS            = "HRMS"
	AdminManagement = "Admin Management"
	SystemSettings  = "System Settings"
	DatabaseMgmt    = "Database Management"
	SystemAnalytics = "System Analytics"
	UserPermissions = "User Permissions"
	OrgManagement   = "Organization Management"
	AuditLogs       = "Audit Logs"
	BackupRestore   = "Backup & Restore"
)

// Catalog returns every purchasable feature, in display order.
func Catalog() []string {
	return []string{
		UserManagement,
		HRMS,
		AdminManagement,
		SystemSettings,
		DatabaseMgmt,
		SystemAnalytics,
		UserPermissions,
		OrgManagement,
		AuditLogs,
		BackupRestore,
	}
}

// IsKnown reports whether a feature code exists in the catalog.
func IsKnown(name string) bool {
	for _, f := range Catalog() {
		if f == name {
			return true
		}
	}
	return false
}
