package model

const (
	PermissionAllFunctions       = "ALL_FUNCTIONS"
	PermissionAllFunctionsRead   = "ALL_FUNCTIONS_READ"
	PermissionReportingSuperUser = "REPORTING_SUPER_USER"

	// PermissionRunReportPrefix is followed by the exact report name.
	PermissionRunReportPrefix = "CAN_RUN_"
)

// AppUser is the authenticated user with the permission codes of all its roles.
type AppUser struct {
	ID          int64
	Username    string
	Permissions []string
}

// HasPermission reports whether the user holds code.
func (u AppUser) HasPermission(code string) bool {
	for _, p := range u.Permissions {
		if p == code {
			return true
		}
	}
	return false
}

// HasNotPermissionForReport is true unless the user holds a global permission or CAN_RUN_<reportName>.
func (u AppUser) HasNotPermissionForReport(reportName string) bool {
	for _, p := range u.Permissions {
		switch p {
		case PermissionAllFunctions, PermissionAllFunctionsRead, PermissionReportingSuperUser, PermissionRunReportPrefix + reportName:
			return false
		}
	}
	return true
}
