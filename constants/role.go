package constants

import "strings"

// Role is the access level assigned to a user account.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleOperation Role = "operation"
	RoleGuest     Role = "guest"
)

// Roles returns the known roles as strings.
func Roles() []string {
	return []string{string(RoleAdmin), string(RoleOperation), string(RoleGuest)}
}

// ParseRole maps a label to a Role, defaulting to guest for unknown input.
func ParseRole(input string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case string(RoleAdmin):
		return RoleAdmin, true
	case string(RoleOperation):
		return RoleOperation, true
	case string(RoleGuest):
		return RoleGuest, true
	default:
		return RoleGuest, false
	}
}

// Permissions is the fixed set of boolean flags derived from a user's role.
// Flags are recomputed whenever the role changes; they are never edited directly.
type Permissions struct {
	CanUpload      bool `json:"can_upload"`
	CanViewAll     bool `json:"can_view_all"`
	CanEdit        bool `json:"can_edit"`
	CanDelete      bool `json:"can_delete"`
	CanReprocess   bool `json:"can_reprocess"`
	CanExport      bool `json:"can_export"`
	CanManageUsers bool `json:"can_manage_users"`
	CanViewAudit   bool `json:"can_view_audit"`
}

// DefaultPermissions returns the permission flags for a role.
func DefaultPermissions(role Role) Permissions {
	switch role {
	case RoleAdmin:
		return Permissions{
			CanUpload:      true,
			CanViewAll:     true,
			CanEdit:        true,
			CanDelete:      true,
			CanReprocess:   true,
			CanExport:      true,
			CanManageUsers: true,
			CanViewAudit:   true,
		}
	case RoleOperation:
		return Permissions{
			CanUpload:    true,
			CanViewAll:   true,
			CanEdit:      true,
			CanReprocess: true,
			CanExport:    true,
		}
	default:
		return Permissions{CanViewAll: true}
	}
}
