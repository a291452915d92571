package constants

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"admin", RoleAdmin, true},
		{" ADMIN ", RoleAdmin, true},
		{"operation", RoleOperation, true},
		{"guest", RoleGuest, true},
		{"superuser", RoleGuest, false},
		{"", RoleGuest, false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseRole(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDefaultPermissions(t *testing.T) {
	admin := DefaultPermissions(RoleAdmin)
	if !admin.CanManageUsers || !admin.CanDelete || !admin.CanViewAudit {
		t.Errorf("admin permissions incomplete: %+v", admin)
	}

	op := DefaultPermissions(RoleOperation)
	if !op.CanUpload || !op.CanEdit || !op.CanReprocess || !op.CanExport {
		t.Errorf("operation permissions incomplete: %+v", op)
	}
	if op.CanDelete || op.CanManageUsers || op.CanViewAudit {
		t.Errorf("operation role must not hold admin-only flags: %+v", op)
	}

	guest := DefaultPermissions(RoleGuest)
	if !guest.CanViewAll {
		t.Errorf("guest must be able to view: %+v", guest)
	}
	if guest.CanUpload || guest.CanEdit || guest.CanDelete || guest.CanExport {
		t.Errorf("guest must be read-only: %+v", guest)
	}
}
