package user

import "testing"

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"employee", RoleEmployee, true},
		{"Employee", RoleEmployee, true},
		{"admin", RoleAdmin, true},
		{"Admin", RoleAdmin, true},
		{"ADMIN", RoleAdmin, true},
		{"super_admin", RoleSuperAdmin, true},
		{"Super Admin", RoleSuperAdmin, true},
		{"super-admin", RoleSuperAdmin, true},
		{"superadmin", RoleSuperAdmin, true},
		{" admin ", RoleAdmin, true},
		{"manager", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeRole(c.input)
		if ok != c.ok || got != c.want {
			t.Errorf("NormalizeRole(%q) = (%q, %v), want (%q, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestRoleChecks(t *testing.T) {
	admin := User{Role: RoleAdmin}
	super := User{Role: RoleSuperAdmin}
	emp := User{Role: RoleEmployee}

	if !admin.IsAdmin() || !super.IsAdmin() {
		t.Error("admin and super_admin should both pass IsAdmin")
	}
	if emp.IsAdmin() {
		t.Error("employee should not pass IsAdmin")
	}
	if !super.IsSuperAdmin() || admin.IsSuperAdmin() {
		t.Error("only super_admin should pass IsSuperAdmin")
	}
}
