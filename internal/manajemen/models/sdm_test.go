package models

import "testing"

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleAdministrasi, RoleDokter, RolePerawat} {
		if !ValidRole(role) {
			t.Errorf("expected %s to be valid", role)
		}
	}
	for _, role := range []string{"", "superadmin", "Admin", "staf"} {
		if ValidRole(role) {
			t.Errorf("expected %q to be invalid", role)
		}
	}
}
