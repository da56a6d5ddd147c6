package nav

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
	}{
		{"admin", RoleAdmin},
		{"super_admin", RoleSuperAdmin},
		{"Doctor", RoleDoctor},
		{"NURSE", RoleNurse},
		{"  receptionist  ", RoleReceptionist},
		{"pharmacist", RolePharmacist},
		{"lab_technician", RoleLabTechnician},
		{"accountant", RoleAccountant},
		{"patient", RolePatient},
		{"", RoleUnknown},
		{"   ", RoleUnknown},
		{"banana", RoleUnknown},
		{"administrator", RoleUnknown},
		{"super-admin", RoleUnknown},
	}

	for _, tt := range tests {
		got := ParseRole(tt.raw)
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestKnown(t *testing.T) {
	for _, r := range Roles() {
		if !r.Known() {
			t.Errorf("role %q should be known", r)
		}
	}
	if RoleUnknown.Known() {
		t.Error("RoleUnknown should not be known")
	}
	if Role("intern").Known() {
		t.Error("arbitrary role string should not be known")
	}
}

func TestRoles_Closed(t *testing.T) {
	if len(Roles()) != len(knownRoles) {
		t.Errorf("Roles() returns %d roles, known set has %d", len(Roles()), len(knownRoles))
	}
}
