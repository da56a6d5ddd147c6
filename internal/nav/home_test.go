package nav

import "testing"

func TestRoleHome_Mapping(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RolePharmacist, "/pharmacy"},
		{RoleNurse, "/queue/triage"},
		{RoleReceptionist, "/queue/reception"},
		{RoleLabTechnician, "/laboratory/dashboard"},
		{RoleAccountant, "/billing/management"},
		{RolePatient, "/portal"},
		{RoleAdmin, "/admin/appointments"},
		{RoleSuperAdmin, "/admin/appointments"},
		{RoleDoctor, "/queue/doctor"},
		{RoleUnknown, "/dashboard"},
		{Role("garbage"), "/dashboard"},
	}

	for _, tt := range tests {
		got := RoleHome(tt.role)
		if got != tt.want {
			t.Errorf("RoleHome(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

// RoleHome must be total and single-valued: every role in the closed set
// resolves to exactly one non-empty path, and repeated calls agree.
func TestRoleHome_TotalAndStable(t *testing.T) {
	for _, r := range Roles() {
		first := RoleHome(r)
		if first == "" {
			t.Errorf("RoleHome(%q) returned empty path", r)
		}
		if second := RoleHome(r); second != first {
			t.Errorf("RoleHome(%q) not stable: %q then %q", r, first, second)
		}
	}
}

func TestHomeFor(t *testing.T) {
	tests := []struct {
		name string
		s    Session
		want string
	}{
		{"unauthenticated", Unauthenticated(), LandingPath},
		{"loading", Loading(), LandingPath},
		{"nurse", Authenticated(User{ID: "u1", Role: RoleNurse}), "/queue/triage"},
		{"unknown role", Authenticated(User{ID: "u2", Role: RoleUnknown}), DashboardPath},
		{"authenticated but nil user", Session{Status: SessionAuthenticated}, LandingPath},
	}

	for _, tt := range tests {
		if got := HomeFor(tt.s); got != tt.want {
			t.Errorf("%s: HomeFor = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// The forbidden view derives its back-home target from the same function
// as the root redirect. Pin the agreement for every role so the two call
// sites can never drift.
func TestHomeFor_AgreesWithRoleHome(t *testing.T) {
	for _, r := range Roles() {
		s := Authenticated(User{ID: "u", Role: r})
		if HomeFor(s) != RoleHome(r) {
			t.Errorf("role %q: HomeFor %q != RoleHome %q", r, HomeFor(s), RoleHome(r))
		}
	}
}
