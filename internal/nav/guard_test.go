package nav

import "testing"

func sessionFor(role Role) Session {
	return Authenticated(User{ID: "u1", Role: role, Organization: &Organization{ID: "org-1", Subdomain: "city-general"}})
}

func TestEvaluate_Loading(t *testing.T) {
	// A loading session yields Pending on every protected entry, never a
	// render and never a redirect.
	for _, e := range DefaultEntries() {
		if e.Acc == AccessPublic {
			continue
		}
		res := Evaluate(e, Loading())
		if res.Decision != DecisionPending {
			t.Errorf("%s: loading session got %s, want pending", e.Path, res.Decision)
		}
		if res.Target != "" || res.View != "" {
			t.Errorf("%s: pending result must carry no target or view", e.Path)
		}
	}
}

func TestEvaluate_Unauthenticated(t *testing.T) {
	entry := restricted("/patients", "patient-list", patientFlow)
	res := Evaluate(entry, Unauthenticated())
	if res.Decision != DecisionRedirectLogin {
		t.Fatalf("got %s, want redirect_login", res.Decision)
	}
	if res.Target != LoginPath {
		t.Errorf("target = %q, want %q", res.Target, LoginPath)
	}
}

func TestEvaluate_PublicBypassesSession(t *testing.T) {
	entry := public(LandingPath, "landing")
	for _, s := range []Session{Loading(), Unauthenticated(), sessionFor(RolePatient)} {
		res := Evaluate(entry, s)
		if res.Decision != DecisionRender {
			t.Errorf("public entry with %s session: got %s, want render", s.Status, res.Decision)
		}
	}
}

func TestEvaluate_RoleAllowList(t *testing.T) {
	entry := restricted("/pharmacy", "pharmacy-dashboard", pharmacy)

	tests := []struct {
		role Role
		want Decision
	}{
		{RolePharmacist, DecisionRender},
		{RoleAdmin, DecisionRender},
		{RoleSuperAdmin, DecisionRender},
		{RoleDoctor, DecisionRedirectForbidden},
		{RoleNurse, DecisionRedirectForbidden},
		{RolePatient, DecisionRedirectForbidden},
		{RoleUnknown, DecisionRedirectForbidden},
	}

	for _, tt := range tests {
		res := Evaluate(entry, sessionFor(tt.role))
		if res.Decision != tt.want {
			t.Errorf("role %q: got %s, want %s", tt.role, res.Decision, tt.want)
		}
		if tt.want == DecisionRedirectForbidden && res.Target != ForbiddenPath {
			t.Errorf("role %q: forbidden target = %q, want %q", tt.role, res.Target, ForbiddenPath)
		}
	}
}

func TestEvaluate_CaseInsensitiveRole(t *testing.T) {
	entry := restricted("/pharmacy", "pharmacy-dashboard", pharmacy)
	s := Authenticated(User{ID: "u1", Role: Role("Pharmacist")})
	if res := Evaluate(entry, s); res.Decision != DecisionRender {
		t.Errorf("mixed-case role: got %s, want render", res.Decision)
	}
}

// Denial holds for every (route, role) pair outside the allow list across
// the whole default table.
func TestEvaluate_DeniesEveryRoleOutsideAllowList(t *testing.T) {
	for _, e := range DefaultEntries() {
		if e.Acc != AccessRoles || len(e.Guards) > 0 {
			continue
		}
		for _, r := range Roles() {
			if roleAllowed(e.Roles, r) {
				continue
			}
			res := Evaluate(e, sessionFor(r))
			if res.Decision != DecisionRedirectForbidden {
				t.Errorf("%s with role %q: got %s, want redirect_forbidden", e.Path, r, res.Decision)
			}
		}
	}
}

func TestEvaluate_AnyRendersForAllRoles(t *testing.T) {
	entry := anyRole(DashboardPath, "dashboard")
	for _, r := range Roles() {
		if res := Evaluate(entry, sessionFor(r)); res.Decision != DecisionRender {
			t.Errorf("role %q on any-entry: got %s, want render", r, res.Decision)
		}
	}
	// Unknown roles are authenticated-but-unrestricted too.
	if res := Evaluate(entry, sessionFor(RoleUnknown)); res.Decision != DecisionRender {
		t.Errorf("unknown role on any-entry: got %s, want render", res.Decision)
	}
}

func TestEvaluate_GuardChainShortCircuits(t *testing.T) {
	var secondRan bool
	entry := RouteEntry{
		Path:  "/appointments",
		View:  "appointments",
		Acc:   AccessRoles,
		Roles: patientFlow,
		Guards: []Guard{
			RoleRedirect("/admin/appointments", RoleAdmin, RoleSuperAdmin),
			func(RouteEntry, Session) *Result {
				secondRan = true
				return nil
			},
		},
	}

	res := Evaluate(entry, sessionFor(RoleAdmin))
	if res.Decision != DecisionRedirect || res.Target != "/admin/appointments" {
		t.Fatalf("admin: got %s → %q, want redirect → /admin/appointments", res.Decision, res.Target)
	}
	if secondRan {
		t.Error("later guard ran after an earlier one redirected")
	}

	// Non-admin falls through the chain to the allow list.
	secondRan = false
	res = Evaluate(entry, sessionFor(RoleNurse))
	if !secondRan {
		t.Error("fall-through guard should have run for nurse")
	}
	if res.Decision != DecisionRender {
		t.Errorf("nurse: got %s, want render", res.Decision)
	}
}

func TestEvaluate_GuardsNeverRunWhileLoading(t *testing.T) {
	entry := RouteEntry{
		Path:  "/appointments",
		View:  "appointments",
		Acc:   AccessRoles,
		Roles: patientFlow,
		Guards: []Guard{func(RouteEntry, Session) *Result {
			t.Error("guard ran while session was loading")
			return nil
		}},
	}
	if res := Evaluate(entry, Loading()); res.Decision != DecisionPending {
		t.Errorf("got %s, want pending", res.Decision)
	}
}

func TestEvaluate_TenantAdvisory(t *testing.T) {
	entry := portal("/portal", "portal-home")

	// Sentinel organization: the view still renders, with the advisory.
	s := Authenticated(User{ID: "u1", Role: RolePatient, Organization: &Organization{ID: "org-1", Subdomain: "default"}})
	res := Evaluate(entry, s)
	if res.Decision != DecisionRender {
		t.Fatalf("got %s, want render", res.Decision)
	}
	if res.Advisory != TenantSelectionPath {
		t.Errorf("advisory = %q, want %q", res.Advisory, TenantSelectionPath)
	}

	// Selected organization: no advisory.
	res = Evaluate(entry, sessionFor(RolePatient))
	if res.Advisory != "" {
		t.Errorf("unexpected advisory %q for selected tenant", res.Advisory)
	}

	// Staff entries are not tenant-scoped even with a sentinel org.
	staff := Authenticated(User{ID: "u2", Role: RoleNurse, Organization: nil})
	res = Evaluate(restricted("/queue/triage", "queue-triage", wardStaff), staff)
	if res.Decision != DecisionRender || res.Advisory != "" {
		t.Errorf("staff entry: got %s advisory %q, want plain render", res.Decision, res.Advisory)
	}
}

func TestEvaluateAction_RedirectsToTenantSelection(t *testing.T) {
	entry := portal("/portal/book-appointment", "portal-book-appointment")
	s := Authenticated(User{ID: "u1", Role: RolePatient, Organization: &Organization{ID: DefaultTenant, Subdomain: "default"}})

	res := EvaluateAction(entry, s)
	if res.Decision != DecisionRedirectTenantSelection {
		t.Fatalf("got %s, want redirect_tenant_selection", res.Decision)
	}
	if res.Target != TenantSelectionPath {
		t.Errorf("target = %q, want %q", res.Target, TenantSelectionPath)
	}

	// With a chosen hospital the action proceeds.
	if res := EvaluateAction(entry, sessionFor(RolePatient)); res.Decision != DecisionRender {
		t.Errorf("selected tenant: got %s, want render", res.Decision)
	}
}
