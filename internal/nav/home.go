package nav

// Well-known console paths used by the resolution layer itself.
const (
	LandingPath   = "/landing"
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
	ForbiddenPath = "/403"
)

// RoleHome returns the canonical landing path for a role. This is the
// single source of truth for role-to-home mapping: the root redirect and
// the forbidden view both call it, so the two can never drift apart.
// Unknown roles resolve to the generic dashboard rather than an error.
func RoleHome(role Role) string {
	switch role {
	case RolePharmacist:
		return "/pharmacy"
	case RoleNurse:
		return "/queue/triage"
	case RoleReceptionist:
		return "/queue/reception"
	case RoleLabTechnician:
		return "/laboratory/dashboard"
	case RoleAccountant:
		return "/billing/management"
	case RolePatient:
		return "/portal"
	case RoleAdmin, RoleSuperAdmin:
		return "/admin/appointments"
	case RoleDoctor:
		return "/queue/doctor"
	}
	return DashboardPath
}

// HomeFor resolves the landing target for a whole session. Sessions
// without an authenticated user land on the public landing page; loading
// sessions have no target and must not be redirected at all, which the
// caller handles via the guard's Pending decision.
func HomeFor(s Session) string {
	if s.Status != SessionAuthenticated || s.User == nil {
		return LandingPath
	}
	return RoleHome(s.User.Role)
}
