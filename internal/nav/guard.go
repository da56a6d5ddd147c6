package nav

import "strings"

// Decision is the outcome of evaluating a session against a route.
type Decision int

const (
	// DecisionPending means the session is still loading: render nothing,
	// redirect nowhere.
	DecisionPending Decision = iota
	DecisionRedirectLogin
	DecisionRedirectForbidden
	DecisionRedirectTenantSelection
	DecisionRedirect
	DecisionRender
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectForbidden:
		return "redirect_forbidden"
	case DecisionRedirectTenantSelection:
		return "redirect_tenant_selection"
	case DecisionRedirect:
		return "redirect"
	case DecisionRender:
		return "render"
	}
	return "unknown"
}

// Result couples a decision with its redirect target or rendered view.
// Advisory carries the non-blocking tenant-selection hint on rendered
// tenant-scoped views.
type Result struct {
	Decision Decision
	Target   string
	View     string
	Advisory string
}

// Guard is one link in a route's ordered guard chain. A guard returns nil
// to fall through to the next link; the first non-nil result wins and
// later links never run. Guards see only authenticated sessions: the
// loading and unauthenticated branches are resolved before any chain.
type Guard func(entry RouteEntry, s Session) *Result

// RoleRedirect returns a guard that sends the listed roles to target
// instead of the entry's own view. It models the "if admin, jump straight
// to the admin surface, otherwise fall through" composition.
func RoleRedirect(target string, roles ...Role) Guard {
	return func(_ RouteEntry, s Session) *Result {
		for _, r := range roles {
			if strings.EqualFold(string(s.User.Role), string(r)) {
				return &Result{Decision: DecisionRedirect, Target: target}
			}
		}
		return nil
	}
}

// HomeJump returns a guard for the generic dashboard: roles with a
// canonical home elsewhere are redirected to it, while roles without a
// recognized home stay and see the generic view.
func HomeJump() Guard {
	return func(_ RouteEntry, s Session) *Result {
		if home := RoleHome(s.User.Role); home != DashboardPath {
			return &Result{Decision: DecisionRedirect, Target: home}
		}
		return nil
	}
}

// Evaluate resolves the access decision for one route entry. It is a pure
// function of the entry and the session: no I/O, no mutation, and the
// result is recomputed on every navigation rather than cached.
func Evaluate(entry RouteEntry, s Session) Result {
	if entry.Acc == AccessPublic {
		return Result{Decision: DecisionRender, View: entry.View}
	}

	switch s.Status {
	case SessionLoading:
		return Result{Decision: DecisionPending}
	case SessionUnauthenticated:
		return Result{Decision: DecisionRedirectLogin, Target: LoginPath}
	}
	u := s.User
	if u == nil {
		return Result{Decision: DecisionRedirectLogin, Target: LoginPath}
	}

	for _, g := range entry.Guards {
		if r := g(entry, s); r != nil {
			return *r
		}
	}

	if entry.Acc == AccessRoles && !roleAllowed(entry.Roles, u.Role) {
		return Result{Decision: DecisionRedirectForbidden, Target: ForbiddenPath}
	}

	res := Result{Decision: DecisionRender, View: entry.View}
	if entry.TenantScoped && NeedsSelection(u.Organization) {
		res.Advisory = TenantSelectionPath
	}
	return res
}

// EvaluateAction is Evaluate for state-changing requests: where a view
// would merely carry the tenant advisory, an action redirects to tenant
// selection instead of completing.
func EvaluateAction(entry RouteEntry, s Session) Result {
	res := Evaluate(entry, s)
	if res.Decision == DecisionRender && res.Advisory != "" {
		return Result{Decision: DecisionRedirectTenantSelection, Target: res.Advisory}
	}
	return res
}

func roleAllowed(allowed []Role, r Role) bool {
	for _, a := range allowed {
		if strings.EqualFold(string(a), string(r)) {
			return true
		}
	}
	return false
}
