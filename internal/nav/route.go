package nav

import (
	"errors"
	"fmt"
)

// Access classifies who may reach a route.
type Access int

const (
	// AccessPublic routes are reachable without a session and bypass the
	// guard entirely (login, landing, public availability view).
	AccessPublic Access = iota
	// AccessAny routes require an authenticated session but no particular
	// role.
	AccessAny
	// AccessRoles routes are restricted to the listed roles.
	AccessRoles
)

func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessAny:
		return "any"
	case AccessRoles:
		return "roles"
	}
	return "unknown"
}

// RouteEntry declares one navigable path: who may reach it and which view
// it renders. Entries are static configuration, declared once at startup
// and never mutated.
type RouteEntry struct {
	Path  string
	View  string
	Acc   Access
	Roles []Role

	// TenantScoped marks entries where the tenant gate applies: rendering
	// with a sentinel organization surfaces an advisory, and actions
	// redirect to tenant selection. Staff surfaces leave this false
	// because their organizations are pre-provisioned.
	TenantScoped bool

	// Guards is an optional chain evaluated outer-to-inner after
	// authentication and before the role check. The first guard returning
	// a result short-circuits the rest.
	Guards []Guard
}

// Table validation failures.
var (
	ErrDuplicatePath   = errors.New("duplicate route path")
	ErrNoRoles         = errors.New("role-restricted route with empty role set")
	ErrUnknownRole     = errors.New("route names a role outside the closed set")
	ErrPublicWithRoles = errors.New("public route must not carry a role restriction")
	ErrRoleDeadEnd     = errors.New("role has no reachable route")
	ErrEmptyPath       = errors.New("route with empty path")
)

// Table is the authoritative registry of routes. It is query-only after
// construction.
type Table struct {
	entries []RouteEntry
	byPath  map[string]*RouteEntry
}

// NewTable builds a table and validates its invariants. A table that
// fails validation is a deployment error, not a runtime condition.
func NewTable(entries []RouteEntry) (*Table, error) {
	t := &Table{
		entries: entries,
		byPath:  make(map[string]*RouteEntry, len(entries)),
	}
	for i := range t.entries {
		e := &t.entries[i]
		if e.Path == "" {
			return nil, ErrEmptyPath
		}
		if _, dup := t.byPath[e.Path]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, e.Path)
		}
		t.byPath[e.Path] = e
	}
	if err := t.validateRoles(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) validateRoles() error {
	reachable := make(map[Role]bool, len(knownRoles))
	anyExists := false

	for i := range t.entries {
		e := &t.entries[i]
		switch e.Acc {
		case AccessPublic:
			if len(e.Roles) > 0 {
				return fmt.Errorf("%w: %s", ErrPublicWithRoles, e.Path)
			}
		case AccessAny:
			anyExists = true
		case AccessRoles:
			if len(e.Roles) == 0 {
				return fmt.Errorf("%w: %s", ErrNoRoles, e.Path)
			}
			for _, r := range e.Roles {
				if !r.Known() {
					return fmt.Errorf("%w: %s on %s", ErrUnknownRole, r, e.Path)
				}
				reachable[r] = true
			}
		}
	}

	if anyExists {
		return nil
	}
	for _, r := range Roles() {
		if !reachable[r] {
			return fmt.Errorf("%w: %s", ErrRoleDeadEnd, r)
		}
	}
	return nil
}

// Lookup returns the entry for an exact path. The second return is false
// for unknown paths; the caller falls back to the landing redirect.
func (t *Table) Lookup(path string) (*RouteEntry, bool) {
	e, ok := t.byPath[path]
	return e, ok
}

// Entries returns the declared routes in declaration order.
func (t *Table) Entries() []RouteEntry {
	return t.entries
}

// Len returns the number of declared routes.
func (t *Table) Len() int {
	return len(t.entries)
}
