package nav

// SessionStatus is the resolution state of the current session.
type SessionStatus int

const (
	// SessionLoading means the session source has not finished bootstrapping.
	// No routing decision may be finalized while loading: guards return
	// Pending, never a redirect and never content.
	SessionLoading SessionStatus = iota
	SessionUnauthenticated
	SessionAuthenticated
)

func (s SessionStatus) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// User is the authenticated principal as seen by the navigation layer.
// Organization is nil until the identity provider supplies one.
type User struct {
	ID           string
	Role         Role
	Organization *Organization
}

// Session is the resolved authentication state for one evaluation. It is
// built by the session source and passed in by value; nothing in this
// package mutates it, and decisions derived from it are never cached.
type Session struct {
	Status SessionStatus
	User   *User
}

// Loading returns a session that is still bootstrapping.
func Loading() Session {
	return Session{Status: SessionLoading}
}

// Unauthenticated returns a session with no principal.
func Unauthenticated() Session {
	return Session{Status: SessionUnauthenticated}
}

// Authenticated returns a session for the given user.
func Authenticated(u User) Session {
	return Session{Status: SessionAuthenticated, User: &u}
}
