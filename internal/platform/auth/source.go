package auth

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/dhilipwind-Hospital/ayphen-Production-health-sub000/internal/nav"
)

type contextKey string

const sessionKey contextKey = "nav_session"

// Claims is the token payload the console issues at login. Organization
// fields may be absent for users who have not completed tenant selection.
type Claims struct {
	jwt.RegisteredClaims
	Role         string `json:"role"`
	OrgID        string `json:"org_id"`
	OrgSubdomain string `json:"org_subdomain"`
}

// Config holds token verification settings.
type Config struct {
	Issuer     string
	Audience   string
	SigningKey []byte
}

// OrgLookup resolves an organization id to its directory record. The
// session source uses it to backfill the subdomain when a token predates
// tenant selection metadata.
type OrgLookup interface {
	OrganizationByID(ctx context.Context, id string) (*nav.Organization, error)
}

// Source turns incoming requests into nav.Session values. Until Warm is
// called the source is still bootstrapping and every session it produces
// is Loading, which keeps every guard at Pending: no redirect and no
// content can escape before the verifier is ready.
type Source struct {
	cfg   Config
	orgs  OrgLookup
	ready atomic.Bool
}

// NewSource creates a session source. orgs may be nil when tokens always
// carry organization claims.
func NewSource(cfg Config, orgs OrgLookup) *Source {
	return &Source{cfg: cfg, orgs: orgs}
}

// Warm marks the bootstrap as complete. Safe to call more than once.
func (s *Source) Warm() {
	s.ready.Store(true)
}

// Ready reports whether the source has finished bootstrapping.
func (s *Source) Ready() bool {
	return s.ready.Load()
}

// Middleware resolves the request's session and stores it on the request
// context. It never rejects a request itself: missing or invalid
// credentials produce an unauthenticated session and the guards decide
// what to do with it.
func (s *Source) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := s.sessionFor(c)
			ctx := context.WithValue(c.Request().Context(), sessionKey, sess)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func (s *Source) sessionFor(c echo.Context) nav.Session {
	if !s.ready.Load() {
		return nav.Loading()
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nav.Unauthenticated()
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nav.Unauthenticated()
	}

	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}
	if s.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(s.cfg.Audience))
	}

	token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
		return s.cfg.SigningKey, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nav.Unauthenticated()
	}

	return nav.Authenticated(nav.User{
		ID:           claims.Subject,
		Role:         nav.ParseRole(claims.Role),
		Organization: s.organizationFor(c.Request().Context(), claims),
	})
}

// organizationFor builds the organization from token claims, consulting
// the directory when the token names an org but omits its subdomain.
func (s *Source) organizationFor(ctx context.Context, claims *Claims) *nav.Organization {
	if claims.OrgID == "" && claims.OrgSubdomain == "" {
		return nil
	}
	org := &nav.Organization{ID: claims.OrgID, Subdomain: claims.OrgSubdomain}
	if org.Subdomain == "" && s.orgs != nil {
		if rec, err := s.orgs.OrganizationByID(ctx, org.ID); err == nil && rec != nil {
			return rec
		}
	}
	return org
}

// SessionFromContext returns the session resolved by the middleware. A
// request that never passed through the middleware reads as loading,
// which is the safe default: nothing renders and nothing redirects.
func SessionFromContext(ctx context.Context) nav.Session {
	if sess, ok := ctx.Value(sessionKey).(nav.Session); ok {
		return sess
	}
	return nav.Loading()
}

// WithSession returns a context carrying the given session. Used by the
// dev middleware and by tests that exercise handlers directly.
func WithSession(ctx context.Context, sess nav.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}
