package db

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhilipwind-Hospital/ayphen-Production-health-sub000/internal/nav"
)

var (
	ErrOrgNotFound       = errors.New("organization not found")
	ErrSubdomainTaken    = errors.New("subdomain already registered")
	ErrInvalidSubdomain  = errors.New("invalid subdomain")
	ErrReservedSubdomain = errors.New("subdomain is reserved")
)

// Subdomains are used in hostnames, so the charset is strict.
var subdomainPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,61}[a-z0-9]$`)

// OrgRepo is the organization directory: the persistent record of every
// provisioned hospital. The tenant gate consults it when a session's
// token names an organization without its subdomain.
type OrgRepo struct {
	pool *pgxpool.Pool
}

func NewOrgRepo(pool *pgxpool.Pool) *OrgRepo {
	return &OrgRepo{pool: pool}
}

// EnsureSchema creates the directory table. Idempotent; run at startup
// and by `tenant create`.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS organizations (
			id         UUID PRIMARY KEY,
			subdomain  TEXT NOT NULL UNIQUE,
			name       TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure organizations table: %w", err)
	}
	return nil
}

// OrganizationByID implements auth.OrgLookup.
func (r *OrgRepo) OrganizationByID(ctx context.Context, id string) (*nav.Organization, error) {
	var org nav.Organization
	err := r.pool.QueryRow(ctx,
		`SELECT id, subdomain, name FROM organizations WHERE id = $1`, id).
		Scan(&org.ID, &org.Subdomain, &org.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrgNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("organization by id: %w", err)
	}
	return &org, nil
}

// OrganizationBySubdomain resolves the hospital behind a console
// subdomain.
func (r *OrgRepo) OrganizationBySubdomain(ctx context.Context, subdomain string) (*nav.Organization, error) {
	var org nav.Organization
	err := r.pool.QueryRow(ctx,
		`SELECT id, subdomain, name FROM organizations WHERE subdomain = $1`, subdomain).
		Scan(&org.ID, &org.Subdomain, &org.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrgNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("organization by subdomain: %w", err)
	}
	return &org, nil
}

// Create provisions a hospital. The sentinel subdomain is reserved for
// not-yet-onboarded users and can never be registered.
func (r *OrgRepo) Create(ctx context.Context, name, subdomain string) (*nav.Organization, error) {
	subdomain = strings.ToLower(strings.TrimSpace(subdomain))
	if subdomain == nav.DefaultTenant {
		return nil, ErrReservedSubdomain
	}
	if !subdomainPattern.MatchString(subdomain) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubdomain, subdomain)
	}

	org := &nav.Organization{
		ID:        uuid.NewString(),
		Subdomain: subdomain,
		Name:      name,
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO organizations (id, subdomain, name) VALUES ($1, $2, $3)`,
		org.ID, org.Subdomain, org.Name)
	if err != nil {
		if strings.Contains(err.Error(), "organizations_subdomain_key") {
			return nil, ErrSubdomainTaken
		}
		return nil, fmt.Errorf("create organization: %w", err)
	}
	return org, nil
}

// List returns every provisioned hospital, newest first.
func (r *OrgRepo) List(ctx context.Context) ([]nav.Organization, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, subdomain, name FROM organizations ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []nav.Organization
	for rows.Next() {
		var org nav.Organization
		if err := rows.Scan(&org.ID, &org.Subdomain, &org.Name); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}
