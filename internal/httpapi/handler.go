// Package httpapi mounts the route table on the HTTP surface and turns
// guard results into responses: rendered view payloads for the SPA shell,
// silent redirects, the forbidden view, and a blank response while the
// session is still loading.
package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dhilipwind-Hospital/ayphen-Production-health-sub000/internal/nav"
	"github.com/dhilipwind-Hospital/ayphen-Production-health-sub000/internal/platform/auth"
)

// TenantAdvisoryHeader carries the non-blocking tenant-selection hint on
// rendered tenant-scoped views.
const TenantAdvisoryHeader = "X-Tenant-Advisory"

var actionMethods = []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

type Handler struct {
	table *nav.Table
	log   zerolog.Logger
}

func New(table *nav.Table, logger zerolog.Logger) *Handler {
	return &Handler{table: table, log: logger}
}

// Register mounts every route table entry plus the resolution layer's own
// endpoints: the root redirect, the forbidden view, the resolve API, and
// the catch-all fallback.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Home)
	e.GET(nav.ForbiddenPath, h.Forbidden)
	e.GET("/api/v1/nav/resolve", h.Resolve)

	for _, entry := range h.table.Entries() {
		entry := entry
		e.GET(entry.Path, h.view(entry))
		for _, m := range actionMethods {
			e.Add(m, entry.Path, h.action(entry))
		}
	}

	e.RouteNotFound("/*", h.Fallback)
}

// Home is the "/" redirect: authenticated users land on their role's
// canonical page, everyone else on the public landing page. While the
// session is loading nothing is rendered and nothing redirects.
func (h *Handler) Home(c echo.Context) error {
	sess := auth.SessionFromContext(c.Request().Context())
	if sess.Status == nav.SessionLoading {
		return pending(c)
	}
	return c.Redirect(http.StatusFound, nav.HomeFor(sess))
}

// Forbidden renders the 403 view. Its back-home target comes from the
// same RoleHome mapping as the root redirect.
func (h *Handler) Forbidden(c echo.Context) error {
	sess := auth.SessionFromContext(c.Request().Context())
	switch sess.Status {
	case nav.SessionLoading:
		return pending(c)
	case nav.SessionUnauthenticated:
		return c.Redirect(http.StatusFound, nav.LoginPath)
	}
	return c.JSON(http.StatusForbidden, viewPayload{
		View: "forbidden",
		Path: nav.ForbiddenPath,
		Home: nav.HomeFor(sess),
	})
}

// Resolve answers the SPA shell's "may I show this route" question
// without performing the navigation. Unknown paths resolve to the landing
// redirect, mirroring the server-side fallback.
func (h *Handler) Resolve(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path query parameter is required")
	}

	sess := auth.SessionFromContext(c.Request().Context())
	entry, ok := h.table.Lookup(path)
	if !ok {
		return c.JSON(http.StatusOK, resolveResponse{
			Decision: nav.DecisionRedirect.String(),
			Target:   nav.LandingPath,
		})
	}

	res := nav.Evaluate(*entry, sess)
	if c.QueryParam("action") == "true" {
		res = nav.EvaluateAction(*entry, sess)
	}
	return c.JSON(http.StatusOK, resolveResponse{
		Decision: res.Decision.String(),
		Target:   res.Target,
		View:     res.View,
		Advisory: res.Advisory,
	})
}

// Fallback catches every path the table does not declare.
func (h *Handler) Fallback(c echo.Context) error {
	h.log.Info().
		Str("path", c.Request().URL.Path).
		Msg("unknown route")
	return c.Redirect(http.StatusFound, nav.LandingPath)
}

func (h *Handler) view(entry nav.RouteEntry) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := auth.SessionFromContext(c.Request().Context())
		return h.apply(c, entry, sess, nav.Evaluate(entry, sess))
	}
}

func (h *Handler) action(entry nav.RouteEntry) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := auth.SessionFromContext(c.Request().Context())
		return h.apply(c, entry, sess, nav.EvaluateAction(entry, sess))
	}
}

func (h *Handler) apply(c echo.Context, entry nav.RouteEntry, sess nav.Session, res nav.Result) error {
	switch res.Decision {
	case nav.DecisionPending:
		return pending(c)

	case nav.DecisionRender:
		payload := viewPayload{View: res.View, Path: entry.Path, Advisory: res.Advisory}
		if sess.User != nil {
			payload.Role = string(sess.User.Role)
		}
		if res.Advisory != "" {
			c.Response().Header().Set(TenantAdvisoryHeader, res.Advisory)
		}
		return c.JSON(http.StatusOK, payload)

	default:
		h.logDecision(c, entry, sess, res)
		return c.Redirect(http.StatusFound, res.Target)
	}
}

func (h *Handler) logDecision(c echo.Context, entry nav.RouteEntry, sess nav.Session, res nav.Result) {
	evt := h.log.Info().
		Str("path", entry.Path).
		Str("decision", res.Decision.String()).
		Str("target", res.Target)
	if sess.User != nil {
		evt = evt.Str("role", string(sess.User.Role))
	}
	evt.Msg("navigation redirect")
}

// pending renders nothing: no body, no redirect, just a hint to retry
// once session bootstrap completes.
func pending(c echo.Context) error {
	c.Response().Header().Set("Retry-After", "1")
	return c.NoContent(http.StatusNoContent)
}

type viewPayload struct {
	View     string `json:"view"`
	Path     string `json:"path"`
	Role     string `json:"role,omitempty"`
	Home     string `json:"home,omitempty"`
	Advisory string `json:"advisory,omitempty"`
}

type resolveResponse struct {
	Decision string `json:"decision"`
	Target   string `json:"target,omitempty"`
	View     string `json:"view,omitempty"`
	Advisory string `json:"advisory,omitempty"`
}
