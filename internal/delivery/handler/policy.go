package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/thehfpv/backend/internal/domain/entities"
)

type requirement int

const (
	requireNone requirement = iota
	requireAuthenticated
	requireRole
)

// policyRule maps a path pattern to an access requirement. Patterns are
// either exact paths or prefixes ending in "/**".
type policyRule struct {
	pattern string
	require requirement
	roles   []entities.UserRole
}

func (r policyRule) matches(path string) bool {
	if prefix, ok := strings.CutSuffix(r.pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == r.pattern
}

// AccessPolicy is an ordered rule list evaluated top to bottom; the first
// matching rule decides. Paths without a match require authentication.
type AccessPolicy struct {
	rules       []policyRule
	signInPath  string
	defaultRule requirement
}

// DefaultAccessPolicy mirrors the route protection of the site: public
// reads, registration, login and the OAuth endpoints are open; profile and
// upload mutations need a user; the admin prefix needs an elevated role.
func DefaultAccessPolicy() *AccessPolicy {
	return &AccessPolicy{
		signInPath:  "/oauth2/authorization/google",
		defaultRule: requireAuthenticated,
		rules: []policyRule{
			{pattern: "/health", require: requireNone},
			{pattern: "/auth/register", require: requireNone},
			{pattern: "/auth/login", require: requireNone},
			{pattern: "/oauth2/**", require: requireNone},
			{pattern: "/login/oauth2/**", require: requireNone},
			{pattern: "/visitor/**", require: requireNone},
			{pattern: "/uploads/**", require: requireNone},
			{pattern: "/public/**", require: requireNone},
			{pattern: "/auth/profile", require: requireAuthenticated},
			{pattern: "/upload/**", require: requireAuthenticated},
			{pattern: "/admin/**", require: requireRole, roles: []entities.UserRole{entities.RoleAdmin, entities.RoleRoot}},
		},
	}
}

func (p *AccessPolicy) evaluate(path string) (requirement, []entities.UserRole) {
	for _, rule := range p.rules {
		if rule.matches(path) {
			return rule.require, rule.roles
		}
	}
	return p.defaultRule, nil
}

// Middleware enforces the policy against the identity established by the
// auth gate. Anonymous requests to protected paths get a JSON 401 when the
// request looks API-originated, otherwise a redirect to the sign-in entry.
func (p *AccessPolicy) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			require, roles := p.evaluate(c.Request().URL.Path)
			if require == requireNone {
				return next(c)
			}

			user := CurrentUser(c)
			if user == nil {
				if isAPIRequest(c.Request()) {
					return c.JSON(http.StatusUnauthorized, map[string]string{
						"error":   "Unauthorized",
						"message": "Authentication required",
					})
				}
				return c.Redirect(http.StatusFound, p.signInPath)
			}

			if require == requireRole && !hasAnyRole(user, roles) {
				return c.JSON(http.StatusForbidden, errorBody("Insufficient permissions"))
			}

			return next(c)
		}
	}
}

func hasAnyRole(user *entities.User, roles []entities.UserRole) bool {
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}

// isAPIRequest distinguishes fetch/XHR calls from browser navigation.
func isAPIRequest(r *http.Request) bool {
	if strings.HasPrefix(r.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return true
	}
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), echo.MIMEApplicationJSON) {
		return true
	}
	return r.Header.Get(echo.HeaderAuthorization) != ""
}
