package sec

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type principalKey struct{}

// WithPrincipal attaches an authenticated principal to the context. The
// [Gate] middleware does this automatically; it is exported as a convenience
// for testing.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// GetPrincipal returns the authenticated principal for the request context,
// if any.
func GetPrincipal(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// Gate returns an echo middleware enforcing the given route policies against
// the credential store. Requests to public paths pass through untouched. All
// other requests must carry valid Basic Auth credentials; on success the
// principal is attached to the request context, on any failure the request is
// rejected with a uniform 401 before reaching a handler.
func Gate(rules PolicyList, store *CredentialStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rule := rules.Match(c.Request().URL.Path)
			if rule.Policy == Public {
				return next(c)
			}

			req := c.Request()
			username, password, ok := req.BasicAuth()
			if !ok {
				return unauthorized(c)
			}
			principal, err := store.Verify(username, password)
			if err != nil {
				return unauthorized(c)
			}
			if rule.Policy == RequireRole && !principal.HasRole(rule.Role) {
				return echo.NewHTTPError(http.StatusForbidden)
			}

			c.SetRequest(req.WithContext(WithPrincipal(req.Context(), principal)))
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="Restricted"`)
	return echo.NewHTTPError(http.StatusUnauthorized)
}
