package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireClaim enforces a named-claim policy: the authenticated caller's
// token must carry the given custom claim. Absence is a 403 regardless of how
// valid the token otherwise is.
func RequireClaim(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, _ := c.Get(CtxClaims).([]string)
			if !HasClaim(claims, name) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// HasClaim reports whether a claim set satisfies a named policy. Pure
// function, independent of the transport pipeline.
func HasClaim(claims []string, name string) bool {
	for _, c := range claims {
		if c == name {
			return true
		}
	}
	return false
}
