package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/market-system/internal/core/domain"
)

// CookieName is the cookie carrying the session credential.
const CookieName = "token"

// Context keys set by Auth for downstream handlers.
const (
	ClaimsKey = "claims"
	EmailKey  = "email"
)

// TokenVerifier decodes a presented credential into its identity claims.
type TokenVerifier interface {
	Verify(token string) (domain.Claims, error)
}

// Auth gates a route on the token cookie. No cookie short-circuits with
// 401 "No permission", a failed verification with 401 "Unauthorized";
// otherwise the decoded claims are attached to the context and next runs
// exactly once. A handler behind this middleware never executes without a
// valid identity attached.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No permission")
			}

			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			c.Set(ClaimsKey, claims)
			c.Set(EmailKey, claims.Email())

			return next(c)
		}
	}
}
