package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/openblog/blog-api/internal/api/metrics"
	"github.com/openblog/blog-api/internal/core/auth"
)

// principalKey is the context key the auth middleware stores the verified
// principal under. Handlers read it through handler.Principal.
const principalKey = "principal"

// Auth requires a valid bearer token and injects its principal into the
// request context. Requests without a token, or with one that fails
// verification, are rejected with 401.
func Auth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			p, err := verify(tokens, raw)
			if err != nil {
				return err
			}

			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// OptionalAuth verifies a bearer token when one is present but lets
// anonymous requests through. Public read routes use it so an authenticated
// caller still gets its identity while an anonymous one gets the zero
// principal. A token that is present but invalid is still rejected; a
// broken token is never silently downgraded to anonymous.
func OptionalAuth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}
			if raw == "" {
				return next(c)
			}

			p, err := verify(tokens, raw)
			if err != nil {
				return err
			}

			c.Set(principalKey, p)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", nil
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

func verify(tokens *auth.TokenService, raw string) (auth.Principal, error) {
	p, err := tokens.Verify(raw)
	if err != nil {
		metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
		return auth.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return p, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenSignature):
		return "signature"
	case errors.Is(err, auth.ErrTokenClaims):
		return "claims"
	case errors.Is(err, auth.ErrTokenExpired):
		return "expired"
	default:
		return "malformed"
	}
}
