package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/repository"
)

// IdentityResolver verifies the Bearer token on the Authorization header and
// attaches the decoded claims to the request context. Verification is
// synchronous: any missing, malformed or expired token terminates the
// request with 401 and the downstream handler is never invoked.
func IdentityResolver(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "unauthorized access",
				Code:  "UNAUTHENTICATED",
			})
		},
	})
}

// CurrentClaims returns the claims attached by IdentityResolver.
func CurrentClaims(c echo.Context) (*Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	return claims, ok
}

// RequireAdmin grants elevated capability by re-reading the caller's stored
// role on every request. A role embedded in a token is never trusted.
// Must run after IdentityResolver; absence of claims is a wiring bug.
func RequireAdmin(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := CurrentClaims(c)
			if !ok {
				return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
					Error: "identity not resolved",
					Code:  "IDENTITY_NOT_RESOLVED",
				})
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil || user.Role != model.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: "forbidden access",
					Code:  "FORBIDDEN",
				})
			}

			return next(c)
		}
	}
}
