package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
)

// ClaimsKey is the echo context key holding *domain.SessionClaims.
const ClaimsKey = "claims"

// Authenticate verifies the bearer token and injects its claims into the
// context. Missing and invalid tokens produce the same
// domain.ErrUnauthenticated; the reason is only logged.
func Authenticate(verifier ports.TokenVerifier, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				log.Debug().Str("path", c.Path()).Msg("auth: missing authorization header")
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				log.Debug().Str("path", c.Path()).Msg("auth: malformed authorization header")
				return domain.ErrUnauthenticated
			}

			claims, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				log.Debug().Err(err).Str("path", c.Path()).Msg("auth: token rejected")
				return domain.ErrUnauthenticated
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// Claims returns the claims injected by Authenticate, or nil.
func Claims(c echo.Context) *domain.SessionClaims {
	claims, _ := c.Get(ClaimsKey).(*domain.SessionClaims)
	return claims
}
