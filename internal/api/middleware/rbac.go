package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

// RequireRole enforces role-based access control. It must run after
// Authenticate; a request without claims is treated as unauthenticated.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := Claims(c)
			if claims == nil {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[claims.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
