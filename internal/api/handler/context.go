package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/smartrestaurant/restaurant-api/internal/api/middleware"
	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Authenticate middleware.
// A route wired without the middleware fails closed.
func ctxClaims(c echo.Context) (*domain.SessionClaims, error) {
	claims := middleware.Claims(c)
	if claims == nil || claims.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return claims, nil
}

// bindFields decodes a free-form JSON object body. Path and query
// parameters are deliberately not merged in.
func bindFields(c echo.Context) (domain.Fields, error) {
	fields := domain.Fields{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
