package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
)

type MenuHandler struct {
	menu ports.MenuService
}

func NewMenuHandler(menu ports.MenuService) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// List returns the catalog. Served from a short-lived cache.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  errorResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.menu.List(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a catalog item.
//
// @Summary      Add a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object  true  "Menu item; name and price required"
// @Success      200   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := h.menu.Create(c.Request().Context(), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createdResponse{Message: "Menu item added", ID: id})
}

// Update sets fields on a catalog item.
//
// @Summary      Update a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Menu item id"
// @Param        body  body      object  true  "Fields to set"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/menu/{id} [put]
func (h *MenuHandler) Update(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.menu.Update(c.Request().Context(), c.Param("id"), fields); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Menu updated"})
}

// Delete removes a catalog item.
//
// @Summary      Delete a menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Menu item id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.menu.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Menu deleted"})
}
