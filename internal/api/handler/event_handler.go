package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
)

// EventHandler serves restaurant announcements.
type EventHandler struct {
	events ports.EventService
}

// NewEventHandler creates an EventHandler backed by the given service.
func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List handles GET /api/events.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Success      200  {array}   object
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.events.List(c.Request().Context())
	if err != nil {
		return err
	}
	if events == nil {
		events = []domain.Event{}
	}
	return c.JSON(http.StatusOK, events)
}

// Create handles POST /api/events.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object  true  "Event fields"
// @Success      200   {object}  createdResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := h.events.Create(c.Request().Context(), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createdResponse{Message: "Event created", ID: id})
}

// Update handles PUT /api/events/:id.
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Event id"
// @Param        body  body      object  true  "Fields to set"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.events.Update(c.Request().Context(), c.Param("id"), fields); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Event updated"})
}

// Delete handles DELETE /api/events/:id.
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	if err := h.events.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Event deleted"})
}
