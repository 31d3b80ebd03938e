package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/smartrestaurant/restaurant-api/internal/api/metrics"
	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
)

type ReservationHandler struct {
	reservations ports.ReservationService
}

func NewReservationHandler(reservations ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

// Create books a table for the caller.
//
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object  true  "date, time and table are required"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	fields, err := bindFields(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	_, err = h.reservations.Create(c.Request().Context(), ports.CreateReservationInput{
		UserID: claims.UserID,
		Slot: domain.Slot{
			Date:  slotValue(fields["date"]),
			Time:  slotValue(fields["time"]),
			Table: slotValue(fields["table"]),
		},
		Fields: fields,
	})
	if errors.Is(err, domain.ErrTableBooked) {
		metrics.ReservationConflictsTotal.Inc()
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Reservation created"})
}

// slotValue normalizes a slot attribute to a string so that table 5 and
// table "5" denote the same slot. Objects, arrays and null yield "".
func slotValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// List returns every reservation, newest first.
//
// @Summary      List reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   object
// @Failure      403  {object}  errorResponse
// @Router       /api/reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	list, err := h.reservations.List(c.Request().Context())
	if err != nil {
		return err
	}
	if list == nil {
		list = []domain.Reservation{}
	}
	return c.JSON(http.StatusOK, list)
}

// Update sets a reservation's status (default "Confirmed").
//
// @Summary      Update reservation status
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Reservation id"
// @Param        body  body      statusRequest  false "New status"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/reservations/{id} [put]
func (h *ReservationHandler) Update(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.reservations.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Reservation updated"})
}

// Delete removes a reservation.
//
// @Summary      Delete a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reservation id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	if err := h.reservations.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Reservation deleted"})
}
