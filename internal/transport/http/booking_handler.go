package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/service"
	"github.com/travia-app/travia-backend/internal/util"
)

type BookingHandler struct {
	bookings *service.BookingService
}

func RegisterBookings(e *echo.Echo, bookings *service.BookingService) {
	handler := &BookingHandler{bookings: bookings}
	e.POST("/api/booking", handler.createBooking)
}

func (h *BookingHandler) createBooking(c echo.Context) error {
	var booking domain.Booking
	if err := c.Bind(&booking); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	created, err := h.bookings.CreateBooking(c.Request().Context(), &booking)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTourNotFound):
			return c.JSON(http.StatusNotFound, util.Error("tour not found"))
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, util.Error(validationMessage(err)))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to create booking"))
		}
	}
	return c.JSON(http.StatusCreated, created)
}
