package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/golibhub/golib-api/internal/middleware"
	"github.com/golibhub/golib-api/internal/store"
	"github.com/golibhub/golib-api/internal/utils"
)

// sendStoreError maps a domain refusal onto an HTTP status while keeping
// the message intact; the screens surface it verbatim.
func sendStoreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrForbidden):
		return utils.SendError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, store.ErrStudentNotFound),
		errors.Is(err, store.ErrShiftNotFound),
		errors.Is(err, store.ErrPaymentNotFound),
		errors.Is(err, store.ErrSeatNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrInvalidAmount):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrShiftInUse),
		errors.Is(err, store.ErrCannotShrinkSeats),
		errors.Is(err, store.ErrSeatAlreadyAssigned),
		errors.Is(err, store.ErrAlreadyPunchedIn),
		errors.Is(err, store.ErrOutsideShiftWindow):
		return utils.SendError(c, fiber.StatusConflict, err.Error())
	default:
		return utils.SendError(c, fiber.StatusInternalServerError, "internal error")
	}
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}
