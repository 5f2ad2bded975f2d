package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/golibhub/golib-api/internal/dto"
	"github.com/golibhub/golib-api/internal/store"
	"github.com/golibhub/golib-api/internal/utils"
)

// ShiftHandler wires the shift master endpoints. Reads are open to every
// session; mutations sit on the admin group and the store re-checks the
// role regardless.
type ShiftHandler struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewShiftHandler constructs the handler.
func NewShiftHandler(store *store.Store, validator *validator.Validate, logger zerolog.Logger) *ShiftHandler {
	return &ShiftHandler{
		store:     store,
		validator: validator,
		logger:    logger.With().Str("component", "shift_handler").Logger(),
	}
}

// Register attaches the read routes to the router group.
func (h *ShiftHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

// RegisterAdmin attaches the admin-only mutation routes.
func (h *ShiftHandler) RegisterAdmin(router fiber.Router) {
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *ShiftHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "shifts retrieved", h.store.Shifts())
}

func (h *ShiftHandler) create(c *fiber.Ctx) error {
	var payload dto.ShiftCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	shift, err := h.store.AddShift(store.NewShift{
		Name:       payload.Name,
		StartTime:  payload.StartTime,
		EndTime:    payload.EndTime,
		MonthlyFee: payload.MonthlyFee,
		IsActive:   payload.IsActive,
	})
	if err != nil {
		return sendStoreError(c, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "shift created", shift)
}

func (h *ShiftHandler) update(c *fiber.Ctx) error {
	var payload dto.ShiftUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	shift, err := h.store.UpdateShift(c.Params("id"), store.ShiftUpdate{
		Name:       payload.Name,
		StartTime:  payload.StartTime,
		EndTime:    payload.EndTime,
		MonthlyFee: payload.MonthlyFee,
		IsActive:   payload.IsActive,
	})
	if err != nil {
		return sendStoreError(c, err)
	}
	return utils.SendSuccess(c, "shift updated", shift)
}

func (h *ShiftHandler) delete(c *fiber.Ctx) error {
	if err := h.store.DeleteShift(c.Params("id")); err != nil {
		return sendStoreError(c, err)
	}
	return utils.SendSuccess(c, "shift deleted", nil)
}
