package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/golibhub/golib-api/internal/dto"
	"github.com/golibhub/golib-api/internal/store"
	"github.com/golibhub/golib-api/internal/utils"
)

// SeatHandler wires seat capacity and occupancy endpoints.
type SeatHandler struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewSeatHandler constructs the handler.
func NewSeatHandler(store *store.Store, validator *validator.Validate, logger zerolog.Logger) *SeatHandler {
	return &SeatHandler{
		store:     store,
		validator: validator,
		logger:    logger.With().Str("component", "seat_handler").Logger(),
	}
}

// Register attaches seat routes to the router group.
func (h *SeatHandler) Register(router fiber.Router) {
	router.Get("", h.seatMap)
	router.Get("/logs", h.logs)
	router.Post("/assign", h.assign)
	router.Post("/release", h.release)
}

// RegisterAdmin attaches the admin-only capacity route.
func (h *SeatHandler) RegisterAdmin(router fiber.Router) {
	router.Put("/count", h.updateCount)
}

// seatMap returns the per-shift occupancy projection. Without a shiftId
// query every seat reads VACANT, since occupancy only exists per shift.
func (h *SeatHandler) seatMap(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "seat map computed", h.store.SeatMap(c.Query("shiftId")))
}

func (h *SeatHandler) logs(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "capacity log retrieved", h.store.SeatLogs())
}

func (h *SeatHandler) updateCount(c *fiber.Ctx) error {
	var payload dto.SeatCountRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.store.UpdateSeatCount(payload.Count); err != nil {
		return sendStoreError(c, err)
	}
	return utils.SendSuccess(c, "seat capacity updated", fiber.Map{"count": payload.Count})
}

func (h *SeatHandler) assign(c *fiber.Ctx) error {
	var payload dto.SeatAssignRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.store.AssignSeat(payload.StudentID, payload.SeatNumber); err != nil {
		return sendStoreError(c, err)
	}
	return utils.SendSuccess(c, "seat assigned", nil)
}

func (h *SeatHandler) release(c *fiber.Ctx) error {
	var payload dto.SeatReleaseRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	h.store.ReleaseSeat(payload.SeatNumber)
	return utils.SendSuccess(c, "seat released", nil)
}
