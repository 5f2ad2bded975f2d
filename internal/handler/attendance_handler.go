package handler

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/golibhub/golib-api/internal/dto"
	"github.com/golibhub/golib-api/internal/models"
	"github.com/golibhub/golib-api/internal/store"
	"github.com/golibhub/golib-api/internal/utils"
)

// AttendanceHandler wires punch endpoints, including the scan endpoint
// fed by the external QR/barcode decoder.
type AttendanceHandler struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(store *store.Store, validator *validator.Validate, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		store:     store,
		validator: validator,
		logger:    logger.With().Str("component", "attendance_handler").Logger(),
	}
}

// Register attaches attendance routes to the router group.
func (h *AttendanceHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("/mark", h.mark)
	router.Post("/scan", h.scan)
}

func (h *AttendanceHandler) list(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return utils.SendSuccess(c, "attendance retrieved", h.store.AttendanceForDate(date))
}

func (h *AttendanceHandler) mark(c *fiber.Ctx) error {
	var payload dto.MarkAttendanceRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	return h.punch(c, payload.StudentID, models.PunchType(payload.Type))
}

// scan resolves a decoded QR text (a student display code) and applies
// the punch, so scanning hardware never needs internal ids.
func (h *AttendanceHandler) scan(c *fiber.Ctx) error {
	var payload dto.ScanRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	student, err := h.store.StudentByCode(payload.Code)
	if err != nil {
		return sendStoreError(c, err)
	}

	return h.punch(c, student.ID, models.PunchType(payload.Type))
}

func (h *AttendanceHandler) punch(c *fiber.Ctx, studentID string, punch models.PunchType) error {
	if err := h.store.MarkAttendance(studentID, punch); err != nil {
		return sendStoreError(c, err)
	}
	return utils.SendSuccess(c, "attendance recorded", dto.AttendanceResultResponse{
		Recorded: true,
		Message:  "Attendance recorded.",
	})
}
