package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/golibhub/golib-api/internal/dto"
	"github.com/golibhub/golib-api/internal/models"
	"github.com/golibhub/golib-api/internal/service"
	"github.com/golibhub/golib-api/internal/store"
	"github.com/golibhub/golib-api/internal/utils"
)

// PaymentHandler wires fee collection endpoints.
type PaymentHandler struct {
	store     *store.Store
	dashboard service.DashboardService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewPaymentHandler constructs the handler.
func NewPaymentHandler(store *store.Store, dashboard service.DashboardService, validator *validator.Validate, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		store:     store,
		dashboard: dashboard,
		validator: validator,
		logger:    logger.With().Str("component", "payment_handler").Logger(),
	}
}

// Register attaches payment routes to the router group.
func (h *PaymentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Delete("/:id", h.delete)
}

func (h *PaymentHandler) list(c *fiber.Ctx) error {
	if studentID := c.Query("studentId"); studentID != "" {
		return utils.SendSuccess(c, "payments retrieved", h.store.PaymentsForStudent(studentID))
	}
	return utils.SendSuccess(c, "payments retrieved", h.store.Payments())
}

func (h *PaymentHandler) create(c *fiber.Ctx) error {
	var payload dto.PaymentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	payment, err := h.store.AddPayment(store.NewPayment{
		StudentID: payload.StudentID,
		Amount:    payload.Amount,
		Date:      payload.Date,
		Mode:      models.PaymentMode(payload.Mode),
	})
	if err != nil {
		return sendStoreError(c, err)
	}
	if h.dashboard != nil {
		h.dashboard.Invalidate(c.Context())
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "payment recorded", payment)
}

func (h *PaymentHandler) delete(c *fiber.Ctx) error {
	if err := h.store.DeletePayment(c.Params("id")); err != nil {
		return sendStoreError(c, err)
	}
	if h.dashboard != nil {
		h.dashboard.Invalidate(c.Context())
	}
	return utils.SendSuccess(c, "payment deleted", nil)
}
