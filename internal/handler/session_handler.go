package handler

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/golibhub/golib-api/internal/dto"
	"github.com/golibhub/golib-api/internal/middleware"
	"github.com/golibhub/golib-api/internal/models"
	"github.com/golibhub/golib-api/internal/store"
	"github.com/golibhub/golib-api/internal/utils"
)

const sessionTokenTTL = 12 * time.Hour

// SessionHandler wires the login gate. Picking a role is the whole of
// authentication; the token only carries the synthetic identity forward.
type SessionHandler struct {
	store     *store.Store
	jwtSecret string
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewSessionHandler constructs the handler.
func NewSessionHandler(store *store.Store, jwtSecret string, validator *validator.Validate, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		store:     store,
		jwtSecret: jwtSecret,
		validator: validator,
		logger:    logger.With().Str("component", "session_handler").Logger(),
	}
}

// Register attaches session routes to the router group.
func (h *SessionHandler) Register(router fiber.Router) {
	router.Post("/login", h.login)
	router.Post("/logout", h.logout)
	router.Get("/me", h.me)
}

func (h *SessionHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	user := h.store.Login(models.UserRole(payload.Role))
	token, err := middleware.IssueToken(h.jwtSecret, user, sessionTokenTTL)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to issue session token")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to start session")
	}

	return utils.SendSuccess(c, "logged in", dto.LoginResponse{Token: token, User: user})
}

func (h *SessionHandler) logout(c *fiber.Ctx) error {
	h.store.Logout()
	return utils.SendSuccess(c, "logged out", nil)
}

func (h *SessionHandler) me(c *fiber.Ctx) error {
	user, ok := h.store.CurrentUser()
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "no active session")
	}
	return utils.SendSuccess(c, "session retrieved", user)
}
