package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/imtti/institute-api/internal/dto"
	"github.com/imtti/institute-api/internal/service"
	"github.com/imtti/institute-api/internal/utils"
)

// AuthHandler exposes the three login endpoints. Each is a single equality
// lookup; a miss is a 401, a lookup failure is a 500.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register wires the login routes.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/admin", h.loginAdmin)
	router.Post("/center", h.loginCenter)
	router.Post("/student", h.loginStudent)
}

func (h *AuthHandler) loginAdmin(c *fiber.Ctx) error {
	var payload dto.CredentialsRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	admin, err := h.service.LoginAdmin(c.Context(), payload.Email, payload.Password)
	if err != nil {
		return h.loginError(c, err, "admin")
	}

	return utils.SendAuthSuccess(c, admin)
}

func (h *AuthHandler) loginCenter(c *fiber.Ctx) error {
	var payload dto.CredentialsRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	center, err := h.service.LoginCenter(c.Context(), payload.Email, payload.Password)
	if err != nil {
		return h.loginError(c, err, "center")
	}

	return utils.SendAuthSuccess(c, center)
}

func (h *AuthHandler) loginStudent(c *fiber.Ctx) error {
	var payload dto.StudentLoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	student, err := h.service.LoginStudent(c.Context(), payload.RegistrationID, payload.DateOfBirth)
	if err != nil {
		return h.loginError(c, err, "student")
	}

	return utils.SendAuthSuccess(c, student)
}

func (h *AuthHandler) loginError(c *fiber.Ctx, err error, role string) error {
	if errors.Is(err, service.ErrInvalidCredentials) {
		return utils.SendAuthFailure(c)
	}

	requestLogger(h.logger, c).Error().Err(err).Str("role", role).Msg("login lookup failed")
	return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
}
