package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/imtti/institute-api/internal/dto"
	"github.com/imtti/institute-api/internal/service"
	"github.com/imtti/institute-api/internal/utils"
)

// ApplicationHandler handles application listing and submission.
type ApplicationHandler struct {
	service service.ApplicationService
	logger  zerolog.Logger
}

// NewApplicationHandler constructs an application handler.
func NewApplicationHandler(service service.ApplicationService, logger zerolog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
		logger:  logger.With().Str("component", "application_handler").Logger(),
	}
}

// Register wires application routes.
func (h *ApplicationHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
}

func (h *ApplicationHandler) list(c *fiber.Ctx) error {
	applications, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list applications")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(applications)
}

func (h *ApplicationHandler) create(c *fiber.Ctx) error {
	var payload dto.CreateApplicationRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.Create(c.Context(), payload)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create application")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(createResponse(id, echoBody(c)))
}
