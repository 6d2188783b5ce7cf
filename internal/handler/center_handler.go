package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/imtti/institute-api/internal/dto"
	"github.com/imtti/institute-api/internal/service"
	"github.com/imtti/institute-api/internal/utils"
)

// CenterHandler handles center listing and registration.
type CenterHandler struct {
	service service.CenterService
	logger  zerolog.Logger
}

// NewCenterHandler constructs a center handler.
func NewCenterHandler(service service.CenterService, logger zerolog.Logger) *CenterHandler {
	return &CenterHandler{
		service: service,
		logger:  logger.With().Str("component", "center_handler").Logger(),
	}
}

// Register wires center routes.
func (h *CenterHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
}

func (h *CenterHandler) list(c *fiber.Ctx) error {
	centers, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list centers")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(centers)
}

func (h *CenterHandler) create(c *fiber.Ctx) error {
	var payload dto.CreateCenterRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.Create(c.Context(), payload)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create center")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(createResponse(id, echoBody(c)))
}
