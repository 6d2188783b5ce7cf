package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/imtti/institute-api/internal/dto"
	"github.com/imtti/institute-api/internal/service"
	"github.com/imtti/institute-api/internal/utils"
)

// MarkHandler handles mark listing and recording.
type MarkHandler struct {
	service service.MarkService
	logger  zerolog.Logger
}

// NewMarkHandler constructs a mark handler.
func NewMarkHandler(service service.MarkService, logger zerolog.Logger) *MarkHandler {
	return &MarkHandler{
		service: service,
		logger:  logger.With().Str("component", "mark_handler").Logger(),
	}
}

// Register wires mark routes.
func (h *MarkHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
}

func (h *MarkHandler) list(c *fiber.Ctx) error {
	marks, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list marks")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(marks)
}

func (h *MarkHandler) create(c *fiber.Ctx) error {
	var payload dto.CreateMarkRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.Create(c.Context(), payload)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create mark")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(createResponse(id, echoBody(c)))
}
