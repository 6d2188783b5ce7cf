package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/imtti/institute-api/internal/middleware"
)

// echoBody captures the raw request body as a map so create responses can
// return the new id merged with exactly what the client sent. Server-side
// storage defaults never appear here unless the client supplied them.
func echoBody(c *fiber.Ctx) map[string]interface{} {
	echo := map[string]interface{}{}
	_ = json.Unmarshal(c.Body(), &echo)
	return echo
}

// createResponse merges the inserted id over the echoed request body. A
// client-supplied id field survives the merge, matching the original wire
// behavior.
func createResponse(id uint, echo map[string]interface{}) map[string]interface{} {
	response := map[string]interface{}{"id": id}
	for key, value := range echo {
		response[key] = value
	}
	return response
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
