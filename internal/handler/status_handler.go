package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/imtti/institute-api/internal/config"
	"github.com/imtti/institute-api/internal/database"
)

// TestResponse is the payload returned by the connectivity test endpoint.
type TestResponse struct {
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse is the payload returned by the health endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
}

func databaseStatus(store *database.Store) string {
	if store != nil && store.Available() {
		return "connected"
	}
	return "disconnected"
}

// TestCheck returns a handler answering the API connectivity test. It works
// with or without a connection pool.
func TestCheck(cfg config.Config, store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(TestResponse{
			Message:   cfg.AppName + " is running",
			Status:    "success",
			Database:  databaseStatus(store),
			Timestamp: time.Now().UTC(),
		})
	}
}

// HealthCheck returns a handler that reports application health information.
func HealthCheck(cfg config.Config, store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(HealthResponse{
			Status:   "OK",
			Message:  cfg.AppName + " is healthy",
			Database: databaseStatus(store),
		})
	}
}
