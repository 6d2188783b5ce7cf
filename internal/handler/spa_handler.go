package handler

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// SPAFallback serves the single-page application entry document for any
// route no explicit handler claimed, enabling client-side routing. It must
// be registered after every API route.
func SPAFallback(staticDir string) fiber.Handler {
	index := filepath.Join(staticDir, "index.html")

	return func(c *fiber.Ctx) error {
		return c.SendFile(index)
	}
}
