package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/imtti/institute-api/internal/database"
	"github.com/imtti/institute-api/internal/utils"
)

// RequireDatabase guards every data route: when the store has no usable
// pool the request is answered with the fixed 503 body before any handler
// or query runs. The state is a single atomic read per request.
func RequireDatabase(store *database.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store == nil || !store.Available() {
			return utils.SendDatabaseUnavailable(c)
		}

		return c.Next()
	}
}
