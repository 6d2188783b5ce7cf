package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/imtti/institute-api/internal/config"
	"github.com/imtti/institute-api/internal/database"
	"github.com/imtti/institute-api/internal/handler"
	"github.com/imtti/institute-api/internal/middleware"
	"github.com/imtti/institute-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	Store              *database.Store
	CenterHandler      *handler.CenterHandler
	StudentHandler     *handler.StudentHandler
	ApplicationHandler *handler.ApplicationHandler
	MarkHandler        *handler.MarkHandler
	AdminHandler       *handler.AdminHandler
	AuthHandler        *handler.AuthHandler
}

// Register wires the HTTP routes into the fiber application. The SPA
// fallback is registered last so it can never shadow an API route.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})

	// Status endpoints answer even without a pool.
	api.Get("/test", handler.TestCheck(cfg, deps.Store))
	api.Get("/health", handler.HealthCheck(cfg, deps.Store))

	// Every data route registered from here on sits behind the
	// availability gate.
	api.Use(middleware.RequireDatabase(deps.Store))

	if deps.CenterHandler != nil {
		deps.CenterHandler.Register(api.Group("/centers"))
	}
	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students"))
	}
	if deps.ApplicationHandler != nil {
		deps.ApplicationHandler.Register(api.Group("/applications"))
	}
	if deps.MarkHandler != nil {
		deps.MarkHandler.Register(api.Group("/marks"))
	}
	if deps.AdminHandler != nil {
		deps.AdminHandler.Register(api.Group("/admins"))
	}
	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"))
	}

	app.Static("/", cfg.StaticDir)
	app.Use(handler.SPAFallback(cfg.StaticDir))
}
