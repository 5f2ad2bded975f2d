package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/golibhub/golib-api/internal/config"
	"github.com/golibhub/golib-api/internal/handler"
	"github.com/golibhub/golib-api/internal/middleware"
	"github.com/golibhub/golib-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	SessionHandler    *handler.SessionHandler
	StudentHandler    *handler.StudentHandler
	SeatHandler       *handler.SeatHandler
	ShiftHandler      *handler.ShiftHandler
	PaymentHandler    *handler.PaymentHandler
	AttendanceHandler *handler.AttendanceHandler
	DashboardHandler  *handler.DashboardHandler
	JWTMiddleware     fiber.Handler
}

// Register wires the HTTP routes into the fiber application. Everything
// except login and health sits behind the bearer token; admin-only
// mutations additionally sit behind the role guard, and the store
// re-checks the session role as the final authority.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.SessionHandler != nil {
		deps.SessionHandler.Register(api.Group("/auth"))
	}

	protected := api.Group("", jwtMiddleware)

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(protected.Group("/students"))
	}
	if deps.PaymentHandler != nil {
		deps.PaymentHandler.Register(protected.Group("/payments"))
	}
	if deps.AttendanceHandler != nil {
		deps.AttendanceHandler.Register(protected.Group("/attendance"))
	}
	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(protected.Group("/dashboard"))
	}
	if deps.SeatHandler != nil {
		deps.SeatHandler.Register(protected.Group("/seats"))
	}
	if deps.ShiftHandler != nil {
		deps.ShiftHandler.Register(protected.Group("/shifts"))
	}

	admin := protected.Group("/admin", middleware.RequireRole("admin"))
	if deps.SeatHandler != nil {
		deps.SeatHandler.RegisterAdmin(admin.Group("/seats"))
	}
	if deps.ShiftHandler != nil {
		deps.ShiftHandler.RegisterAdmin(admin.Group("/shifts"))
	}
}
