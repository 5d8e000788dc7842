package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/membership-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Membership *handlers.MembershipHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Check)

	api := app.Group("/api/v1")

	membership := api.Group("/membership")
	membership.Get("/csrf-token", cfg.Membership.CSRFToken)
	membership.Post("/signup", cfg.Membership.Signup)
	membership.Get("/", cfg.Membership.List)
	membership.Get("/:id", cfg.Membership.GetByID)
}
