package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/membership-service/internal/health"
)

// HealthHandler answers liveness queries from the store monitor.
type HealthHandler struct {
	monitor     *health.Monitor
	environment string
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(monitor *health.Monitor, environment string) *HealthHandler {
	return &HealthHandler{monitor: monitor, environment: environment}
}

// Check reports current store connectivity.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := h.monitor.Check(c.UserContext())

	body := fiber.Map{
		"status":      "healthy",
		"timestamp":   status.Timestamp,
		"environment": h.environment,
		"database":    status.Database,
	}
	if status.Healthy {
		return c.JSON(body)
	}

	body["status"] = "unhealthy"
	return c.Status(fiber.StatusServiceUnavailable).JSON(body)
}
