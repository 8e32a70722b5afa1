package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// PingFunc checks a dependency the service needs to serve traffic.
type PingFunc func(ctx context.Context) error

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	ping PingFunc
}

// NewProbeHandler creates a new probe handler. A nil ping means the service
// has no external dependency to check and is always ready.
func NewProbeHandler(ping PingFunc) *ProbeHandler {
	return &ProbeHandler{ping: ping}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the session store is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.ping != nil {
		if err := h.ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "session store unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
