package handlers

import (
	"diancan/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler serves the dashboard aggregates.
type StatsHandler struct {
	service *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// RegisterRoutes registers the stats route with the Fiber app.
func (h *StatsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/stats", h.HandleGetStats)
}

// HandleGetStats always answers 200; failed aggregates are reported as zero.
func (h *StatsHandler) HandleGetStats(c *fiber.Ctx) error {
	return c.JSON(h.service.GetSummary())
}
