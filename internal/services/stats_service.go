package services

import (
	"log/slog"

	"diancan/internal/models"
	"diancan/internal/repositories"
)

// StatsService computes the dashboard summary.
type StatsService struct {
	repo repositories.StatsRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo repositories.StatsRepository) *StatsService {
	return &StatsService{
		repo: repo,
	}
}

// GetSummary returns item, order and favorite counts plus the revenue of
// non-pending orders. A failing aggregate is logged and reported as zero.
func (s *StatsService) GetSummary() models.Stats {
	var stats models.Stats
	var err error

	if stats.TotalItems, err = s.repo.CountItems(); err != nil {
		slog.Error("Failed to count items for stats", "error", err)
		stats.TotalItems = 0
	}
	if stats.TotalOrders, err = s.repo.CountOrders(); err != nil {
		slog.Error("Failed to count orders for stats", "error", err)
		stats.TotalOrders = 0
	}
	if stats.TotalFavorites, err = s.repo.CountFavorites(); err != nil {
		slog.Error("Failed to count favorites for stats", "error", err)
		stats.TotalFavorites = 0
	}
	if stats.TotalRevenue, err = s.repo.SumRevenue(); err != nil {
		slog.Error("Failed to sum revenue for stats", "error", err)
		stats.TotalRevenue = 0
	}
	return stats
}
