package repositories

import (
	"fmt"

	"diancan/internal/models"

	"gorm.io/gorm"
)

// GORMStatsRepository is a GORM implementation of StatsRepository.
type GORMStatsRepository struct {
	db *gorm.DB
}

// NewGORMStatsRepository creates a new instance of GORMStatsRepository.
func NewGORMStatsRepository(db *gorm.DB) *GORMStatsRepository {
	return &GORMStatsRepository{
		db: db,
	}
}

func (r *GORMStatsRepository) CountItems() (int64, error) {
	return r.count(&models.Item{}, "items")
}

func (r *GORMStatsRepository) CountOrders() (int64, error) {
	return r.count(&models.Order{}, "orders")
}

func (r *GORMStatsRepository) CountFavorites() (int64, error) {
	return r.count(&models.Favorite{}, "favorites")
}

func (r *GORMStatsRepository) count(model interface{}, name string) (int64, error) {
	var count int64
	if err := r.db.Model(model).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", name, err)
	}
	return count, nil
}

// SumRevenue sums order totals excluding pending orders. It is 0 when no order qualifies.
func (r *GORMStatsRepository) SumRevenue() (float64, error) {
	var total float64
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("status <> ?", models.OrderStatusPending).
		Row().
		Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}
