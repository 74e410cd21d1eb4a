package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"diancan/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves every order header, newest first.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.db.Order("created_at DESC").Order("id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// GetLines loads the lines of all given orders in one joined query.
func (r *GORMOrderRepository) GetLines(orderIDs []string) ([]models.OrderLine, error) {
	lines := []models.OrderLine{}
	if len(orderIDs) == 0 {
		return lines, nil
	}
	err := r.db.Model(&models.OrderLine{}).
		Select("order_items.*, COALESCE(items.name, '') AS item_name, COALESCE(items.image, '') AS item_image").
		Joins("LEFT JOIN items ON items.id = order_items.item_id").
		Where("order_items.order_id IN ?", orderIDs).
		Order("order_items.id ASC").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get order lines: %w", err)
	}
	return lines, nil
}

// GetByID retrieves a single order header by its ID.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create stores the order header and all of its lines in a single transaction.
// Every referenced item must exist; otherwise nothing is written and the
// returned error wraps ErrNotFound.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if missing, err := missingItems(tx, order.Items); err != nil {
			return err
		} else if len(missing) > 0 {
			return fmt.Errorf("items %s not found: %w", strings.Join(missing, ", "), ErrNotFound)
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}
		if err := tx.Create(&order.Items).Error; err != nil {
			return fmt.Errorf("failed to create order lines: %w", err)
		}
		return nil
	})
}

// missingItems returns the IDs referenced by lines that are absent from the catalog.
func missingItems(tx *gorm.DB, lines []models.OrderLine) ([]string, error) {
	seen := make(map[string]bool, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if !seen[line.ItemID] {
			seen[line.ItemID] = true
			ids = append(ids, line.ItemID)
		}
	}

	var found []string
	if err := tx.Model(&models.Item{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, fmt.Errorf("failed to check order items: %w", err)
	}
	exists := make(map[string]bool, len(found))
	for _, id := range found {
		exists[id] = true
	}

	var missing []string
	for _, id := range ids {
		if !exists[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// UpdateStatus updates the status of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s not found for status update: %w", id, ErrNotFound)
	}
	return nil
}
