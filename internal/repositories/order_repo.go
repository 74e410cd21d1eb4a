package repositories

import (
	"diancan/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// GetAll returns order headers newest first, without lines.
	GetAll() ([]models.Order, error)
	// GetLines returns the lines of the given orders with item name and image joined in.
	GetLines(orderIDs []string) ([]models.OrderLine, error)
	GetByID(id string) (*models.Order, error)
	// Create stores the order header and its lines atomically.
	Create(order *models.Order) error
	UpdateStatus(id string, status string) error
}
