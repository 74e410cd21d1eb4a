package repositories

import (
	"diancan/internal/models"
)

// ItemRepository defines the interface for menu item data access.
type ItemRepository interface {
	// GetAll returns items newest first; an empty category returns every item.
	GetAll(category string) ([]models.Item, error)
	GetByID(id string) (*models.Item, error)
	Create(item *models.Item) error
	Update(item *models.Item) error
	// Delete removes the item together with the order lines and favorites referencing it.
	Delete(id string) error
	Categories() ([]string, error)
}
