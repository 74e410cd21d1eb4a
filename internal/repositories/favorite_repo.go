package repositories

import "diancan/internal/models"

// FavoriteRepository defines the interface for favorites data access.
type FavoriteRepository interface {
	GetItems() ([]models.Item, error)
	Exists(itemID string) (bool, error)
	Create(favorite *models.Favorite) error
	Delete(itemID string) error
}
