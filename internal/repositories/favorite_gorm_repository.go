package repositories

import (
	"fmt"

	"diancan/internal/models"

	"gorm.io/gorm"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// GetItems returns the favorited items, most recently favorited first.
func (r *GORMFavoriteRepository) GetItems() ([]models.Item, error) {
	items := []models.Item{}
	err := r.db.Model(&models.Item{}).
		Select("items.*").
		Joins("JOIN favorites ON favorites.item_id = items.id").
		Order("favorites.created_at DESC").
		Order("favorites.id DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite items: %w", err)
	}
	return items, nil
}

// Exists reports whether the item is already favorited.
func (r *GORMFavoriteRepository) Exists(itemID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Favorite{}).Where("item_id = ?", itemID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check favorite for item %s: %w", itemID, err)
	}
	return count > 0, nil
}

// Create adds a favorite row. The item must exist in the catalog; otherwise
// nothing is written and the returned error wraps ErrNotFound.
func (r *GORMFavoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Item{}).Where("id = ?", favorite.ItemID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check item %s: %w", favorite.ItemID, err)
		}
		if count == 0 {
			return fmt.Errorf("item with ID %s not found: %w", favorite.ItemID, ErrNotFound)
		}
		if err := tx.Create(favorite).Error; err != nil {
			return fmt.Errorf("failed to create favorite: %w", err)
		}
		return nil
	})
}

// Delete removes every favorite row for the item. Missing rows are not an error.
func (r *GORMFavoriteRepository) Delete(itemID string) error {
	if err := r.db.Where("item_id = ?", itemID).Delete(&models.Favorite{}).Error; err != nil {
		return fmt.Errorf("failed to delete favorite for item %s: %w", itemID, err)
	}
	return nil
}
