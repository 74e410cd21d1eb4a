package repositories

import (
	"errors"
	"fmt"
	"time"

	"diancan/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{
		db: db,
	}
}

// GetAll retrieves items from the database, newest first.
func (r *GORMItemRepository) GetAll(category string) ([]models.Item, error) {
	items := []models.Item{}
	query := r.db.Order("created_at DESC").Order("id DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single item by its ID from the database.
func (r *GORMItemRepository) GetByID(id string) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get item by ID %s: %w", id, err)
	}
	return &item, nil
}

// Create creates a new item in the database. Items without an ID get a time-ordered UUID.
func (r *GORMItemRepository) Create(item *models.Item) error {
	if item.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate item ID: %w", err)
		}
		item.ID = id.String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// Update overwrites every mutable field of an existing item.
func (r *GORMItemRepository) Update(item *models.Item) error {
	item.UpdatedAt = time.Now()
	res := r.db.Model(&models.Item{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"name":        item.Name,
		"price":       item.Price,
		"category":    item.Category,
		"description": item.Description,
		"image":       item.Image,
		"rating":      item.Rating,
		"updated_at":  item.UpdatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item with ID %s not found for update: %w", item.ID, ErrNotFound)
	}
	return nil
}

// Delete removes an item and, in the same transaction, the order lines and
// favorites that reference it.
func (r *GORMItemRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&models.OrderLine{}).Error; err != nil {
			return fmt.Errorf("failed to delete order lines for item %s: %w", id, err)
		}
		if err := tx.Where("item_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return fmt.Errorf("failed to delete favorites for item %s: %w", id, err)
		}
		res := tx.Where("id = ?", id).Delete(&models.Item{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete item: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("item with ID %s not found for deletion: %w", id, ErrNotFound)
		}
		return nil
	})
}

// Categories returns the distinct categories present in the catalog, sorted.
func (r *GORMItemRepository) Categories() ([]string, error) {
	categories := []string{}
	if err := r.db.Model(&models.Item{}).Distinct().Order("category").Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}
