package services

import (
	"errors"
	"fmt"
	"strings"

	"diancan/internal/models"
	"diancan/internal/repositories"
)

// FavoriteService manages the shared favorites list.
type FavoriteService struct {
	repo repositories.FavoriteRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(repo repositories.FavoriteRepository) *FavoriteService {
	return &FavoriteService{
		repo: repo,
	}
}

// GetFavorites returns the favorited items, most recent first.
func (s *FavoriteService) GetFavorites() ([]models.Item, error) {
	return s.repo.GetItems()
}

// AddFavorite favorites an item. Favoriting the same item twice is a conflict
// and an item missing from the catalog is a validation error.
func (s *FavoriteService) AddFavorite(itemID string) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return newValidationError("Item ID is required", "item_id", "Field 'item_id' failed on the 'required' tag")
	}

	exists, err := s.repo.Exists(itemID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("item %s is already a favorite: %w", itemID, ErrConflict)
	}

	if err := s.repo.Create(&models.Favorite{ItemID: itemID}); err != nil {
		if errors.Is(err, ErrNotFound) {
			return newValidationError("Item does not exist", "item_id", fmt.Sprintf("item %s is not in the catalog", itemID))
		}
		return err
	}
	return nil
}

// RemoveFavorite unfavorites an item. Removing an item that is not favorited succeeds.
func (s *FavoriteService) RemoveFavorite(itemID string) error {
	return s.repo.Delete(itemID)
}
