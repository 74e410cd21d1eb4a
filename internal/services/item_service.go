package services

import (
	"fmt"
	"strings"

	"diancan/internal/models"
	"diancan/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ItemService handles business logic related to the menu catalog.
type ItemService struct {
	repo     repositories.ItemRepository
	validate *validator.Validate
}

// NewItemService creates a new ItemService.
func NewItemService(repo repositories.ItemRepository) *ItemService {
	return &ItemService{
		repo:     repo,
		validate: newValidator(),
	}
}

// GetAllItems retrieves the catalog, optionally restricted to one category.
// An empty category, "all" or the client's "全部" tab mean no filter.
func (s *ItemService) GetAllItems(category string) ([]models.Item, error) {
	category = strings.TrimSpace(category)
	if category == models.AllCategories || strings.EqualFold(category, "all") {
		category = ""
	}
	return s.repo.GetAll(category)
}

// GetItemByID retrieves a single item by its ID.
func (s *ItemService) GetItemByID(id string) (*models.Item, error) {
	return s.repo.GetByID(id)
}

// GetCategories lists the categories currently present in the catalog.
func (s *ItemService) GetCategories() ([]string, error) {
	return s.repo.Categories()
}

// CreateItem validates the request and stores a new item.
func (s *ItemService) CreateItem(req models.ItemRequest) (*models.Item, error) {
	req = normalizeItemRequest(req)
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:        req.Name,
		Price:       *req.Price,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Rating:      models.DefaultRating,
	}
	if req.Rating != nil {
		item.Rating = *req.Rating
	}

	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem replaces the mutable fields of an existing item. The rating is
// kept when the request omits it.
func (s *ItemService) UpdateItem(id string, req models.ItemRequest) (*models.Item, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	req = normalizeItemRequest(req)
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Price = *req.Price
	existing.Category = req.Category
	existing.Description = req.Description
	existing.Image = req.Image
	if req.Rating != nil {
		existing.Rating = *req.Rating
	}

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteItem deletes an item and everything that references it.
func (s *ItemService) DeleteItem(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete item %s: %w", id, err)
	}
	return nil
}

func normalizeItemRequest(req models.ItemRequest) models.ItemRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	req.Description = strings.TrimSpace(req.Description)
	req.Image = strings.TrimSpace(req.Image)
	return req
}
