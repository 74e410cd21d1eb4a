package services_test

import (
	"errors"
	"fmt"
	"testing"

	"diancan/internal/models"
	"diancan/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFavoriteRepository is a mock implementation of repositories.FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) GetItems() ([]models.Item, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockFavoriteRepository) Exists(itemID string) (bool, error) {
	args := m.Called(itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Create(favorite *models.Favorite) error {
	args := m.Called(favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Delete(itemID string) error {
	args := m.Called(itemID)
	return args.Error(0)
}

func TestFavoriteService_GetFavorites(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := services.NewFavoriteService(mockRepo)

	expected := []models.Item{{ID: "3", Name: "红烧肉"}}
	mockRepo.On("GetItems").Return(expected, nil).Once()

	items, err := service.GetFavorites()
	assert.NoError(t, err)
	assert.Equal(t, expected, items)
	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := services.NewFavoriteService(mockRepo)

	// First add succeeds
	mockRepo.On("Exists", "3").Return(false, nil).Once()
	mockRepo.On("Create", &models.Favorite{ItemID: "3"}).Return(nil).Once()
	assert.NoError(t, service.AddFavorite("3"))

	// Second add conflicts
	mockRepo.On("Exists", "3").Return(true, nil).Once()
	err := service.AddFavorite("3")
	assert.True(t, errors.Is(err, services.ErrConflict))

	// Lookup failure is passed through
	mockRepo.On("Exists", "4").Return(false, fmt.Errorf("database error")).Once()
	err = service.AddFavorite("4")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, services.ErrConflict))

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestFavoriteService_AddFavorite_UnknownItem(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := services.NewFavoriteService(mockRepo)

	mockRepo.On("Exists", "ghost").Return(false, nil).Once()
	mockRepo.On("Create", &models.Favorite{ItemID: "ghost"}).Return(notFound("item with ID %s not found", "ghost")).Once()

	err := service.AddFavorite("ghost")
	var verr *services.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "item_id")
	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_AddFavorite_MissingID(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := services.NewFavoriteService(mockRepo)

	err := service.AddFavorite("  ")
	var verr *services.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "item_id")
	mockRepo.AssertNotCalled(t, "Exists", mock.Anything)
}

func TestFavoriteService_RemoveFavorite(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	service := services.NewFavoriteService(mockRepo)

	mockRepo.On("Delete", "not-a-favorite").Return(nil).Once()
	assert.NoError(t, service.RemoveFavorite("not-a-favorite"))
	mockRepo.AssertExpectations(t)
}
