package services_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"diancan/internal/models"
	"diancan/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetLines(orderIDs []string) ([]models.OrderLine, error) {
	args := m.Called(orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderLine), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func TestOrderService_GetAllOrders_Empty(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("GetAll").Return([]models.Order{}, nil).Once()

	orders, err := service.GetAllOrders()
	assert.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
	mockRepo.AssertNotCalled(t, "GetLines", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetAllOrders_AttachesLines(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	headers := []models.Order{
		{ID: "o3", Total: 18},
		{ID: "o2", Total: 0},
		{ID: "o1", Total: 56},
	}
	lines := []models.OrderLine{
		{ID: 1, OrderID: "o1", ItemID: "1", Quantity: 2, Price: 28, ItemName: "宫保鸡丁"},
		{ID: 2, OrderID: "o3", ItemID: "10", Quantity: 1, Price: 18, ItemName: "珍珠奶茶"},
	}
	mockRepo.On("GetAll").Return(headers, nil).Once()
	mockRepo.On("GetLines", []string{"o3", "o2", "o1"}).Return(lines, nil).Once()

	orders, err := service.GetAllOrders()
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, "o3", orders[0].ID)
	assert.Equal(t, "o2", orders[1].ID)
	assert.Equal(t, "o1", orders[2].ID)

	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "珍珠奶茶", orders[0].Items[0].ItemName)
	assert.NotNil(t, orders[1].Items)
	assert.Empty(t, orders[1].Items)
	require.Len(t, orders[2].Items, 1)
	assert.Equal(t, 28.0, orders[2].Items[0].Price)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetAllOrders_LineFailureDegrades(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("GetAll").Return([]models.Order{{ID: "o1"}, {ID: "o2"}}, nil).Once()
	mockRepo.On("GetLines", []string{"o1", "o2"}).Return(nil, fmt.Errorf("database error")).Once()

	orders, err := service.GetAllOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, order := range orders {
		assert.NotNil(t, order.Items)
		assert.Empty(t, order.Items)
	}
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetAllOrders_HeaderFailure(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("GetAll").Return(nil, fmt.Errorf("database error")).Once()
	_, err := service.GetAllOrders()
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("GetByID", "o1").Return(&models.Order{ID: "o1", Total: 20}, nil).Once()
	mockRepo.On("GetLines", []string{"o1"}).Return([]models.OrderLine{{OrderID: "o1", ItemID: "1", Quantity: 2, Price: 10}}, nil).Once()

	order, err := service.GetOrderByID("o1")
	require.NoError(t, err)
	assert.Len(t, order.Items, 1)

	mockRepo.On("GetByID", "missing").Return(nil, notFound("order with ID %s not found", "missing")).Once()
	_, err = service.GetOrderByID("missing")
	assert.True(t, errors.Is(err, services.ErrNotFound))
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockMQ := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockMQ)

	var stored *models.Order
	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		stored = args.Get(0).(*models.Order)
	}).Return(nil).Once()
	mockMQ.On("Publish", models.EventOrderCreated, mock.Anything).Return(nil).Once()

	order, err := service.CreateOrder(models.CreateOrderRequest{
		Items: []models.OrderLineRequest{
			{ItemID: "1", Quantity: 2, Price: floatPtr(10)},
			{ItemID: "10", Quantity: 1, Price: floatPtr(18.5)},
		},
	})
	require.NoError(t, err)
	assert.Same(t, stored, order)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 38.5, order.Total, "missing total is computed from the lines")
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.DefaultCustomerName, order.CustomerName)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "1", order.Items[0].ItemID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 10.0, order.Items[0].Price)
	assert.Equal(t, 18.5, order.Items[1].Price)

	body := mockMQ.Calls[0].Arguments.Get(1).([]byte)
	var event models.OrderEvent
	require.NoError(t, json.Unmarshal(body, &event))
	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, models.EventOrderCreated, event.Event)
	assert.Equal(t, 38.5, event.Total)

	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestOrderService_CreateOrder_CustomerInfoAndMatchingTotal(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	total := 20.0
	order, err := service.CreateOrder(models.CreateOrderRequest{
		Items: []models.OrderLineRequest{{ItemID: "1", Quantity: 2, Price: floatPtr(10)}},
		Total: &total,
		CustomerInfo: models.CustomerInfo{
			Name: "Alice", Phone: "123", Address: "1 Main St", Note: "no spice",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, order.Total)
	assert.Equal(t, "Alice", order.CustomerName)
	assert.Equal(t, "123", order.CustomerPhone)
	assert.Equal(t, "1 Main St", order.DeliveryAddress)
	assert.Equal(t, "no spice", order.Notes)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	var verr *services.ValidationError

	_, err := service.CreateOrder(models.CreateOrderRequest{})
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "items")

	_, err = service.CreateOrder(models.CreateOrderRequest{
		Items: []models.OrderLineRequest{{ItemID: "1", Quantity: 0, Price: floatPtr(10)}, {Quantity: 1, Price: floatPtr(-2)}, {ItemID: "2", Quantity: 3}},
	})
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "items[0].quantity")
	assert.Contains(t, verr.Fields, "items[1].item_id")
	assert.Contains(t, verr.Fields, "items[1].price")
	assert.Contains(t, verr.Fields, "items[2].price", "a line without a unit price is rejected")

	wrongTotal := 25.0
	_, err = service.CreateOrder(models.CreateOrderRequest{
		Items: []models.OrderLineRequest{{ItemID: "1", Quantity: 2, Price: floatPtr(10)}},
		Total: &wrongTotal,
	})
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "total")

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_TotalIsNotRounded(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Twice()

	order, err := service.CreateOrder(models.CreateOrderRequest{
		Items: []models.OrderLineRequest{{ItemID: "1", Quantity: 1, Price: floatPtr(0.333)}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.333, order.Total)

	// A total rounded to cents by the client is still accepted, the exact sum is stored
	rounded := 1.0
	order, err = service.CreateOrder(models.CreateOrderRequest{
		Items: []models.OrderLineRequest{{ItemID: "1", Quantity: 3, Price: floatPtr(0.333)}},
		Total: &rounded,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.999, order.Total)
	assert.Equal(t, 0.333, order.Items[0].Price)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_RepositoryErrors(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockMQ := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockMQ)

	req := models.CreateOrderRequest{Items: []models.OrderLineRequest{{ItemID: "ghost", Quantity: 1, Price: floatPtr(5)}}}

	// Unknown item becomes a validation error
	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(notFound("items %s not found", "ghost")).Once()
	_, err := service.CreateOrder(req)
	var verr *services.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields["items"], "ghost")

	// Storage failure stays a plain error
	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(fmt.Errorf("disk full")).Once()
	_, err = service.CreateOrder(req)
	require.Error(t, err)
	assert.False(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "disk full")

	mockMQ.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_PublishFailureIsIgnored(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockMQ := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockMQ)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockMQ.On("Publish", models.EventOrderCreated, mock.Anything).Return(fmt.Errorf("broker down")).Once()

	order, err := service.CreateOrder(models.CreateOrderRequest{
		Items: []models.OrderLineRequest{{ItemID: "1", Quantity: 1, Price: floatPtr(28)}},
	})
	assert.NoError(t, err)
	assert.NotNil(t, order)
	mockMQ.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockMQ := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockMQ)

	mockRepo.On("UpdateStatus", "o1", models.OrderStatusConfirmed).Return(nil).Once()
	mockMQ.On("Publish", models.EventOrderStatusUpdated, mock.Anything).Return(nil).Once()
	assert.NoError(t, service.UpdateOrderStatus("o1", models.OrderStatusConfirmed))

	mockRepo.On("UpdateStatus", "missing", models.OrderStatusDelivered).
		Return(notFound("order with ID %s not found for status update", "missing")).Once()
	err := service.UpdateOrderStatus("missing", models.OrderStatusDelivered)
	assert.True(t, errors.Is(err, services.ErrNotFound))

	for _, status := range []string{"", "shipped", "cancelled", "PENDING"} {
		err = service.UpdateOrderStatus("o1", status)
		var verr *services.ValidationError
		assert.True(t, errors.As(err, &verr), "status %q should be rejected", status)
	}

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "UpdateStatus", 2)
	mockMQ.AssertExpectations(t)
}
