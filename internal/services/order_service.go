package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"diancan/internal/models"
	"diancan/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// totalTolerance is the largest accepted gap between a submitted total and the line sum.
var totalTolerance = decimal.New(5, -3)

// EventPublisher sends order events to a message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher // optional
	validate  *validator.Validate
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
		validate:  newValidator(),
	}
}

// GetAllOrders retrieves all orders, newest first, each with its lines.
// If the lines cannot be loaded the orders are still returned with empty line lists.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	lines, err := s.orderRepo.GetLines(ids)
	if err != nil {
		slog.Error("Failed to load order lines, returning orders without items", "orders", len(orders), "error", err)
		lines = nil
	}
	attachLines(orders, lines)
	return orders, nil
}

// GetOrderByID retrieves a single order with its lines.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	lines, err := s.orderRepo.GetLines([]string{id})
	if err != nil {
		return nil, err
	}
	order.Items = lines
	return order, nil
}

func attachLines(orders []models.Order, lines []models.OrderLine) {
	byOrder := make(map[string][]models.OrderLine, len(orders))
	for _, line := range lines {
		byOrder[line.OrderID] = append(byOrder[line.OrderID], line)
	}
	for i := range orders {
		if items, ok := byOrder[orders[i].ID]; ok {
			orders[i].Items = items
		} else {
			orders[i].Items = []models.OrderLine{}
		}
	}
}

// CreateOrder validates the request, checks the total against the lines and
// stores the order with its lines in one transaction.
func (s *OrderService) CreateOrder(req models.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, newValidationError("Order must contain at least one item", "items", "at least one item is required")
	}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	total, err := orderTotal(req)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order ID: %w", err)
	}

	lines := make([]models.OrderLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = models.OrderLine{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
			Price:    *item.Price,
		}
	}

	customerName := req.CustomerInfo.Name
	if customerName == "" {
		customerName = models.DefaultCustomerName
	}

	order := &models.Order{
		ID:              id.String(),
		Total:           total,
		Status:          models.OrderStatusPending,
		CustomerName:    customerName,
		CustomerPhone:   req.CustomerInfo.Phone,
		DeliveryAddress: req.CustomerInfo.Address,
		Notes:           req.CustomerInfo.Note,
		Items:           lines,
	}

	if err := s.orderRepo.Create(order); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newValidationError("Order references unknown items", "items", err.Error())
		}
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publish(models.EventOrderCreated, models.OrderEvent{
		Event:      models.EventOrderCreated,
		OrderID:    order.ID,
		Status:     order.Status,
		Total:      order.Total,
		OccurredAt: time.Now().UTC(),
	})
	return order, nil
}

// orderTotal sums unit price times quantity over the lines without rounding.
// A submitted total must be within totalTolerance of that sum; a missing one
// is filled in.
func orderTotal(req models.CreateOrderRequest) (float64, error) {
	sum := decimal.Zero
	for _, item := range req.Items {
		sum = sum.Add(decimal.NewFromFloat(*item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if req.Total != nil {
		submitted := decimal.NewFromFloat(*req.Total)
		if submitted.Sub(sum).Abs().GreaterThan(totalTolerance) {
			return 0, newValidationError("Order total does not match its items", "total",
				fmt.Sprintf("submitted %s, items add up to %s", submitted.String(), sum.String()))
		}
	}

	total, _ := sum.Float64()
	return total, nil
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	if !models.ValidOrderStatus(status) {
		return newValidationError(fmt.Sprintf("invalid order status: %s", status), "status",
			"must be one of pending, confirmed, delivered")
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publish(models.EventOrderStatusUpdated, models.OrderEvent{
		Event:      models.EventOrderStatusUpdated,
		OrderID:    id,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// publish sends the event when a broker is configured. Failures are logged only.
func (s *OrderService) publish(routingKey string, event models.OrderEvent) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal order event", "event", routingKey, "order_id", event.OrderID, "error", err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		slog.Warn("Failed to publish order event", "event", routingKey, "order_id", event.OrderID, "error", err)
		return
	}
	slog.Debug("Published order event", "event", routingKey, "order_id", event.OrderID)
}
