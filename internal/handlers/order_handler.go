package handlers

import (
	"fmt"

	"diancan/internal/models"
	"diancan/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Put("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetOrders retrieves all orders with their lines, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return respondError(c, err, "", "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Order with ID %s not found", orderID), "Could not retrieve order")
	}
	return c.JSON(order)
}

// HandleCreateOrder creates a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var orderRequest models.CreateOrderRequest
	if err := c.BodyParser(&orderRequest); err != nil {
		return invalidBody(c, err)
	}

	// The service handles validation, the transactional write and event publishing.
	createdOrder, err := h.service.CreateOrder(orderRequest)
	if err != nil {
		return respondError(c, err, "", "Could not create order")
	}

	return c.Status(fiber.StatusCreated).JSON(createdOrder)
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData models.UpdateOrderStatusRequest
	if err := c.BodyParser(&updateData); err != nil {
		return invalidBody(c, err)
	}

	if err := h.service.UpdateOrderStatus(orderID, updateData.Status); err != nil {
		return respondError(c, err, fmt.Sprintf("Order with ID %s not found", orderID), "Could not update order status")
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s status updated successfully to %s", orderID, updateData.Status),
	})
}
