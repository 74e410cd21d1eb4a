package handlers

import (
	"fmt"

	"diancan/internal/models"
	"diancan/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles HTTP requests for menu items.
type ItemHandler struct {
	service *services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{
		service: service,
	}
}

// RegisterRoutes registers the item and category routes with the Fiber app.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/items")
	itemRoutes.Get("/", h.HandleGetItems)
	itemRoutes.Get("/:id", h.HandleGetItemByID)
	itemRoutes.Post("/", h.HandleCreateItem)
	itemRoutes.Put("/:id", h.HandleUpdateItem)
	itemRoutes.Delete("/:id", h.HandleDeleteItem)

	router.Get("/categories", h.HandleGetCategories)
}

// HandleGetItems lists items, newest first, optionally filtered by ?category=.
func (h *ItemHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems(c.Query("category"))
	if err != nil {
		return respondError(c, err, "", "Could not retrieve items")
	}
	return c.JSON(items)
}

// HandleGetItemByID retrieves a single item by its ID.
func (h *ItemHandler) HandleGetItemByID(c *fiber.Ctx) error {
	id := c.Params("id")
	item, err := h.service.GetItemByID(id)
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Item with ID %s not found", id), "Could not retrieve item")
	}
	return c.JSON(item)
}

// HandleCreateItem creates a new item.
func (h *ItemHandler) HandleCreateItem(c *fiber.Ctx) error {
	var req models.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}

	item, err := h.service.CreateItem(req)
	if err != nil {
		return respondError(c, err, "", "Could not create item")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateItem replaces the fields of an existing item.
func (h *ItemHandler) HandleUpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")
	var req models.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}

	item, err := h.service.UpdateItem(id, req)
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Item with ID %s not found", id), "Could not update item")
	}
	return c.JSON(item)
}

// HandleDeleteItem deletes an item together with its order lines and favorites.
func (h *ItemHandler) HandleDeleteItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteItem(id); err != nil {
		return respondError(c, err, fmt.Sprintf("Item with ID %s not found", id), "Could not delete item")
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Item %s deleted successfully", id),
	})
}

// HandleGetCategories lists the distinct item categories.
func (h *ItemHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories()
	if err != nil {
		return respondError(c, err, "", "Could not retrieve categories")
	}
	return c.JSON(categories)
}
