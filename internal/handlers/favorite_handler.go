package handlers

import (
	"diancan/internal/models"
	"diancan/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FavoriteHandler handles HTTP requests for favorites.
type FavoriteHandler struct {
	service *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(service *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
	}
}

// RegisterRoutes registers the favorite routes with the Fiber app.
func (h *FavoriteHandler) RegisterRoutes(router fiber.Router) {
	favoriteRoutes := router.Group("/favorites")
	favoriteRoutes.Get("/", h.HandleGetFavorites)
	favoriteRoutes.Post("/", h.HandleAddFavorite)
	favoriteRoutes.Delete("/:id", h.HandleRemoveFavorite)
}

// HandleGetFavorites lists the favorited items, most recently favorited first.
func (h *FavoriteHandler) HandleGetFavorites(c *fiber.Ctx) error {
	items, err := h.service.GetFavorites()
	if err != nil {
		return respondError(c, err, "", "Could not retrieve favorites")
	}
	return c.JSON(items)
}

// HandleAddFavorite marks an item as favorite.
func (h *FavoriteHandler) HandleAddFavorite(c *fiber.Ctx) error {
	var req models.FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}

	if err := h.service.AddFavorite(req.ItemID); err != nil {
		return respondError(c, err, "", "Could not add favorite")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Favorite added successfully",
	})
}

// HandleRemoveFavorite removes the favorite for the item in the path. Removing
// an item that is not a favorite still succeeds.
func (h *FavoriteHandler) HandleRemoveFavorite(c *fiber.Ctx) error {
	if err := h.service.RemoveFavorite(c.Params("id")); err != nil {
		return respondError(c, err, "", "Could not remove favorite")
	}
	return c.JSON(fiber.Map{
		"message": "Favorite removed successfully",
	})
}
