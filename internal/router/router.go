package router

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"

	"diancan/internal/config"
	"diancan/internal/handlers"
	"diancan/internal/middleware"
	"diancan/internal/repositories"
	"diancan/internal/services"
)

// New wires repositories, services and handlers into a Fiber app.
// publisher may be nil, in which case order events are not sent.
func New(cfg config.ServerConfig, db *gorm.DB, publisher services.EventPublisher) *fiber.App {
	// --- Repositories ---
	itemRepo := repositories.NewGORMItemRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)
	statsRepo := repositories.NewGORMStatsRepository(db)

	// --- Services ---
	itemService := services.NewItemService(itemRepo)
	orderService := services.NewOrderService(orderRepo, publisher)
	favoriteService := services.NewFavoriteService(favoriteRepo)
	statsService := services.NewStatsService(statsRepo)

	// --- Fiber App ---
	app := fiber.New(fiber.Config{
		AppName:      "diancan",
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// --- Middleware ---
	// The request logger wraps recover so panicking requests are logged with their 500.
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(slog.Default()))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// --- API Routes ---
	api := app.Group("/api")
	handlers.NewItemHandler(itemService).RegisterRoutes(api)
	handlers.NewOrderHandler(orderService).RegisterRoutes(api)
	handlers.NewFavoriteHandler(favoriteService).RegisterRoutes(api)
	handlers.NewStatsHandler(statsService).RegisterRoutes(api)

	// --- Health Check Endpoint ---
	handlers.NewHealthHandler(db).RegisterRoutes(app)

	return app
}
