package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"diancan/internal/config"
	"diancan/internal/database"
	"diancan/internal/router"
	"diancan/internal/services"
	"diancan/pkg/logger"
	"diancan/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// --- Logging ---
	slog.SetDefault(logger.New(cfg.Log.Level, cfg.Log.Format, os.Stdout))

	app, cleanup, err := setup(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// --- Start HTTP Server ---
	slog.Info("Starting server", "port", cfg.Server.Port, "db_driver", cfg.Database.Driver)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(cfg.Server.Port)
	}()

	select {
	case <-quit:
		slog.Info("Shutting down server...")
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed to start", "error", err)
		}
	}

	if err := app.Shutdown(); err != nil {
		slog.Error("Error during Fiber shutdown", "error", err)
	}
	slog.Info("Server gracefully stopped")
}

// setup opens the store, prepares the schema and builds the Fiber app.
// The returned cleanup closes the broker connection and the database.
func setup(cfg *config.Config) (*fiber.App, func(), error) {
	// --- Database ---
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		closeDB(db)
		return nil, nil, err
	}
	if cfg.Database.Seed {
		seeded, err := database.Seed(db)
		if err != nil {
			closeDB(db)
			return nil, nil, err
		}
		if seeded {
			slog.Info("Seeded item catalog")
		}
	}

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQ.URL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.RabbitMQ.Exchange,
		})
		if err != nil {
			// Orders still work without events.
			slog.Warn("RabbitMQ unavailable, order events disabled", "error", err)
		} else {
			publisher = mqClient
		}
	}

	app := router.New(cfg.Server, db, publisher)

	cleanup := func() {
		if mqClient != nil {
			if err := mqClient.Close(); err != nil {
				slog.Error("Error closing RabbitMQ client", "error", err)
			}
		}
		closeDB(db)
	}
	return app, cleanup, nil
}

func closeDB(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		slog.Error("Error closing database", "error", err)
	}
}
