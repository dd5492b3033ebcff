package main

import (
	"time"

	"productcatalog/internal/events"
	"productcatalog/internal/handlers"
	"productcatalog/internal/middleware"
	"productcatalog/internal/repositories"
	"productcatalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and handlers over db and returns the
// Fiber app serving the catalog API.
func NewApp(db *gorm.DB, publisher events.Publisher, logger *zap.Logger) *fiber.App {
	// --- Repositories ---
	repos := repositories.NewGORMRepositories(db)
	uow := repositories.NewGORMUnitOfWork(db)

	// --- Services ---
	categoryService := services.NewCategoryService(repos.Categories)
	productService := services.NewProductService(repos.Products, categoryService, uow)
	itemService := services.NewItemService(repos.Items, productService)

	// --- Handlers ---
	categoryHandler := handlers.NewCategoryHandler(categoryService, logger)
	productHandler := handlers.NewProductHandler(productService, logger)
	itemHandler := handlers.NewItemHandler(itemService, publisher, logger)

	app := fiber.New(fiber.Config{
		AppName:      "product-catalog",
		UnescapePath: true,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(logger))

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	categoryHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)
	itemHandler.RegisterRoutes(apiV1)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "unreachable",
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "connected",
		})
	})

	return app
}
