package handlers

import (
	"errors"
	"fmt"

	"productcatalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidator(),
		logger:   logger,
	}
}

// CreateProductRequest represents the request body for creating a product.
type CreateProductRequest struct {
	CategoryID  *uint           `json:"categoryId"`
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"max=1000"`
	DailyPrice  decimal.Decimal `json:"dailyPrice" validate:"gte=0"`
	Brand       string          `json:"brand" validate:"max=100"`
	Model       string          `json:"model" validate:"max=100"`
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/byName/:name", h.HandleGetProductsByName)
	productRoutes.Get("/byCategory/:categoryId", h.HandleGetProductsByCategory)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Delete("/:id", h.HandleRemoveProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return internalError(c, h.logger, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	product, err := h.service.FindByID(c.UserContext(), id)
	if errors.Is(err, services.ErrProductNotFound) {
		return notFound(c, fmt.Sprintf("Product with ID %d not found", id))
	}
	if err != nil {
		return internalError(c, h.logger, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product and answers with its ID.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	product, err := h.service.CreateProduct(c.UserContext(), req.CategoryID, req.Name, req.Description, req.DailyPrice, req.Brand, req.Model)
	if err != nil {
		return internalError(c, h.logger, "Could not create product", err)
	}
	h.logger.Info("Product created", zap.Uint("product_id", product.ID))
	return created(c, "id", product.ID)
}

// HandleRemoveProduct deletes a product and all of its items.
func (h *ProductHandler) HandleRemoveProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if _, err := h.service.RemoveProduct(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return notFound(c, fmt.Sprintf("Product with ID %d not found", id))
		}
		return internalError(c, h.logger, "Could not remove product", err)
	}
	h.logger.Info("Product removed", zap.Uint("product_id", id))
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetProductsByName lists products whose name contains the path value, ignoring case.
func (h *ProductHandler) HandleGetProductsByName(c *fiber.Ctx) error {
	name := c.Params("name")
	products, err := h.service.FindByNameContainingIgnoreCase(c.UserContext(), name)
	if err != nil {
		return internalError(c, h.logger, "Could not retrieve products", err)
	}
	return listOrNotFound(c, products, fmt.Sprintf("No product name contains %q", name))
}

// HandleGetProductsByCategory lists the products attached directly to a category.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		return badRequest(c, err.Error())
	}
	products, err := h.service.GetProductsByCategoryID(c.UserContext(), categoryID)
	if err != nil {
		return internalError(c, h.logger, "Could not retrieve products", err)
	}
	return listOrNotFound(c, products, fmt.Sprintf("No products in category %d", categoryID))
}
