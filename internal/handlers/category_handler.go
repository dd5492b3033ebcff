package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"productcatalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: newValidator(),
		logger:   logger,
	}
}

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	ParentID    *uint  `json:"parentId"`
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Get("/byName/:name", h.HandleGetCategoriesByName)
	categoryRoutes.Get("/byDescription/:description", h.HandleGetCategoriesByDescription)
	categoryRoutes.Get("/byParent/:id", h.HandleGetCategoriesByParent)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
}

// HandleGetCategories lists every category.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return internalError(c, h.logger, "Could not retrieve categories", err)
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID retrieves a single category.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	category, err := h.service.FindByID(c.UserContext(), id)
	if errors.Is(err, services.ErrCategoryNotFound) {
		return notFound(c, fmt.Sprintf("Category with ID %d not found", id))
	}
	if err != nil {
		return internalError(c, h.logger, "Could not retrieve category", err)
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a category and answers with its ID.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	category, err := h.service.CreateCategory(c.UserContext(), req.ParentID, req.Name, req.Description)
	if err != nil {
		return internalError(c, h.logger, "Could not create category", err)
	}
	h.logger.Info("Category created", zap.Uint("category_id", category.ID))
	return created(c, "id", category.ID)
}

// HandleGetCategoriesByName lists the categories with exactly the given name.
func (h *CategoryHandler) HandleGetCategoriesByName(c *fiber.Ctx) error {
	name := c.Params("name")
	categories, err := h.service.FindByName(c.UserContext(), name)
	if err != nil {
		return internalError(c, h.logger, "Could not retrieve categories", err)
	}
	return listOrNotFound(c, categories, fmt.Sprintf("No category named %q", name))
}

// HandleGetCategoriesByDescription lists the categories with exactly the given description.
func (h *CategoryHandler) HandleGetCategoriesByDescription(c *fiber.Ctx) error {
	description := c.Params("description")
	categories, err := h.service.FindByDescription(c.UserContext(), description)
	if err != nil {
		return internalError(c, h.logger, "Could not retrieve categories", err)
	}
	return listOrNotFound(c, categories, fmt.Sprintf("No category described as %q", description))
}

// HandleGetCategoriesByParent lists the children of a category, or every
// category below it when recursive=true.
func (h *CategoryHandler) HandleGetCategoriesByParent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	recursive := false
	if raw := c.Query("recursive"); raw != "" {
		if recursive, err = strconv.ParseBool(raw); err != nil {
			return badRequest(c, fmt.Sprintf("recursive must be true or false, got %q", raw))
		}
	}

	find := h.service.FindByParentID
	if recursive {
		find = h.service.FindDescendants
	}

	categories, err := find(c.UserContext(), id)
	if err != nil {
		return internalError(c, h.logger, "Could not retrieve categories", err)
	}
	return listOrNotFound(c, categories, fmt.Sprintf("No categories under category %d", id))
}
