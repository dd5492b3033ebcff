package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"productcatalog/internal/events"
	"productcatalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ItemHandler handles HTTP requests for items.
type ItemHandler struct {
	service   *services.ItemService
	publisher events.Publisher
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewItemHandler creates a new ItemHandler. publisher receives the events
// returned by status changes.
func NewItemHandler(service *services.ItemService, publisher events.Publisher, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		service:   service,
		publisher: publisher,
		validate:  newValidator(),
		logger:    logger,
	}
}

// CreateItemRequest represents the request body for creating an item.
type CreateItemRequest struct {
	ProductID    uint   `json:"productId" validate:"required"`
	SerialNumber string `json:"serialNumber" validate:"max=64,excludesall=/"`
}

// RegisterRoutes registers the item routes with the Fiber app.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/items")
	itemRoutes.Get("/", h.HandleGetItems)
	itemRoutes.Post("/", h.HandleCreateItem)
	itemRoutes.Get("/:serialNumber", h.HandleGetItemBySerialNumber)
	itemRoutes.Put("/:serialNumber/setOperational", h.HandleSetOperational)
}

// HandleGetItems retrieves all items.
func (h *ItemHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return internalError(c, h.logger, "Could not retrieve items", err)
	}
	return c.JSON(items)
}

// HandleGetItemBySerialNumber retrieves a single item.
func (h *ItemHandler) HandleGetItemBySerialNumber(c *fiber.Ctx) error {
	serialNumber := c.Params("serialNumber")
	item, err := h.service.FindBySerialNumber(c.UserContext(), serialNumber)
	if errors.Is(err, services.ErrItemNotFound) {
		return notFound(c, fmt.Sprintf("Item %s not found", serialNumber))
	}
	if err != nil {
		return internalError(c, h.logger, "Could not retrieve item", err)
	}
	return c.JSON(item)
}

// HandleCreateItem registers a new unit of a product and answers with its serial number.
func (h *ItemHandler) HandleCreateItem(c *fiber.Ctx) error {
	var req CreateItemRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	serialNumber := strings.TrimSpace(req.SerialNumber)
	item, err := h.service.CreateItem(c.UserContext(), req.ProductID, serialNumber)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		return badRequest(c, fmt.Sprintf("Product with ID %d does not exist", req.ProductID))
	case errors.Is(err, services.ErrSerialNumberTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": fmt.Sprintf("Serial number %s is already registered", serialNumber),
		})
	case err != nil:
		return internalError(c, h.logger, "Could not create item", err)
	}
	h.logger.Info("Item created", zap.String("serial_number", item.SerialNumber), zap.Uint("product_id", item.ProductID))
	return created(c, "serialNumber", item.SerialNumber)
}

// HandleSetOperational sets the operational status of an item from the
// operational query parameter and announces items that become available.
func (h *ItemHandler) HandleSetOperational(c *fiber.Ctx) error {
	serialNumber := c.Params("serialNumber")

	raw := c.Query("operational")
	operational, err := strconv.ParseBool(raw)
	if err != nil {
		return badRequest(c, fmt.Sprintf("operational must be true or false, got %q", raw))
	}

	item, event, err := h.service.SetOperational(c.UserContext(), serialNumber, operational)
	if errors.Is(err, services.ErrItemNotFound) {
		return notFound(c, fmt.Sprintf("Item %s not found", serialNumber))
	}
	if err != nil {
		return internalError(c, h.logger, "Could not update item", err)
	}

	h.logger.Info("Item status updated", zap.String("serial_number", item.SerialNumber), zap.String("status", string(item.Status)))
	if event != nil {
		h.publish(c, *event)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// publish hands event to the publisher. Failures are logged; the status change stands.
func (h *ItemHandler) publish(c *fiber.Ctx, event events.ProductEvent) {
	if h.publisher == nil {
		h.logger.Warn("No event publisher configured, dropping event", zap.String("topic", event.Topic))
		return
	}
	if err := h.publisher.Publish(c.UserContext(), event); err != nil {
		h.logger.Warn("Failed to publish product event",
			zap.String("topic", event.Topic),
			zap.Uint("product_id", event.ProductID),
			zap.Error(err),
		)
		return
	}
	h.logger.Info("Published product event", zap.String("topic", event.Topic), zap.Uint("product_id", event.ProductID))
}
