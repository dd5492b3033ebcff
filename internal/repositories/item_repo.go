package repositories

import (
	"context"

	"productcatalog/internal/models"
)

// ItemRepository defines the interface for item data access.
type ItemRepository interface {
	GetAll(ctx context.Context) ([]models.Item, error)
	GetBySerialNumber(ctx context.Context, serialNumber string) (*models.Item, error)
	FindByProductID(ctx context.Context, productID uint) ([]models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	UpdateStatus(ctx context.Context, serialNumber string, status models.ItemStatus) error
	// DeleteByProductID removes every item of a product and returns how many rows went away.
	DeleteByProductID(ctx context.Context, productID uint) (int64, error)
}
