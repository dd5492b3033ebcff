package repositories

import (
	"context"

	"productcatalog/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	FindByNameContainingIgnoreCase(ctx context.Context, text string) ([]models.Product, error)
	FindByCategoryID(ctx context.Context, categoryID uint) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
}
