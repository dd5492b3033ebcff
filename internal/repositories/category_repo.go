package repositories

import (
	"context"

	"productcatalog/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	FindByName(ctx context.Context, name string) ([]models.Category, error)
	FindByDescription(ctx context.Context, description string) ([]models.Category, error)
	FindByParentID(ctx context.Context, parentID uint) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}
