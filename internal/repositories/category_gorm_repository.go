package repositories

import (
	"context"
	"errors"
	"fmt"

	"productcatalog/internal/models"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// GetAll retrieves all categories.
func (r *GORMCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *GORMCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return &category, nil
}

// FindByName returns categories whose name equals name exactly.
func (r *GORMCategoryRepository) FindByName(ctx context.Context, name string) ([]models.Category, error) {
	return r.findWhere(ctx, "name = ?", name)
}

// FindByDescription returns categories whose description equals description exactly.
func (r *GORMCategoryRepository) FindByDescription(ctx context.Context, description string) ([]models.Category, error) {
	return r.findWhere(ctx, "description = ?", description)
}

// FindByParentID returns the direct children of a category.
func (r *GORMCategoryRepository) FindByParentID(ctx context.Context, parentID uint) ([]models.Category, error) {
	return r.findWhere(ctx, "parent_id = ?", parentID)
}

func (r *GORMCategoryRepository) findWhere(ctx context.Context, query string, arg any) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.WithContext(ctx).Where(query, arg).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to find categories where %s: %w", query, err)
	}
	return categories, nil
}

// Create inserts a new category; the store assigns its ID.
func (r *GORMCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", translate(err))
	}
	return nil
}
