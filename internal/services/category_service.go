package services

import (
	"context"
	"errors"
	"fmt"

	"productcatalog/internal/models"
	"productcatalog/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// FindAll retrieves all categories.
func (s *CategoryService) FindAll(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAll(ctx)
}

// FindByID retrieves a single category, or ErrCategoryNotFound.
func (s *CategoryService) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("category %d: %w", id, ErrCategoryNotFound)
	}
	return category, err
}

// FindByName returns the categories named exactly name.
func (s *CategoryService) FindByName(ctx context.Context, name string) ([]models.Category, error) {
	return s.repo.FindByName(ctx, name)
}

// FindByDescription returns the categories whose description is exactly description.
func (s *CategoryService) FindByDescription(ctx context.Context, description string) ([]models.Category, error) {
	return s.repo.FindByDescription(ctx, description)
}

// FindByParentID returns the direct children of a category.
func (s *CategoryService) FindByParentID(ctx context.Context, parentID uint) ([]models.Category, error) {
	return s.repo.FindByParentID(ctx, parentID)
}

// FindDescendants returns every category below parentID, breadth first.
// A category reachable twice is reported once.
func (s *CategoryService) FindDescendants(ctx context.Context, parentID uint) ([]models.Category, error) {
	descendants := []models.Category{}
	visited := map[uint]bool{parentID: true}
	queue := []uint{parentID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		children, err := s.repo.FindByParentID(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("failed to walk children of category %d: %w", current, err)
		}
		for _, child := range children {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			descendants = append(descendants, child)
			queue = append(queue, child.ID)
		}
	}
	return descendants, nil
}

// ResolveCategory looks up an optional category reference. It returns nil
// without error when id is nil or names no category.
func (s *CategoryService) ResolveCategory(ctx context.Context, id *uint) (*models.Category, error) {
	if id == nil {
		return nil, nil
	}
	category, err := s.FindByID(ctx, *id)
	if errors.Is(err, ErrCategoryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

// CreateCategory persists a new category. An unknown parentID is dropped and
// the category is created as a root.
func (s *CategoryService) CreateCategory(ctx context.Context, parentID *uint, name, description string) (*models.Category, error) {
	category := &models.Category{
		Name:        name,
		Description: description,
	}

	parent, err := s.ResolveCategory(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve parent category: %w", err)
	}
	if parent != nil {
		category.ParentID = &parent.ID
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
