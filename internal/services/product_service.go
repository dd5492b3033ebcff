package services

import (
	"context"
	"errors"
	"fmt"

	"productcatalog/internal/models"
	"productcatalog/internal/repositories"

	"github.com/shopspring/decimal"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo       repositories.ProductRepository
	categories *CategoryService
	uow        repositories.UnitOfWork
}

// NewProductService creates a new ProductService. Removals run inside uow so
// a product never disappears while its items remain.
func NewProductService(repo repositories.ProductRepository, categories *CategoryService, uow repositories.UnitOfWork) *ProductService {
	return &ProductService{
		repo:       repo,
		categories: categories,
		uow:        uow,
	}
}

// FindAll retrieves all products.
func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// FindByID retrieves a single product, or ErrProductNotFound.
func (s *ProductService) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	return product, err
}

// CreateProduct persists a new product. An unknown categoryID is dropped.
func (s *ProductService) CreateProduct(ctx context.Context, categoryID *uint, name, description string, dailyPrice decimal.Decimal, brand, model string) (*models.Product, error) {
	product := &models.Product{
		Name:        name,
		Description: description,
		DailyPrice:  dailyPrice,
		Brand:       brand,
		Model:       model,
	}

	category, err := s.categories.ResolveCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product category: %w", err)
	}
	if category != nil {
		product.CategoryID = &category.ID
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// RemoveProduct deletes a product together with all of its items and returns
// the removed product.
func (s *ProductService) RemoveProduct(ctx context.Context, id uint) (*models.Product, error) {
	var removed *models.Product
	err := s.uow.Do(ctx, func(repos repositories.Repositories) error {
		product, err := repos.Products.GetByID(ctx, id)
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("product %d: %w", id, ErrProductNotFound)
		}
		if err != nil {
			return err
		}
		if _, err := repos.Items.DeleteByProductID(ctx, id); err != nil {
			return err
		}
		if err := repos.Products.Delete(ctx, id); err != nil {
			return err
		}
		removed = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// FindByNameContainingIgnoreCase returns products whose name contains text, ignoring case.
func (s *ProductService) FindByNameContainingIgnoreCase(ctx context.Context, text string) ([]models.Product, error) {
	return s.repo.FindByNameContainingIgnoreCase(ctx, text)
}

// GetProductsByCategoryID returns the products attached directly to categoryID.
// Products of descendant categories are not included.
func (s *ProductService) GetProductsByCategoryID(ctx context.Context, categoryID uint) ([]models.Product, error) {
	return s.repo.FindByCategoryID(ctx, categoryID)
}
