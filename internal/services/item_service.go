package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"productcatalog/internal/events"
	"productcatalog/internal/models"
	"productcatalog/internal/repositories"

	"github.com/google/uuid"
)

// ItemService handles business logic related to items.
type ItemService struct {
	repo     repositories.ItemRepository
	products *ProductService
}

// NewItemService creates a new ItemService.
func NewItemService(repo repositories.ItemRepository, products *ProductService) *ItemService {
	return &ItemService{
		repo:     repo,
		products: products,
	}
}

// FindAll retrieves all items.
func (s *ItemService) FindAll(ctx context.Context) ([]models.Item, error) {
	return s.repo.GetAll(ctx)
}

// FindBySerialNumber retrieves a single item, or ErrItemNotFound.
func (s *ItemService) FindBySerialNumber(ctx context.Context, serialNumber string) (*models.Item, error) {
	item, err := s.repo.GetBySerialNumber(ctx, serialNumber)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("item %s: %w", serialNumber, ErrItemNotFound)
	}
	return item, err
}

// CreateItem registers a new unit of an existing product. A blank serial
// number is replaced by a generated one. New items are not operational.
func (s *ItemService) CreateItem(ctx context.Context, productID uint, serialNumber string) (*models.Item, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	serialNumber = strings.TrimSpace(serialNumber)
	if serialNumber == "" {
		serialNumber = uuid.NewString()
	}

	if _, err := s.repo.GetBySerialNumber(ctx, serialNumber); err == nil {
		return nil, fmt.Errorf("item %s: %w", serialNumber, ErrSerialNumberTaken)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	item := &models.Item{
		SerialNumber: serialNumber,
		ProductID:    product.ID,
		Status:       models.ItemStatusNotOperational,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("item %s: %w", serialNumber, ErrSerialNumberTaken)
		}
		return nil, err
	}
	return item, nil
}

// SetOperational moves an item into or out of service. The returned event is
// non-nil only when the item has just become operational; re-applying the
// current status changes nothing and yields no event.
func (s *ItemService) SetOperational(ctx context.Context, serialNumber string, operational bool) (*models.Item, *events.ProductEvent, error) {
	item, err := s.FindBySerialNumber(ctx, serialNumber)
	if err != nil {
		return nil, nil, err
	}

	target := models.StatusFor(operational)
	if item.Status == target {
		return item, nil, nil
	}

	if err := s.repo.UpdateStatus(ctx, serialNumber, target); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, fmt.Errorf("item %s: %w", serialNumber, ErrItemNotFound)
		}
		return nil, nil, err
	}
	item.Status = target

	if target != models.ItemStatusOperational {
		return item, nil, nil
	}
	event := events.NewUnitAvailable(item.ProductID)
	return item, &event, nil
}
