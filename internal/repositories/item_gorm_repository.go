package repositories

import (
	"context"
	"errors"
	"fmt"

	"productcatalog/internal/models"

	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{db: db}
}

// GetAll retrieves all items.
func (r *GORMItemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	if err := r.db.WithContext(ctx).Order("serial_number").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get all items: %w", err)
	}
	return items, nil
}

// GetBySerialNumber retrieves a single item by its serial number.
func (r *GORMItemRepository) GetBySerialNumber(ctx context.Context, serialNumber string) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "serial_number = ?", serialNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item with serial number %s: %w", serialNumber, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get item %s: %w", serialNumber, err)
	}
	return &item, nil
}

// FindByProductID returns every item of a product.
func (r *GORMItemRepository) FindByProductID(ctx context.Context, productID uint) ([]models.Item, error) {
	items := []models.Item{}
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("serial_number").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find items of product %d: %w", productID, err)
	}
	return items, nil
}

// Create inserts a new item.
func (r *GORMItemRepository) Create(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item %s: %w", item.SerialNumber, translate(err))
	}
	return nil
}

// UpdateStatus changes the status column of one item.
func (r *GORMItemRepository) UpdateStatus(ctx context.Context, serialNumber string, status models.ItemStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("serial_number = ?", serialNumber).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status of item %s: %w", serialNumber, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item with serial number %s not updated: %w", serialNumber, ErrNotFound)
	}
	return nil
}

// DeleteByProductID removes all items belonging to a product.
func (r *GORMItemRepository) DeleteByProductID(ctx context.Context, productID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.Item{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete items of product %d: %w", productID, res.Error)
	}
	return res.RowsAffected, nil
}
