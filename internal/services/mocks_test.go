package services_test

import (
	"context"

	"productcatalog/internal/models"
	"productcatalog/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) ([]models.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByDescription(ctx context.Context, description string) ([]models.Category, error) {
	args := m.Called(ctx, description)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByParentID(ctx context.Context, parentID uint) ([]models.Category, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByNameContainingIgnoreCase(ctx context.Context, text string) ([]models.Product, error) {
	args := m.Called(ctx, text)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategoryID(ctx context.Context, categoryID uint) ([]models.Product, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockItemRepository is a mock implementation of repositories.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) GetBySerialNumber(ctx context.Context, serialNumber string) (*models.Item, error) {
	args := m.Called(ctx, serialNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) FindByProductID(ctx context.Context, productID uint) ([]models.Item, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) Create(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) UpdateStatus(ctx context.Context, serialNumber string, status models.ItemStatus) error {
	args := m.Called(ctx, serialNumber, status)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteByProductID(ctx context.Context, productID uint) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

// fakeUnitOfWork runs the callback directly against mock repositories.
type fakeUnitOfWork struct {
	repos repositories.Repositories
	calls int
}

func (u *fakeUnitOfWork) Do(ctx context.Context, fn func(repos repositories.Repositories) error) error {
	u.calls++
	return fn(u.repos)
}
