package services_test

import (
	"context"
	"fmt"
	"testing"

	"productcatalog/internal/events"
	"productcatalog/internal/models"
	"productcatalog/internal/repositories"
	"productcatalog/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type itemFixture struct {
	products *MockProductRepository
	items    *MockItemRepository
	service  *services.ItemService
}

func newItemFixture() *itemFixture {
	f := &itemFixture{
		products: new(MockProductRepository),
		items:    new(MockItemRepository),
	}
	categories := services.NewCategoryService(new(MockCategoryRepository))
	uow := &fakeUnitOfWork{repos: repositories.Repositories{Products: f.products, Items: f.items}}
	productService := services.NewProductService(f.products, categories, uow)
	f.service = services.NewItemService(f.items, productService)
	return f
}

func TestItemService_CreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("new item is not operational", func(t *testing.T) {
		f := newItemFixture()
		f.products.On("GetByID", mock.Anything, uint(10)).Return(&models.Product{ID: 10}, nil).Once()
		f.items.On("GetBySerialNumber", mock.Anything, "SN-001").Return(nil, repositories.ErrNotFound).Once()
		f.items.On("Create", mock.Anything, mock.AnythingOfType("*models.Item")).Return(nil).Once()

		item, err := f.service.CreateItem(ctx, 10, "SN-001")
		require.NoError(t, err)
		assert.Equal(t, "SN-001", item.SerialNumber)
		assert.Equal(t, uint(10), item.ProductID)
		assert.Equal(t, models.ItemStatusNotOperational, item.Status)
		f.items.AssertExpectations(t)
	})

	t.Run("blank serial number is generated", func(t *testing.T) {
		f := newItemFixture()
		f.products.On("GetByID", mock.Anything, uint(10)).Return(&models.Product{ID: 10}, nil).Once()
		f.items.On("GetBySerialNumber", mock.Anything, mock.AnythingOfType("string")).Return(nil, repositories.ErrNotFound).Once()
		f.items.On("Create", mock.Anything, mock.AnythingOfType("*models.Item")).Return(nil).Once()

		item, err := f.service.CreateItem(ctx, 10, "  ")
		require.NoError(t, err)
		_, parseErr := uuid.Parse(item.SerialNumber)
		assert.NoError(t, parseErr)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newItemFixture()
		f.products.On("GetByID", mock.Anything, uint(99)).Return(nil, repositories.ErrNotFound).Once()

		item, err := f.service.CreateItem(ctx, 99, "SN-001")
		assert.ErrorIs(t, err, services.ErrProductNotFound)
		assert.Nil(t, item)
		f.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("serial number already used", func(t *testing.T) {
		f := newItemFixture()
		f.products.On("GetByID", mock.Anything, uint(10)).Return(&models.Product{ID: 10}, nil).Once()
		f.items.On("GetBySerialNumber", mock.Anything, "SN-001").Return(&models.Item{SerialNumber: "SN-001"}, nil).Once()

		item, err := f.service.CreateItem(ctx, 10, "SN-001")
		assert.ErrorIs(t, err, services.ErrSerialNumberTaken)
		assert.Nil(t, item)
	})

	t.Run("insert races with another writer", func(t *testing.T) {
		f := newItemFixture()
		f.products.On("GetByID", mock.Anything, uint(10)).Return(&models.Product{ID: 10}, nil).Once()
		f.items.On("GetBySerialNumber", mock.Anything, "SN-001").Return(nil, repositories.ErrNotFound).Once()
		f.items.On("Create", mock.Anything, mock.AnythingOfType("*models.Item")).
			Return(fmt.Errorf("failed to create item SN-001: %w", repositories.ErrDuplicateKey)).Once()

		item, err := f.service.CreateItem(ctx, 10, "SN-001")
		assert.ErrorIs(t, err, services.ErrSerialNumberTaken)
		assert.Nil(t, item)
	})
}

func TestItemService_SetOperational(t *testing.T) {
	ctx := context.Background()

	t.Run("becoming operational yields one event", func(t *testing.T) {
		f := newItemFixture()
		f.items.On("GetBySerialNumber", mock.Anything, "SN-001").
			Return(&models.Item{SerialNumber: "SN-001", ProductID: 10, Status: models.ItemStatusNotOperational}, nil).Once()
		f.items.On("UpdateStatus", mock.Anything, "SN-001", models.ItemStatusOperational).Return(nil).Once()

		item, event, err := f.service.SetOperational(ctx, "SN-001", true)
		require.NoError(t, err)
		assert.Equal(t, models.ItemStatusOperational, item.Status)
		require.NotNil(t, event)
		assert.Equal(t, events.NewUnitAvailable(10), *event)
		f.items.AssertExpectations(t)
	})

	t.Run("leaving operational yields no event", func(t *testing.T) {
		f := newItemFixture()
		f.items.On("GetBySerialNumber", mock.Anything, "SN-001").
			Return(&models.Item{SerialNumber: "SN-001", ProductID: 10, Status: models.ItemStatusOperational}, nil).Once()
		f.items.On("UpdateStatus", mock.Anything, "SN-001", models.ItemStatusNotOperational).Return(nil).Once()

		item, event, err := f.service.SetOperational(ctx, "SN-001", false)
		require.NoError(t, err)
		assert.Equal(t, models.ItemStatusNotOperational, item.Status)
		assert.Nil(t, event)
	})

	t.Run("re-applying the current status is a no-op", func(t *testing.T) {
		f := newItemFixture()
		f.items.On("GetBySerialNumber", mock.Anything, "SN-001").
			Return(&models.Item{SerialNumber: "SN-001", ProductID: 10, Status: models.ItemStatusOperational}, nil).Once()

		item, event, err := f.service.SetOperational(ctx, "SN-001", true)
		require.NoError(t, err)
		assert.True(t, item.Operational())
		assert.Nil(t, event)
		f.items.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown serial number", func(t *testing.T) {
		f := newItemFixture()
		f.items.On("GetBySerialNumber", mock.Anything, "missing").Return(nil, repositories.ErrNotFound).Once()

		item, event, err := f.service.SetOperational(ctx, "missing", true)
		assert.ErrorIs(t, err, services.ErrItemNotFound)
		assert.Nil(t, item)
		assert.Nil(t, event)
		f.items.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("update failure yields no event", func(t *testing.T) {
		f := newItemFixture()
		f.items.On("GetBySerialNumber", mock.Anything, "SN-001").
			Return(&models.Item{SerialNumber: "SN-001", ProductID: 10, Status: models.ItemStatusNotOperational}, nil).Once()
		f.items.On("UpdateStatus", mock.Anything, "SN-001", models.ItemStatusOperational).Return(fmt.Errorf("database error")).Once()

		item, event, err := f.service.SetOperational(ctx, "SN-001", true)
		assert.Error(t, err)
		assert.Nil(t, item)
		assert.Nil(t, event)
	})
}
