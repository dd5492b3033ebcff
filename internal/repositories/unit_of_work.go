package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups the repositories that share one database handle.
type Repositories struct {
	Categories CategoryRepository
	Products   ProductRepository
	Items      ItemRepository
}

// NewGORMRepositories builds the full set of GORM repositories over db.
func NewGORMRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Categories: NewGORMCategoryRepository(db),
		Products:   NewGORMProductRepository(db),
		Items:      NewGORMItemRepository(db),
	}
}

// UnitOfWork runs fn against repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}

// GORMUnitOfWork implements UnitOfWork with gorm transactions.
type GORMUnitOfWork struct {
	db *gorm.DB
}

// NewGORMUnitOfWork creates a new GORMUnitOfWork.
func NewGORMUnitOfWork(db *gorm.DB) *GORMUnitOfWork {
	return &GORMUnitOfWork{db: db}
}

// Do implements UnitOfWork.
func (u *GORMUnitOfWork) Do(ctx context.Context, fn func(repos Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMRepositories(tx))
	})
}
