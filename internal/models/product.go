package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a rentable catalog entry, optionally classified under a category.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(255);not null"`
	Description string          `json:"description" gorm:"type:varchar(1000)"`
	DailyPrice  decimal.Decimal `json:"dailyPrice" gorm:"type:decimal(10,2);not null"`
	Brand       string          `json:"brand" gorm:"type:varchar(100)"`
	Model       string          `json:"model" gorm:"type:varchar(100)"`
	CategoryID  *uint           `json:"categoryId" gorm:"index"`
	Category    *Category       `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Items       []Item          `json:"-" gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
