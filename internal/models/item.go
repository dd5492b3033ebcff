package models

import "time"

// ItemStatus is the operational state of a single serialized unit.
type ItemStatus string

const (
	ItemStatusNotOperational ItemStatus = "NOT_OPERATIONAL"
	ItemStatusOperational    ItemStatus = "OPERATIONAL"
)

// StatusFor maps the operational flag used by the API to an ItemStatus.
func StatusFor(operational bool) ItemStatus {
	if operational {
		return ItemStatusOperational
	}
	return ItemStatusNotOperational
}

// Item is a physical unit of a product, keyed by its serial number.
type Item struct {
	SerialNumber string     `json:"serialNumber" gorm:"primaryKey;type:varchar(64)"`
	ProductID    uint       `json:"productId" gorm:"index;not null"`
	Product      *Product   `json:"-" gorm:"foreignKey:ProductID"`
	Status       ItemStatus `json:"status" gorm:"type:varchar(20);not null;default:NOT_OPERATIONAL"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Operational reports whether the item is ready for use.
func (i *Item) Operational() bool {
	return i.Status == ItemStatusOperational
}
