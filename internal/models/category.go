package models

import "time"

// Category is a node in the catalog hierarchy. A nil ParentID marks a root.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);index;not null"`
	Description string    `json:"description" gorm:"type:varchar(1000);index"`
	ParentID    *uint     `json:"parentId" gorm:"index"`
	Parent      *Category `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
