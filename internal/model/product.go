package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product statuses accepted by the catalog.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Product is a catalog entry. Its images are owned by it and are removed by
// the database when the product row is deleted.
type Product struct {
	ID     string  `json:"id" gorm:"type:uuid;primaryKey"`
	Name   string  `json:"name" gorm:"type:varchar(255);not null"`
	Price  float64 `json:"price" gorm:"not null"`
	Status string  `json:"status" gorm:"type:varchar(16);not null;default:active"`
	Images []Image `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the table name singular.
func (Product) TableName() string {
	return "product"
}

// BeforeCreate assigns a UUID when the caller did not provide one.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
