package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultImagePriority is the column default for Image.Priority. Lower values
// mean higher priority by convention only.
const DefaultImagePriority = 1000

// Image belongs to exactly one Product.
type Image struct {
	ID        string   `json:"id" gorm:"type:uuid;primaryKey"`
	URL       string   `json:"url" gorm:"type:text;not null"`
	Priority  int      `json:"priority" gorm:"not null;default:1000"`
	ProductID string   `json:"product_id" gorm:"type:uuid;not null;index"`
	Product   *Product `json:"product,omitempty"`
}

// TableName keeps the table name singular.
func (Image) TableName() string {
	return "image"
}

// BeforeCreate assigns a UUID when the caller did not provide one.
func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Models lists every entity for schema synchronisation, parents first.
func Models() []interface{} {
	return []interface{}{&Product{}, &Image{}}
}
