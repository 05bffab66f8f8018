package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the catalog.
type Product struct {
	ID           string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string          `json:"name" validate:"required,min=3,max=100"`
	Image        string          `json:"image"`
	Description  string          `json:"description" validate:"omitempty,max=500"`
	Brand        string          `json:"brand"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	CountInStock int             `json:"countInStock" validate:"gte=0"`
	Rating       float64         `json:"rating"`
	NumReviews   int             `json:"numReviews"`
	gorm.Model   `json:"-"`      // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
