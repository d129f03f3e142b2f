package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
// A product holds a non-owning reference to zero or more categories through
// the product_categories join table.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"index;not null"`
	Slug        string          `gorm:"index;not null"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Categories  []Category      `gorm:"many2many:product_categories"`
}

func (p *Product) TableName() string {
	return "products"
}
