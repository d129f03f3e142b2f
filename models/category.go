package models

// Category represents a product category.
// Slugs are an alternate lookup key but are not unique; by-slug lookups
// return the first match.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
	Slug string `gorm:"index;not null"`
}

func (c *Category) TableName() string {
	return "categories"
}
