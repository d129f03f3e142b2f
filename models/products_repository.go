package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

type ProductsRepository struct {
	db *gorm.DB
}

type ProductFilters struct {
	Name          string
	CategorySlugs []string
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) Insert(ctx context.Context, product *Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// InsertMany persists all products in one batch; IDs are assigned in slice
// order. Pre-populated Categories become join rows.
func (r *ProductsRepository) InsertMany(ctx context.Context, products []*Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(products).Error
}

func (r *ProductsRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

func (r *ProductsRepository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("slug = ?", slug).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Save writes the product's scalar fields and replaces its category
// association wholesale with product.Categories.
func (r *ProductsRepository) Save(ctx context.Context, product *Product) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Omit(clause.Associations).Save(product).Error; err != nil {
		return err
	}
	return tx.Model(product).Association("Categories").Replace(product.Categories)
}

// Delete removes a product and its join rows. Deleting an ID with no
// matching row is not an error.
func (r *ProductsRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&Product{ID: id}).Error
}

func (r *ProductsRepository) GetFilteredProducts(ctx context.Context, offset, limit int, filters ProductFilters) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.db.WithContext(ctx).Model(&Product{})

	// Filter
	if filters.Name != "" {
		query = query.Where("products.name LIKE ?", "%"+filters.Name+"%")
	}
	if len(filters.CategorySlugs) > 0 {
		query = query.Where("products.id IN (?)", r.db.
			Table("product_categories").
			Select("product_categories.product_id").
			Joins("JOIN categories ON categories.id = product_categories.category_id").
			Where("categories.slug IN ?", filters.CategorySlugs))
	}

	// Count total after filtering
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply pagination
	if err := query.
		Preload("Categories").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}
