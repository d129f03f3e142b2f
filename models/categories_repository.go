package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

func (r *CategoriesRepository) Insert(ctx context.Context, category *Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// InsertMany persists all categories in one batch; IDs are assigned in
// slice order.
func (r *CategoriesRepository) InsertMany(ctx context.Context, categories []*Category) error {
	if len(categories) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(categories).Error
}

func (r *CategoriesRepository) GetByID(ctx context.Context, id uint) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err // Other DB error
	}
	return &category, nil
}

func (r *CategoriesRepository) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetByIDs returns the categories whose IDs are in the given set, in the
// store's natural retrieval order. IDs with no matching row are simply
// absent from the result.
func (r *CategoriesRepository) GetByIDs(ctx context.Context, ids []uint) ([]Category, error) {
	if len(ids) == 0 {
		return []Category{}, nil
	}
	var categories []Category
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepository) Save(ctx context.Context, category *Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}
