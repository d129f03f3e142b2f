package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/merchkit/catalog/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ProductInput carries the fields needed to create a product. Category IDs
// that do not exist in the store are dropped without error.
type ProductInput struct {
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal
	CategoryIDs []uint
}

// ProductUpdate is a partial update. Nil or empty scalar fields are skipped,
// including a zero price. An empty CategoryIDs slice means "leave the
// association unchanged"; a non-empty one replaces it wholesale.
type ProductUpdate struct {
	ID          uint
	Name        *string
	Slug        *string
	Description *string
	Price       *decimal.Decimal
	CategoryIDs []uint
}

// ProductFilter narrows a listing: Name is a substring match, CategorySlugs
// restricts to products associated with any of the given slugs.
type ProductFilter struct {
	Name          string
	CategorySlugs []string
}

// ProductQuery selects a page of products. Zero Page and Limit fall back to
// the defaults.
type ProductQuery struct {
	Page   int
	Limit  int
	Filter ProductFilter
}

// ProductPage is one page of results plus the total count of matching
// products before pagination.
type ProductPage struct {
	Products []models.Product
	Total    int64
}

type ProductStore interface {
	Insert(ctx context.Context, product *models.Product) error
	InsertMany(ctx context.Context, products []*models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	GetFilteredProducts(ctx context.Context, offset, limit int, filters models.ProductFilters) ([]models.Product, int64, error)
}

// CategoryResolver is the read-only slice of the category store the product
// service needs to resolve ID sets into records.
type CategoryResolver interface {
	GetByIDs(ctx context.Context, ids []uint) ([]models.Category, error)
}

type ProductService struct {
	store      ProductStore
	categories CategoryResolver
}

func NewProductService(store ProductStore, categories CategoryResolver) *ProductService {
	return &ProductService{
		store:      store,
		categories: categories,
	}
}

// Create resolves the category IDs against the store and persists a new
// product associated with the categories that were found. The order of the
// associated categories follows the store's retrieval order, not the order
// of CategoryIDs.
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	categories, err := s.categories.GetByIDs(ctx, input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Price:       input.Price,
		Categories:  categories,
	}
	if err := s.store.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// CreateMany resolves the union of all referenced category IDs in one query,
// then persists one product per input in a single batch, returning them in
// input order. Unknown category IDs are dropped, same as Create.
func (s *ProductService) CreateMany(ctx context.Context, inputs []ProductInput) ([]models.Product, error) {
	var ids []uint
	seen := make(map[uint]bool)
	for _, in := range inputs {
		for _, id := range in.CategoryIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	resolved, err := s.categories.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Category, len(resolved))
	for _, c := range resolved {
		byID[c.ID] = c
	}

	products := make([]*models.Product, len(inputs))
	for i, in := range inputs {
		var categories []models.Category
		for _, id := range in.CategoryIDs {
			if c, ok := byID[id]; ok {
				categories = append(categories, c)
			}
		}
		products[i] = &models.Product{
			Name:        in.Name,
			Slug:        in.Slug,
			Description: in.Description,
			Price:       in.Price,
			Categories:  categories,
		}
	}

	if err := s.store.InsertMany(ctx, products); err != nil {
		return nil, err
	}

	result := make([]models.Product, len(products))
	for i, p := range products {
		result[i] = *p
	}
	return result, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.store.GetBySlug(ctx, slug)
}

// Update loads the product by ID and overwrites the provided, non-empty
// fields. A zero price is treated as not provided. A non-empty CategoryIDs
// replaces the whole association with whatever IDs resolve against the
// store. Returns models.ErrProductNotFound when the target does not exist.
func (s *ProductService) Update(ctx context.Context, update ProductUpdate) (*models.Product, error) {
	product, err := s.store.GetByID(ctx, update.ID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name != "" {
		product.Name = *update.Name
	}
	if update.Slug != nil && *update.Slug != "" {
		product.Slug = *update.Slug
	}
	if update.Description != nil && *update.Description != "" {
		product.Description = *update.Description
	}
	if update.Price != nil && !update.Price.IsZero() {
		product.Price = *update.Price
	}
	if len(update.CategoryIDs) > 0 {
		categories, err := s.categories.GetByIDs(ctx, update.CategoryIDs)
		if err != nil {
			return nil, err
		}
		product.Categories = categories
	}

	if err := s.store.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product by ID. Deleting a nonexistent ID is not an error.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}

// List returns one page of products matching the query's filter, plus the
// total number of matches before pagination.
func (s *ProductService) List(ctx context.Context, query ProductQuery) (*ProductPage, error) {
	page := query.Page
	if page < 1 {
		page = defaultPage
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}
	offset := (page - 1) * limit

	filters := models.ProductFilters{
		Name:          query.Filter.Name,
		CategorySlugs: query.Filter.CategorySlugs,
	}

	products, total, err := s.store.GetFilteredProducts(ctx, offset, limit, filters)
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Products: products,
		Total:    total,
	}, nil
}
