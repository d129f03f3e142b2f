package categories

import (
	"context"

	"github.com/merchkit/catalog/models"
)

// CategoryInput carries the fields needed to create a category.
type CategoryInput struct {
	Name string
	Slug string
}

// CategoryUpdate is a partial update. A nil field is "not provided"; a
// provided but empty value is also skipped, so an update can never clear a
// field to the empty string. That matches the source system and is kept on
// purpose.
type CategoryUpdate struct {
	ID   uint
	Name *string
	Slug *string
}

type CategoryStore interface {
	Insert(ctx context.Context, category *models.Category) error
	InsertMany(ctx context.Context, categories []*models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Save(ctx context.Context, category *models.Category) error
}

type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(s CategoryStore) *CategoryService {
	return &CategoryService{
		store: s,
	}
}

// Create persists a new category and returns it with its assigned ID.
// Slug uniqueness is not checked.
func (s *CategoryService) Create(ctx context.Context, name, slug string) (*models.Category, error) {
	category := &models.Category{
		Name: name,
		Slug: slug,
	}
	if err := s.store.Insert(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// CreateMany persists one category per input in a single batch and returns
// them in input order.
func (s *CategoryService) CreateMany(ctx context.Context, inputs []CategoryInput) ([]models.Category, error) {
	categories := make([]*models.Category, len(inputs))
	for i, in := range inputs {
		categories[i] = &models.Category{
			Name: in.Name,
			Slug: in.Slug,
		}
	}

	if err := s.store.InsertMany(ctx, categories); err != nil {
		return nil, err
	}

	result := make([]models.Category, len(categories))
	for i, c := range categories {
		result[i] = *c
	}
	return result, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.store.GetByID(ctx, id)
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.store.GetBySlug(ctx, slug)
}

// Update loads the category by ID and overwrites the provided, non-empty
// fields. Returns models.ErrCategoryNotFound when the target does not exist.
func (s *CategoryService) Update(ctx context.Context, update CategoryUpdate) (*models.Category, error) {
	category, err := s.store.GetByID(ctx, update.ID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name != "" {
		category.Name = *update.Name
	}
	if update.Slug != nil && *update.Slug != "" {
		category.Slug = *update.Slug
	}

	if err := s.store.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
