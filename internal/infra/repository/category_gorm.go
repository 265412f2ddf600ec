package repository

import (
	"context"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
)

type CategoryGormRepository struct {
	softDeleteStore[model.Category]
}

// DI
func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{softDeleteStore: newSoftDeleteStore[model.Category](db)}
}

func (r *CategoryGormRepository) List(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := r.Query(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CategoryGormRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return r.GetOrNone(ctx, "slug = ?", slug)
}

func (r *CategoryGormRepository) FindBySlugIncludingDeleted(ctx context.Context, slug string) (*model.Category, error) {
	return r.GetOrNoneIncludingDeleted(ctx, "slug = ?", slug)
}
