package repository

import (
	"context"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
)

type SellerGormRepository struct {
	softDeleteStore[model.Seller]
}

// DI
func NewSellerGormRepository(db *gorm.DB) *SellerGormRepository {
	return &SellerGormRepository{softDeleteStore: newSoftDeleteStore[model.Seller](db)}
}

func (r *SellerGormRepository) FindBySlug(ctx context.Context, slug string) (*model.Seller, error) {
	return r.GetOrNone(ctx, "slug = ?", slug)
}

func (r *SellerGormRepository) FindByUserID(ctx context.Context, userID string) (*model.Seller, error) {
	return r.GetOrNone(ctx, "user_id = ?", userID)
}
