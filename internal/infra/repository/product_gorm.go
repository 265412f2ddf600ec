package repository

import (
	"context"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	softDeleteStore[model.Product]
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{softDeleteStore: newSoftDeleteStore[model.Product](db)}
}

// 削除されていない商品を、検索/価格帯/カテゴリ/出品者で絞って新しい順に返す。
func (r *ProductGormRepository) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	tx := r.withRelations(r.Query(ctx))

	// q nameを対象 (大文字小文字を区別しない)
	if q := strings.TrimSpace(f.Q); q != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	//価格帯
	if f.MinPrice != nil {
		tx = tx.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		tx = tx.Where("price <= ?", *f.MaxPrice)
	}

	if f.CategoryID != "" {
		tx = tx.Where("category_id = ?", f.CategoryID)
	}
	if f.SellerID != "" {
		tx = tx.Where("seller_id = ?", f.SellerID)
	}

	var products []model.Product
	if err := tx.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductGormRepository) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return firstOrNone[model.Product](r.withRelations(r.Query(ctx)).Where("slug = ?", slug))
}

func (r *ProductGormRepository) FindBySlugIncludingDeleted(ctx context.Context, slug string) (*model.Product, error) {
	return r.GetOrNoneIncludingDeleted(ctx, "slug = ?", slug)
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return r.Get(ctx, "id = ?", id)
}

func (r *ProductGormRepository) withRelations(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Category").Preload("Seller")
}
