package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// カテゴリの保存・取得。
// FindBySlug は見つからない場合 nil, nil を返す。
type CategoryRepository interface {
	Deleter
	Purger
	List(ctx context.Context) ([]model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	// 論理削除済みも含めて探す
	FindBySlugIncludingDeleted(ctx context.Context, slug string) (*model.Category, error)
	Create(ctx context.Context, c *model.Category) error
}

type SellerRepository interface {
	Deleter
	Purger
	FindBySlug(ctx context.Context, slug string) (*model.Seller, error)
	FindByUserID(ctx context.Context, userID string) (*model.Seller, error)
	Create(ctx context.Context, s *model.Seller) error
}

// 商品一覧の絞り込み
type ProductFilter struct {
	Q          string
	MinPrice   *int64
	MaxPrice   *int64
	CategoryID string
	SellerID   string
}

type ProductRepository interface {
	Deleter
	Purger
	List(ctx context.Context, f ProductFilter) ([]model.Product, error)
	// 見つからない場合 nil, nil
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	FindBySlugIncludingDeleted(ctx context.Context, slug string) (*model.Product, error)
	// 見つからない場合 ErrNotFound
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
}
