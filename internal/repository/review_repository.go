package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 商品ごとの評価の集計
type RatingSummary struct {
	Count   int64    `json:"count"`
	Average *float64 `json:"average"`
}

type ReviewRepository interface {
	// (user, product) で作成または上書き。新規なら created=true。
	Upsert(ctx context.Context, userID, productID string, rating int, text string) (review model.Review, created bool, err error)
	ListByProductID(ctx context.Context, productID string) ([]model.Review, error)
	ListAll(ctx context.Context) ([]model.Review, error)
	Summary(ctx context.Context, productID string) (RatingSummary, error)
	// 見つからない場合 ErrNotFound
	FindByID(ctx context.Context, id string) (*model.Review, error)
	Delete(ctx context.Context, id string) error
}
