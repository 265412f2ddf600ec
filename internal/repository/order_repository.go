package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	// 明細(商品付き)も一緒に返す
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
	// 見つからない場合 ErrNotFound
	FindByID(ctx context.Context, id string) (*model.Order, error)
}
