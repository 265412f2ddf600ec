package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 配送先住所の保存・取得
type ShippingAddressRepository interface {
	Deleter
	Purger
	ListByUserID(ctx context.Context, userID string) ([]model.ShippingAddress, error)
	// そのユーザーの住所だけを探す。見つからない場合 nil, nil
	FindOwned(ctx context.Context, userID, id string) (*model.ShippingAddress, error)
	Create(ctx context.Context, a *model.ShippingAddress) error
	Update(ctx context.Context, a *model.ShippingAddress) error
}
