package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// カート(order_id IS NULL の注文明細)の操作
type CartItemRepository interface {
	// カートの中身を新しい順に返す
	ListCart(ctx context.Context, userID string) ([]model.OrderItem, error)

	// チェックアウト用。カートの行を FOR UPDATE でロックして返す
	LockCart(ctx context.Context, userID string) ([]model.OrderItem, error)

	// (user, product) のカート行に数量を設定する。
	// 新規作成なら created=true。
	Upsert(ctx context.Context, userID, productID string, quantity int64) (item model.OrderItem, created bool, err error)

	// カート行を物理削除する。行が無ければ removed=false。
	Remove(ctx context.Context, userID, productID string) (removed bool, err error)

	// 指定した明細を注文へ付け替える。更新件数を返す。
	AttachToOrder(ctx context.Context, userID, orderID string, itemIDs []string) (int64, error)
}
