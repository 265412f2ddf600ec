package repository

import (
	"context"

	"storefront/internal/domain/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

// order_id IS NULL の行がカート
func (r *CartItemGormRepository) cart(ctx context.Context, userID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND order_id IS NULL", userID).
		Order("created_at DESC")
}

func (r *CartItemGormRepository) ListCart(ctx context.Context, userID string) ([]model.OrderItem, error) {
	var items []model.OrderItem
	if err := r.cart(ctx, userID).Preload("Product").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// 同時チェックアウトに備えて行ロックを取る
func (r *CartItemGormRepository) LockCart(ctx context.Context, userID string) ([]model.OrderItem, error) {
	var items []model.OrderItem
	if err := r.cart(ctx, userID).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Product").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// INSERT ... ON CONFLICT (user_id, product_id) WHERE order_id IS NULL DO UPDATE で数量を設定する。
// 自分で採番したIDが残っていれば新規作成。
func (r *CartItemGormRepository) Upsert(ctx context.Context, userID, productID string, quantity int64) (model.OrderItem, bool, error) {
	candidate := model.OrderItem{
		Entity:    model.Entity{ID: uuid.NewString()},
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}

	var stored model.OrderItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "order_id IS NULL"}}},
			DoUpdates:   clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).Create(&candidate).Error; err != nil {
			return translateError(err)
		}

		return tx.
			Where("user_id = ? AND product_id = ? AND order_id IS NULL", userID, productID).
			Preload("Product").
			Take(&stored).Error
	})
	if err != nil {
		return model.OrderItem{}, false, err
	}
	return stored, stored.ID == candidate.ID, nil
}

// カート行を物理削除する
func (r *CartItemGormRepository) Remove(ctx context.Context, userID, productID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND order_id IS NULL", userID, productID).
		Delete(&model.OrderItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// 読み込んだ明細だけを一括で注文へ付け替える
func (r *CartItemGormRepository) AttachToOrder(ctx context.Context, userID, orderID string, itemIDs []string) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Where("id IN ? AND user_id = ? AND order_id IS NULL", itemIDs, userID).
		Update("order_id", orderID)
	return res.RowsAffected, res.Error
}
