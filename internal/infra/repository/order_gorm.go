package repository

import (
	"context"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, o *model.Order) error {
	return translateError(r.db.WithContext(ctx).Omit("Items").Create(o).Error)
}

// ユーザーの注文を新しい順に、明細と商品付きで返す
func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order
	if err := r.withItems(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	return firstOrNotFound[model.Order](r.withItems(r.db.WithContext(ctx)).Where("id = ?", id))
}

func (r *OrderGormRepository) withItems(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Items.Product")
}
