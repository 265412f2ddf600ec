package db

import (
	"storefront/internal/domain/model"

	"gorm.io/gorm"
)

// カート行 (order_id IS NULL) は (user_id, product_id) で一意
const cartLineIndexSQL = `CREATE UNIQUE INDEX IF NOT EXISTS idx_order_items_cart_line
ON order_items (user_id, product_id) WHERE order_id IS NULL`

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Seller{},
		&model.Product{},
		&model.ShippingAddress{},
		&model.Order{},
		&model.OrderItem{},
		&model.Review{},
		&model.AuditLog{},
	); err != nil {
		return err
	}
	return gdb.Exec(cartLineIndexSQL).Error
}
