package model

// 注文明細。OrderIDがnilの間はカートの中身として扱う。
// (user_id, product_id) は order_id IS NULL の範囲で一意 (部分ユニークインデックス)。
type OrderItem struct {
	Entity
	UserID    string   `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ProductID string   `gorm:"type:varchar(36);not null;index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	OrderID   *string  `gorm:"type:varchar(36);index" json:"order_id"`
	Quantity  int64    `gorm:"not null" json:"quantity"`
}

// カートに残っているか
func (i OrderItem) InCart() bool {
	return i.OrderID == nil
}
