package model

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusShipped  OrderStatus = "SHIPPED"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

// 注文。配送先は作成時点の住所を値でコピーして持つ。
type Order struct {
	Entity
	UserID string      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Status OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`

	FullName string `gorm:"type:varchar(1000);not null" json:"full_name"`
	Email    string `gorm:"type:varchar(255);not null" json:"email"`
	Phone    string `gorm:"type:varchar(30);not null" json:"phone"`
	Address  string `gorm:"type:varchar(1000);not null" json:"address"`
	City     string `gorm:"type:varchar(200);not null" json:"city"`
	Country  string `gorm:"type:varchar(200);not null" json:"country"`
	Zipcode  string `gorm:"type:varchar(20);not null" json:"zipcode"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// 住所の7項目を注文へコピーする
func (o *Order) CopyShippingFrom(a ShippingAddress) {
	o.FullName = a.FullName
	o.Email = a.Email
	o.Phone = a.Phone
	o.Address = a.Address
	o.City = a.City
	o.Country = a.Country
	o.Zipcode = a.Zipcode
}
