package model

// 配送先住所。注文時にこの7項目を注文へコピーする。
type ShippingAddress struct {
	SoftDeletableEntity
	UserID   string `gorm:"type:varchar(36);not null;index" json:"user_id"`
	FullName string `gorm:"type:varchar(1000);not null" json:"full_name"`
	Email    string `gorm:"type:varchar(255);not null" json:"email"`
	Phone    string `gorm:"type:varchar(30);not null" json:"phone"`
	Address  string `gorm:"type:varchar(1000);not null" json:"address"`
	City     string `gorm:"type:varchar(200);not null" json:"city"`
	Country  string `gorm:"type:varchar(200);not null" json:"country"`
	Zipcode  string `gorm:"type:varchar(20);not null" json:"zipcode"`
}
