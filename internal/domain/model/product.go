package model

type Product struct {
	SoftDeletableEntity
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string `gorm:"type:varchar(280);uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	// 価格は最小通貨単位
	Price int64 `gorm:"not null" json:"price"`
	Stock int64 `gorm:"not null;default:0" json:"stock"`

	CategoryID string    `gorm:"type:varchar(36);not null;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SellerID   string    `gorm:"type:varchar(36);not null;index" json:"seller_id"`
	Seller     *Seller   `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
}
