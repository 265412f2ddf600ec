package model

// 出品者。ユーザー1人につき1件。
type Seller struct {
	SoftDeletableEntity
	UserID       string `gorm:"type:varchar(36);uniqueIndex;not null" json:"user_id"`
	BusinessName string `gorm:"type:varchar(255);not null" json:"business_name"`
	Slug         string `gorm:"type:varchar(280);uniqueIndex;not null" json:"slug"`
}
