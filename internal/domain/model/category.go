package model

// 商品カテゴリ。slugで引く。
type Category struct {
	SoftDeletableEntity
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	Slug string `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
}
