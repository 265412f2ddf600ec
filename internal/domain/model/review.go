package model

const (
	MinRating = 1
	MaxRating = 5
)

// 商品レビュー。(user_id, product_id) で1件。
type Review struct {
	Entity
	UserID    string `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_product" json:"user_id"`
	ProductID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_product;index" json:"product_id"`
	Rating    int    `gorm:"not null" json:"rating"`
	Text      string `gorm:"type:text;not null" json:"text"`
}

// ratingの平均。0件ならnil。
func AverageRating(reviews []Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return &avg
}
