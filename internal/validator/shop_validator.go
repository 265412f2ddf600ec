package validator

import "storefront/internal/domain/model"

// カート操作。数量は0以上 (0は削除)
func ValidateCartToggle(productSlug string, quantity int64) error {
	if err := required("slug", productSlug); err != nil {
		return err
	}
	if quantity < 0 {
		return invalid("quantity", "must be zero or greater")
	}
	return nil
}

func ValidateCheckout(shippingID string) error {
	return required("shipping_id", shippingID)
}

// レビュー。ratingは1〜5、本文は必須
func ValidateReview(productID string, rating int, text string) error {
	if err := required("product_id", productID); err != nil {
		return err
	}
	if rating < model.MinRating || rating > model.MaxRating {
		return invalid("rating", "must be between 1 and 5")
	}
	return first(required("text", text), maxLen("text", text, 5000))
}

// 住所の7項目
type AddressFields struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	City     string
	Country  string
	Zipcode  string
}

func ValidateAddress(a AddressFields) error {
	if err := first(
		required("full_name", a.FullName),
		maxLen("full_name", a.FullName, 1000),
		required("phone", a.Phone),
		maxLen("phone", a.Phone, 30),
		required("address", a.Address),
		maxLen("address", a.Address, 1000),
		required("city", a.City),
		maxLen("city", a.City, 200),
		required("country", a.Country),
		maxLen("country", a.Country, 200),
		required("zipcode", a.Zipcode),
		maxLen("zipcode", a.Zipcode, 20),
	); err != nil {
		return err
	}
	if !isEmail(a.Email) {
		return invalid("email", "must be a valid email address")
	}
	return nil
}
