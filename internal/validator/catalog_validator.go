package validator

import "regexp"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// slugは空なら名前から作るので、指定されたときだけ形式を見る
func validSlug(slug string) error {
	if slug == "" {
		return nil
	}
	if !slugPattern.MatchString(slug) {
		return invalid("slug", "must be lowercase letters, digits and hyphens")
	}
	return nil
}

func ValidateCategory(name, slug string) error {
	return first(required("name", name), maxLen("name", name, 100), validSlug(slug))
}

func ValidateSeller(userID, businessName, slug string) error {
	return first(
		required("user_id", userID),
		required("business_name", businessName),
		maxLen("business_name", businessName, 255),
		validSlug(slug),
	)
}

func ValidateProduct(name, slug, categorySlug, sellerSlug string, price, stock int64) error {
	if err := first(
		required("name", name),
		maxLen("name", name, 255),
		validSlug(slug),
		required("category_slug", categorySlug),
		required("seller_slug", sellerSlug),
	); err != nil {
		return err
	}
	if price < 0 {
		return invalid("price", "must be zero or greater")
	}
	if stock < 0 {
		return invalid("stock", "must be zero or greater")
	}
	return nil
}

// 価格帯
func ValidatePriceRange(minPrice, maxPrice *int64) error {
	if minPrice != nil && *minPrice < 0 {
		return invalid("min_price", "must be zero or greater")
	}
	if maxPrice != nil && *maxPrice < 0 {
		return invalid("max_price", "must be zero or greater")
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return invalid("min_price", "must not exceed max_price")
	}
	return nil
}
