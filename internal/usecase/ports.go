package usecase

import (
	"context"

	repo "storefront/internal/repository"
)

// 商品ごとの評価集計のキャッシュ。失敗してもエラーは返さない。
type RatingCache interface {
	Get(ctx context.Context, productID string) (repo.RatingSummary, bool)
	Set(ctx context.Context, productID string, s repo.RatingSummary)
	Invalidate(ctx context.Context, productID string)
}

type nopRatingCache struct{}

func (nopRatingCache) Get(context.Context, string) (repo.RatingSummary, bool) {
	return repo.RatingSummary{}, false
}
func (nopRatingCache) Set(context.Context, string, repo.RatingSummary) {}
func (nopRatingCache) Invalidate(context.Context, string)              {}

// キャッシュ無しで動かすとき用
func NopRatingCache() RatingCache { return nopRatingCache{} }

// 業務メトリクスの記録先
type BusinessRecorder interface {
	RecordCartToggle(result string)
	RecordCheckout(items int)
	RecordReview(result string)
}

type nopRecorder struct{}

func (nopRecorder) RecordCartToggle(string) {}
func (nopRecorder) RecordCheckout(int)      {}
func (nopRecorder) RecordReview(string)     {}

func NopRecorder() BusinessRecorder { return nopRecorder{} }

func orNopRecorder(r BusinessRecorder) BusinessRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

func orNopCache(c RatingCache) RatingCache {
	if c == nil {
		return nopRatingCache{}
	}
	return c
}
