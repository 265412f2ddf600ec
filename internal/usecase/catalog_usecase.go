package usecase

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"
)

// 公開のカタログ参照
type CatalogUsecase struct {
	categories repo.CategoryRepository
	sellers    repo.SellerRepository
	products   repo.ProductRepository
	reviews    repo.ReviewRepository
	cache      RatingCache
}

// DI
func NewCatalogUsecase(
	categories repo.CategoryRepository,
	sellers repo.SellerRepository,
	products repo.ProductRepository,
	reviews repo.ReviewRepository,
	cache RatingCache,
) *CatalogUsecase {
	return &CatalogUsecase{
		categories: categories,
		sellers:    sellers,
		products:   products,
		reviews:    reviews,
		cache:      orNopCache(cache),
	}
}

// GET /products の入力
type ListProductsInput struct {
	Q        string
	MinPrice *int64
	MaxPrice *int64
}

type ProductDetailOutput struct {
	Product model.Product      `json:"product"`
	Rating  repo.RatingSummary `json:"rating"`
}

func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	out, err := u.categories.List(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return nonNil(out), nil
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	if err := validator.ValidatePriceRange(in.MinPrice, in.MaxPrice); err != nil {
		return nil, validate(err)
	}
	return u.listProducts(ctx, repo.ProductFilter{Q: in.Q, MinPrice: in.MinPrice, MaxPrice: in.MaxPrice})
}

// カテゴリ内の商品。カテゴリが無ければ NotFound。
func (u *CatalogUsecase) ListProductsByCategory(ctx context.Context, slug string) ([]model.Product, error) {
	c, err := u.categories.FindBySlug(ctx, slug)
	if err != nil {
		return nil, internal(err)
	}
	if c == nil {
		return nil, notFound("category")
	}
	return u.listProducts(ctx, repo.ProductFilter{CategoryID: c.ID})
}

func (u *CatalogUsecase) ListProductsBySeller(ctx context.Context, slug string) ([]model.Product, error) {
	s, err := u.sellers.FindBySlug(ctx, slug)
	if err != nil {
		return nil, internal(err)
	}
	if s == nil {
		return nil, notFound("seller")
	}
	return u.listProducts(ctx, repo.ProductFilter{SellerID: s.ID})
}

// 商品詳細と評価の集計。集計はキャッシュを先に見る。
func (u *CatalogUsecase) GetProduct(ctx context.Context, slug string) (ProductDetailOutput, error) {
	p, err := u.products.FindBySlug(ctx, slug)
	if err != nil {
		return ProductDetailOutput{}, internal(err)
	}
	if p == nil {
		return ProductDetailOutput{}, notFound("product")
	}

	summary, ok := u.cache.Get(ctx, p.ID)
	if !ok {
		summary, err = u.reviews.Summary(ctx, p.ID)
		if err != nil {
			return ProductDetailOutput{}, internal(err)
		}
		u.cache.Set(ctx, p.ID, summary)
	}
	return ProductDetailOutput{Product: *p, Rating: summary}, nil
}

func (u *CatalogUsecase) listProducts(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	out, err := u.products.List(ctx, f)
	if err != nil {
		return nil, internal(err)
	}
	return nonNil(out), nil
}

// JSONで null ではなく [] を返す
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
