package usecase

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"
)

type ReviewResult string

const (
	ReviewCreated ReviewResult = "created"
	ReviewUpdated ReviewResult = "updated"
)

type ReviewUsecase struct {
	reviews  repo.ReviewRepository
	products repo.ProductRepository
	cache    RatingCache
	metrics  BusinessRecorder
}

// DI
func NewReviewUsecase(
	reviews repo.ReviewRepository,
	products repo.ProductRepository,
	cache RatingCache,
	metrics BusinessRecorder,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviews:  reviews,
		products: products,
		cache:    orNopCache(cache),
		metrics:  orNopRecorder(metrics),
	}
}

type SubmitReviewInput struct {
	ProductID string
	Rating    int
	Text      string
}

type SubmitReviewOutput struct {
	Result  ReviewResult `json:"result"`
	Message string       `json:"message"`
	Review  model.Review `json:"review"`
}

// 一覧と平均。平均はレビューが無ければnull。
type ReviewsOutput struct {
	Reviews []model.Review `json:"reviews"`
	Count   int            `json:"count"`
	Average *float64       `json:"average"`
}

// SubmitReview は (user, product) ごとに1件のレビューを作成または上書きする。
func (u *ReviewUsecase) SubmitReview(ctx context.Context, userID string, in SubmitReviewInput) (SubmitReviewOutput, error) {
	if userID == "" {
		return SubmitReviewOutput{}, NewError(ErrUnauthorized, "unauthorized")
	}
	if err := validator.ValidateReview(in.ProductID, in.Rating, in.Text); err != nil {
		return SubmitReviewOutput{}, validate(err)
	}
	if err := u.requireProduct(ctx, in.ProductID); err != nil {
		return SubmitReviewOutput{}, err
	}

	review, created, err := u.reviews.Upsert(ctx, userID, in.ProductID, in.Rating, in.Text)
	if err != nil {
		return SubmitReviewOutput{}, internal(err)
	}
	u.cache.Invalidate(ctx, in.ProductID)

	out := SubmitReviewOutput{Result: ReviewUpdated, Message: "Review updated successfully", Review: review}
	if created {
		out.Result = ReviewCreated
		out.Message = "Review created successfully"
	}
	u.metrics.RecordReview(string(out.Result))
	return out, nil
}

func (u *ReviewUsecase) GetReviewsForProduct(ctx context.Context, productID string) (ReviewsOutput, error) {
	if err := u.requireProduct(ctx, productID); err != nil {
		return ReviewsOutput{}, err
	}
	list, err := u.reviews.ListByProductID(ctx, productID)
	if err != nil {
		return ReviewsOutput{}, internal(err)
	}
	return toReviewsOutput(list), nil
}

// 全商品のレビューと全体平均
func (u *ReviewUsecase) ListAllReviews(ctx context.Context) (ReviewsOutput, error) {
	list, err := u.reviews.ListAll(ctx)
	if err != nil {
		return ReviewsOutput{}, internal(err)
	}
	return toReviewsOutput(list), nil
}

// 自分のレビューだけ削除できる
func (u *ReviewUsecase) DeleteReview(ctx context.Context, userID, reviewID string) error {
	if userID == "" {
		return NewError(ErrUnauthorized, "unauthorized")
	}
	r, err := u.reviews.FindByID(ctx, reviewID)
	if errors.Is(err, repo.ErrNotFound) {
		return notFound("review")
	}
	if err != nil {
		return internal(err)
	}
	if r.UserID != userID {
		return NewError(ErrForbidden, "you can only delete your own review")
	}

	if err := u.reviews.Delete(ctx, r.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("review")
		}
		return internal(err)
	}
	u.cache.Invalidate(ctx, r.ProductID)
	u.metrics.RecordReview("deleted")
	return nil
}

func (u *ReviewUsecase) requireProduct(ctx context.Context, productID string) error {
	_, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return notFound("product")
	}
	return internal(err)
}

func toReviewsOutput(list []model.Review) ReviewsOutput {
	if list == nil {
		list = []model.Review{}
	}
	return ReviewsOutput{Reviews: list, Count: len(list), Average: model.AverageRating(list)}
}
