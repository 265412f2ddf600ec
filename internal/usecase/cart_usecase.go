package usecase

import (
	"context"

	repo "storefront/internal/repository"
	"storefront/internal/validator"
)

// カート操作の結果
type ToggleResult string

const (
	CartItemAdded   ToggleResult = "added"
	CartItemUpdated ToggleResult = "updated"
	CartItemRemoved ToggleResult = "removed"
)

var toggleMessages = map[ToggleResult]string{
	CartItemAdded:   "Item Added To Cart",
	CartItemUpdated: "Item Quantity Updated In Cart",
	CartItemRemoved: "Item Removed From Cart",
}

// CartUsecase は /cart の業務ロジック。
// カートは order_id の無い注文明細として持つ。
type CartUsecase struct {
	cartItems repo.CartItemRepository
	products  repo.ProductRepository
	metrics   BusinessRecorder
}

// DI
func NewCartUsecase(
	cartItems repo.CartItemRepository,
	products repo.ProductRepository,
	metrics BusinessRecorder,
) *CartUsecase {
	return &CartUsecase{
		cartItems: cartItems,
		products:  products,
		metrics:   orNopRecorder(metrics),
	}
}

type ToggleCartItemInput struct {
	Slug     string
	Quantity int64
}

type ToggleCartItemOutput struct {
	Result  ToggleResult     `json:"result"`
	Message string           `json:"message"`
	Item    *OrderItemOutput `json:"item"`
}

func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartOutput, error) {
	if userID == "" {
		return CartOutput{}, NewError(ErrUnauthorized, "unauthorized")
	}
	items, err := u.cartItems.ListCart(ctx, userID)
	if err != nil {
		return CartOutput{}, internal(err)
	}
	return toCartOutput(items), nil
}

// ToggleItem は商品の数量を quantity に設定する。
// 0 ならカートから外す (行が無ければ何もしない)。
func (u *CartUsecase) ToggleItem(ctx context.Context, userID string, in ToggleCartItemInput) (ToggleCartItemOutput, error) {
	if userID == "" {
		return ToggleCartItemOutput{}, NewError(ErrUnauthorized, "unauthorized")
	}
	if err := validator.ValidateCartToggle(in.Slug, in.Quantity); err != nil {
		return ToggleCartItemOutput{}, validate(err)
	}

	product, err := u.products.FindBySlug(ctx, in.Slug)
	if err != nil {
		return ToggleCartItemOutput{}, internal(err)
	}
	if product == nil {
		return ToggleCartItemOutput{}, notFound("product")
	}

	if in.Quantity == 0 {
		if _, err := u.cartItems.Remove(ctx, userID, product.ID); err != nil {
			return ToggleCartItemOutput{}, internal(err)
		}
		return u.done(CartItemRemoved, nil), nil
	}

	item, created, err := u.cartItems.Upsert(ctx, userID, product.ID, in.Quantity)
	if err != nil {
		return ToggleCartItemOutput{}, internal(err)
	}
	item.Product = product

	result := CartItemUpdated
	if created {
		result = CartItemAdded
	}
	out := toOrderItemOutput(item)
	return u.done(result, &out), nil
}

func (u *CartUsecase) done(result ToggleResult, item *OrderItemOutput) ToggleCartItemOutput {
	u.metrics.RecordCartToggle(string(result))
	return ToggleCartItemOutput{Result: result, Message: toggleMessages[result], Item: item}
}
