package usecase

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"
)

type OrderUsecase struct {
	tx      repo.TransactionManager
	orders  repo.OrderRepository
	metrics BusinessRecorder
}

// DI
func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository, metrics BusinessRecorder) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, metrics: orNopRecorder(metrics)}
}

type CheckoutInput struct {
	ShippingID string
}

// Checkout はカートの中身を1件の注文にまとめる。
// カート行のロックから付け替えまでを1トランザクションで行い、
// 途中で失敗したらカートも注文も元のまま。
func (u *OrderUsecase) Checkout(ctx context.Context, userID string, in CheckoutInput) (OrderOutput, error) {
	if userID == "" {
		return OrderOutput{}, NewError(ErrUnauthorized, "unauthorized")
	}
	if err := validator.ValidateCheckout(in.ShippingID); err != nil {
		return OrderOutput{}, validate(err)
	}

	var order model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := r.CartItems().LockCart(ctx, userID)
		if err != nil {
			return internal(err)
		}
		if len(items) == 0 {
			return NewError(ErrEmptyCart, "no items in cart")
		}

		addr, err := r.ShippingAddresses().FindOwned(ctx, userID, in.ShippingID)
		if err != nil {
			return internal(err)
		}
		if addr == nil {
			return &AppError{Kind: ErrShippingNotFound, Message: "shipping address not found"}
		}

		order = model.Order{UserID: userID, Status: model.OrderStatusPending}
		order.CopyShippingFrom(*addr)
		if err := r.Orders().Create(ctx, &order); err != nil {
			return internal(err)
		}

		ids := make([]string, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}
		n, err := r.CartItems().AttachToOrder(ctx, userID, order.ID, ids)
		if err != nil {
			return internal(err)
		}
		//ロック後に別リクエストがカートを変えていたら巻き戻す
		if n != int64(len(ids)) {
			return NewError(ErrConflict, "cart changed during checkout")
		}

		for i := range items {
			items[i].OrderID = &order.ID
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return OrderOutput{}, internal(err)
	}

	u.metrics.RecordCheckout(len(order.Items))
	return toOrderOutput(order), nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID string) ([]OrderOutput, error) {
	if userID == "" {
		return nil, NewError(ErrUnauthorized, "unauthorized")
	}
	orders, err := u.orders.ListByUserID(ctx, userID)
	if err != nil {
		return nil, internal(err)
	}
	out := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderOutput(o))
	}
	return out, nil
}

// 他人の注文は存在しない扱い
func (u *OrderUsecase) GetMyOrder(ctx context.Context, userID, orderID string) (OrderOutput, error) {
	if userID == "" {
		return OrderOutput{}, NewError(ErrUnauthorized, "unauthorized")
	}
	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, notFound("order")
	}
	if err != nil {
		return OrderOutput{}, internal(err)
	}
	if o.UserID != userID {
		return OrderOutput{}, notFound("order")
	}
	return toOrderOutput(*o), nil
}
