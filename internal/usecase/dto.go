package usecase

import (
	"time"

	"storefront/internal/domain/model"
)

// 商品の簡易表示 (カート・注文明細用)
type ProductSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Price int64  `json:"price"`
}

type OrderItemOutput struct {
	ID       string          `json:"id"`
	Product  *ProductSummary `json:"product"`
	Quantity int64           `json:"quantity"`
	Subtotal int64           `json:"subtotal"`
}

type CartOutput struct {
	Items         []OrderItemOutput `json:"items"`
	TotalQuantity int64             `json:"total_quantity"`
	Total         int64             `json:"total"`
}

type ShippingOutput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Zipcode  string `json:"zipcode"`
}

type OrderOutput struct {
	ID        string            `json:"id"`
	Status    model.OrderStatus `json:"status"`
	Shipping  ShippingOutput    `json:"shipping"`
	Items     []OrderItemOutput `json:"items"`
	CreatedAt time.Time         `json:"created_at"`
}

func toProductSummary(p *model.Product) *ProductSummary {
	if p == nil {
		return nil
	}
	return &ProductSummary{ID: p.ID, Name: p.Name, Slug: p.Slug, Price: p.Price}
}

func toOrderItemOutput(it model.OrderItem) OrderItemOutput {
	out := OrderItemOutput{
		ID:       it.ID,
		Product:  toProductSummary(it.Product),
		Quantity: it.Quantity,
	}
	if it.Product != nil {
		out.Subtotal = it.Product.Price * it.Quantity
	}
	return out
}

func toCartOutput(items []model.OrderItem) CartOutput {
	out := CartOutput{Items: make([]OrderItemOutput, 0, len(items))}
	for _, it := range items {
		o := toOrderItemOutput(it)
		out.Items = append(out.Items, o)
		out.TotalQuantity += o.Quantity
		out.Total += o.Subtotal
	}
	return out
}

func toOrderOutput(o model.Order) OrderOutput {
	items := make([]OrderItemOutput, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, toOrderItemOutput(it))
	}
	return OrderOutput{
		ID:     o.ID,
		Status: o.Status,
		Shipping: ShippingOutput{
			FullName: o.FullName,
			Email:    o.Email,
			Phone:    o.Phone,
			Address:  o.Address,
			City:     o.City,
			Country:  o.Country,
			Zipcode:  o.Zipcode,
		},
		Items:     items,
		CreatedAt: o.CreatedAt,
	}
}
