package repository

import (
	"context"

	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	cartItems  repo.CartItemRepository
	orders     repo.OrderRepository
	addresses  repo.ShippingAddressRepository
	categories repo.CategoryRepository
	sellers    repo.SellerRepository
	products   repo.ProductRepository
	auditLogs  repo.AuditLogRepository
}

func (r *txReposGorm) CartItems() repo.CartItemRepository                { return r.cartItems }
func (r *txReposGorm) Orders() repo.OrderRepository                      { return r.orders }
func (r *txReposGorm) ShippingAddresses() repo.ShippingAddressRepository { return r.addresses }
func (r *txReposGorm) Categories() repo.CategoryRepository               { return r.categories }
func (r *txReposGorm) Sellers() repo.SellerRepository                    { return r.sellers }
func (r *txReposGorm) Products() repo.ProductRepository                  { return r.products }
func (r *txReposGorm) AuditLogs() repo.AuditLogRepository                { return r.auditLogs }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			cartItems:  NewCartItemGormRepository(tx),
			orders:     NewOrderGormRepository(tx),
			addresses:  NewShippingAddressGormRepository(tx),
			categories: NewCategoryGormRepository(tx),
			sellers:    NewSellerGormRepository(tx),
			products:   NewProductGormRepository(tx),
			auditLogs:  NewAuditLogGormRepository(tx),
		}
		return fn(r)
	})
}
