package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Delete(ctx context.Context, id string, hard bool) error {
	return m.Called(ctx, id, hard).Error(0)
}

func (m *MockProductRepository) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).([]model.Product)
	return out, args.Error(1)
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) FindBySlugIncludingDeleted(ctx context.Context, slug string) (*model.Product, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Delete(ctx context.Context, id string, hard bool) error {
	return m.Called(ctx, id, hard).Error(0)
}

func (m *MockCategoryRepository) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Category)
	return out, args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	args := m.Called(ctx, slug)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) FindBySlugIncludingDeleted(ctx context.Context, slug string) (*model.Category, error) {
	args := m.Called(ctx, slug)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

type MockSellerRepository struct{ mock.Mock }

func (m *MockSellerRepository) Delete(ctx context.Context, id string, hard bool) error {
	return m.Called(ctx, id, hard).Error(0)
}

func (m *MockSellerRepository) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSellerRepository) FindBySlug(ctx context.Context, slug string) (*model.Seller, error) {
	args := m.Called(ctx, slug)
	s, _ := args.Get(0).(*model.Seller)
	return s, args.Error(1)
}

func (m *MockSellerRepository) FindByUserID(ctx context.Context, userID string) (*model.Seller, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(*model.Seller)
	return s, args.Error(1)
}

func (m *MockSellerRepository) Create(ctx context.Context, s *model.Seller) error {
	return m.Called(ctx, s).Error(0)
}

type MockCartItemRepository struct{ mock.Mock }

func (m *MockCartItemRepository) ListCart(ctx context.Context, userID string) ([]model.OrderItem, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]model.OrderItem)
	return out, args.Error(1)
}

func (m *MockCartItemRepository) LockCart(ctx context.Context, userID string) ([]model.OrderItem, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]model.OrderItem)
	return out, args.Error(1)
}

func (m *MockCartItemRepository) Upsert(ctx context.Context, userID, productID string, quantity int64) (model.OrderItem, bool, error) {
	args := m.Called(ctx, userID, productID, quantity)
	return args.Get(0).(model.OrderItem), args.Bool(1), args.Error(2)
}

func (m *MockCartItemRepository) Remove(ctx context.Context, userID, productID string) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartItemRepository) AttachToOrder(ctx context.Context, userID, orderID string, itemIDs []string) (int64, error) {
	args := m.Called(ctx, userID, orderID, itemIDs)
	return args.Get(0).(int64), args.Error(1)
}

type MockShippingAddressRepository struct{ mock.Mock }

func (m *MockShippingAddressRepository) Delete(ctx context.Context, id string, hard bool) error {
	return m.Called(ctx, id, hard).Error(0)
}

func (m *MockShippingAddressRepository) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShippingAddressRepository) ListByUserID(ctx context.Context, userID string) ([]model.ShippingAddress, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]model.ShippingAddress)
	return out, args.Error(1)
}

func (m *MockShippingAddressRepository) FindOwned(ctx context.Context, userID, id string) (*model.ShippingAddress, error) {
	args := m.Called(ctx, userID, id)
	a, _ := args.Get(0).(*model.ShippingAddress)
	return a, args.Error(1)
}

func (m *MockShippingAddressRepository) Create(ctx context.Context, a *model.ShippingAddress) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockShippingAddressRepository) Update(ctx context.Context, a *model.ShippingAddress) error {
	return m.Called(ctx, a).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Create(ctx context.Context, o *model.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]model.Order)
	return out, args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Upsert(ctx context.Context, userID, productID string, rating int, text string) (model.Review, bool, error) {
	args := m.Called(ctx, userID, productID, rating, text)
	return args.Get(0).(model.Review), args.Bool(1), args.Error(2)
}

func (m *MockReviewRepository) ListByProductID(ctx context.Context, productID string) ([]model.Review, error) {
	args := m.Called(ctx, productID)
	out, _ := args.Get(0).([]model.Review)
	return out, args.Error(1)
}

func (m *MockReviewRepository) ListAll(ctx context.Context) ([]model.Review, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Review)
	return out, args.Error(1)
}

func (m *MockReviewRepository) Summary(ctx context.Context, productID string) (repo.RatingSummary, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(repo.RatingSummary), args.Error(1)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id string) (*model.Review, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.Review)
	return r, args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, u *model.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *model.User) error {
	return m.Called(ctx, u).Error(0)
}

type MockAuditLogRepository struct{ mock.Mock }

func (m *MockAuditLogRepository) Create(ctx context.Context, l *model.AuditLog) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockAuditLogRepository) List(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).([]model.AuditLog)
	return out, args.Error(1)
}

type MockRatingCache struct{ mock.Mock }

func (m *MockRatingCache) Get(ctx context.Context, productID string) (repo.RatingSummary, bool) {
	args := m.Called(ctx, productID)
	return args.Get(0).(repo.RatingSummary), args.Bool(1)
}

func (m *MockRatingCache) Set(ctx context.Context, productID string, s repo.RatingSummary) {
	m.Called(ctx, productID, s)
}

func (m *MockRatingCache) Invalidate(ctx context.Context, productID string) {
	m.Called(ctx, productID)
}

// トランザクションの代わりにそのままfnを呼ぶ
type fakeTxRepos struct {
	cartItems  *MockCartItemRepository
	orders     *MockOrderRepository
	addresses  *MockShippingAddressRepository
	categories *MockCategoryRepository
	sellers    *MockSellerRepository
	products   *MockProductRepository
	auditLogs  *MockAuditLogRepository
}

func newFakeTxRepos() *fakeTxRepos {
	return &fakeTxRepos{
		cartItems:  new(MockCartItemRepository),
		orders:     new(MockOrderRepository),
		addresses:  new(MockShippingAddressRepository),
		categories: new(MockCategoryRepository),
		sellers:    new(MockSellerRepository),
		products:   new(MockProductRepository),
		auditLogs:  new(MockAuditLogRepository),
	}
}

func (r *fakeTxRepos) CartItems() repo.CartItemRepository                { return r.cartItems }
func (r *fakeTxRepos) Orders() repo.OrderRepository                      { return r.orders }
func (r *fakeTxRepos) ShippingAddresses() repo.ShippingAddressRepository { return r.addresses }
func (r *fakeTxRepos) Categories() repo.CategoryRepository               { return r.categories }
func (r *fakeTxRepos) Sellers() repo.SellerRepository                    { return r.sellers }
func (r *fakeTxRepos) Products() repo.ProductRepository                  { return r.products }
func (r *fakeTxRepos) AuditLogs() repo.AuditLogRepository                { return r.auditLogs }

type fakeTxManager struct {
	repos *fakeTxRepos
	calls int
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.calls++
	return fn(m.repos)
}

type fakeRecorder struct {
	toggles   map[string]int
	checkouts []int
	reviews   map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{toggles: map[string]int{}, reviews: map[string]int{}}
}

func (f *fakeRecorder) RecordCartToggle(result string) { f.toggles[result]++ }
func (f *fakeRecorder) RecordCheckout(items int)       { f.checkouts = append(f.checkouts, items) }
func (f *fakeRecorder) RecordReview(result string)     { f.reviews[result]++ }

var (
	_ repo.ProductRepository         = (*MockProductRepository)(nil)
	_ repo.CategoryRepository        = (*MockCategoryRepository)(nil)
	_ repo.SellerRepository          = (*MockSellerRepository)(nil)
	_ repo.CartItemRepository        = (*MockCartItemRepository)(nil)
	_ repo.ShippingAddressRepository = (*MockShippingAddressRepository)(nil)
	_ repo.OrderRepository           = (*MockOrderRepository)(nil)
	_ repo.ReviewRepository          = (*MockReviewRepository)(nil)
	_ repo.UserRepository            = (*MockUserRepository)(nil)
	_ repo.AuditLogRepository        = (*MockAuditLogRepository)(nil)
	_ repo.TransactionManager        = (*fakeTxManager)(nil)
	_ RatingCache                    = (*MockRatingCache)(nil)
	_ BusinessRecorder               = (*fakeRecorder)(nil)
)
