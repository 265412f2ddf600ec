package repository

import (
	"context"
	"os"
	"sync"
	"testing"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/infra/db"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func countCartRows(t *testing.T, r *CartItemGormRepository, userID string) int {
	t.Helper()
	items, err := r.ListCart(context.Background(), userID)
	require.NoError(t, err)
	return len(items)
}

func TestCartUpsert_CreateThenUpdate(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	p := seedProduct(t, gdb, "mug", 1200)
	r := NewCartItemGormRepository(gdb)

	first, created, err := r.Upsert(ctx, "u1", p.ID, 2)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(2), first.Quantity)
	require.NotNil(t, first.Product)
	assert.Equal(t, "mug", first.Product.Slug)

	second, created, err := r.Upsert(ctx, "u1", p.ID, 5)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	// 加算ではなく上書き
	assert.Equal(t, int64(5), second.Quantity)

	assert.Equal(t, 1, countCartRows(t, r, "u1"))
}

// 同じ(user, product)へ同時にUpsertしてもカート行は1行だけ
func upsertConcurrently(t *testing.T, gdb *gorm.DB, slug string) {
	t.Helper()
	ctx := context.Background()
	p := seedProduct(t, gdb, slug, 5000)
	r := NewCartItemGormRepository(gdb)
	userID := uuid.NewString()

	const workers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	createdCount := 0
	errs := make([]error, workers)
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, created, err := r.Upsert(ctx, userID, p.ID, int64(i+1))
			errs[i] = err
			if created {
				mu.Lock()
				createdCount++
				mu.Unlock()
			}
		}(i)
	}
	close(start)
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, createdCount)
	assert.Equal(t, 1, countCartRows(t, r, userID))
}

// sqliteは接続1本なので書き込みは直列になる。
// 部分ユニークインデックスとの競合は下のPostgres版で見る。
func TestCartUpsert_ConcurrentSameKeyKeepsOneRow(t *testing.T) {
	upsertConcurrently(t, newTestDB(t), "lamp")
}

func TestCartUpsert_ConcurrentSameKeyKeepsOneRow_Postgres(t *testing.T) {
	dsn := os.Getenv("STOREFRONT_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("STOREFRONT_TEST_DATABASE_URL not set")
	}
	gdb, err := db.Open(config.DatabaseConfig{Driver: "postgres", URL: dsn, MaxOpenConns: 8}, logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })
	require.NoError(t, db.Migrate(gdb))

	upsertConcurrently(t, gdb, "lamp-"+uuid.NewString()[:8])
}

func TestCartRemove(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	p := seedProduct(t, gdb, "pen", 100)
	r := NewCartItemGormRepository(gdb)

	removed, err := r.Remove(ctx, "u1", p.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, _, err = r.Upsert(ctx, "u1", p.ID, 1)
	require.NoError(t, err)

	removed, err = r.Remove(ctx, "u1", p.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, countCartRows(t, r, "u1"))
}

func TestAttachToOrder_OnlyGivenCartItems(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	p1 := seedProduct(t, gdb, "a", 100)
	p2 := seedProduct(t, gdb, "b", 200)
	r := NewCartItemGormRepository(gdb)

	i1, _, err := r.Upsert(ctx, "u1", p1.ID, 1)
	require.NoError(t, err)
	_, _, err = r.Upsert(ctx, "u1", p2.ID, 1)
	require.NoError(t, err)
	other, _, err := r.Upsert(ctx, "u2", p1.ID, 1)
	require.NoError(t, err)

	o1 := seedOrder(t, gdb, "u1")
	o2 := seedOrder(t, gdb, "u1")

	// 他人の明細IDは付け替えられない
	n, err := r.AttachToOrder(ctx, "u1", o1.ID, []string{i1.ID, other.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	left, err := r.ListCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, p2.ID, left[0].ProductID)

	var moved model.OrderItem
	require.NoError(t, gdb.First(&moved, "id = ?", i1.ID).Error)
	require.NotNil(t, moved.OrderID)
	assert.Equal(t, o1.ID, *moved.OrderID)
	assert.False(t, moved.InCart())

	n, err = r.AttachToOrder(ctx, "u1", o2.ID, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLockCart_ReturnsOnlyCartLines(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	p := seedProduct(t, gdb, "cup", 300)
	r := NewCartItemGormRepository(gdb)

	item, _, err := r.Upsert(ctx, "u1", p.ID, 1)
	require.NoError(t, err)
	o := seedOrder(t, gdb, "u1")
	_, err = r.AttachToOrder(ctx, "u1", o.ID, []string{item.ID})
	require.NoError(t, err)

	locked, err := r.LockCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, locked)
}

// どんな数量の並びで設定しても、カート行は1つで最後の数量になる
func TestProperty_CartUpsertIsIdempotentPerKey(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	p := seedProduct(t, gdb, "prop", 999)
	r := NewCartItemGormRepository(gdb)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("one row per (user, product) with the last quantity", prop.ForAll(
		func(quantities []int64) bool {
			if len(quantities) == 0 {
				return true
			}
			userID := uuid.NewString()
			createdCount := 0
			for _, q := range quantities {
				_, created, err := r.Upsert(ctx, userID, p.ID, q)
				if err != nil {
					return false
				}
				if created {
					createdCount++
				}
			}
			items, err := r.ListCart(ctx, userID)
			if err != nil || len(items) != 1 {
				return false
			}
			return createdCount == 1 && items[0].Quantity == quantities[len(quantities)-1]
		},
		gen.SliceOfN(5, gen.Int64Range(1, 50)),
	))

	properties.TestingRun(t)
}
