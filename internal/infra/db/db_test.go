package db

import (
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := Open(config.DatabaseConfig{
		Driver: "sqlite",
		URL:    filepath.Join(t.TempDir(), "test.db"),
	}, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, Migrate(gdb))
	t.Cleanup(func() { _ = Close(gdb) })
	return gdb
}

// 外部キーを満たす商品を1件作る
func seedProduct(t *testing.T, gdb *gorm.DB) model.Product {
	t.Helper()
	suffix := uuid.NewString()[:8]
	c := model.Category{Name: "c", Slug: "c-" + suffix}
	require.NoError(t, gdb.Create(&c).Error)
	s := model.Seller{UserID: uuid.NewString(), BusinessName: "s", Slug: "s-" + suffix}
	require.NoError(t, gdb.Create(&s).Error)
	p := model.Product{Name: "p", Slug: "p-" + suffix, Price: 100, CategoryID: c.ID, SellerID: s.ID}
	require.NoError(t, gdb.Create(&p).Error)
	return p
}

type recordedQuery struct {
	operation string
	table     string
	err       error
}

type fakeRecorder struct {
	mu      sync.Mutex
	queries []recordedQuery
	stats   []sql.DBStats
}

func (r *fakeRecorder) RecordDBQuery(operation, table string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, recordedQuery{operation: operation, table: table, err: err})
}

func (r *fakeRecorder) UpdateDBStats(stats interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := stats.(sql.DBStats); ok {
		r.stats = append(r.stats, s)
	}
}

func (r *fakeRecorder) has(op, table string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.queries {
		if q.operation == op && q.table == table {
			return true
		}
	}
	return false
}

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=n sslmode=disable", DSN(cfg))

	cfg.URL = "postgres://x"
	assert.Equal(t, "postgres://x", DSN(cfg))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"}, logger.Silent)
	assert.Error(t, err)
}

func TestMigrate_CartLineUniqueOnlyWhileInCart(t *testing.T) {
	gdb := openTestDB(t)

	userID, productID := uuid.NewString(), seedProduct(t, gdb).ID
	first := model.OrderItem{UserID: userID, ProductID: productID, Quantity: 1}
	require.NoError(t, gdb.Create(&first).Error)

	// 同じ (user, product) のカート行は2つ作れない
	dup := model.OrderItem{UserID: userID, ProductID: productID, Quantity: 2}
	err := gdb.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	// 注文に付け替えた後なら同じ商品を再びカートに入れられる
	order := model.Order{UserID: userID, Status: model.OrderStatusPending}
	require.NoError(t, gdb.Create(&order).Error)
	require.NoError(t, gdb.Model(&model.OrderItem{}).Where("id = ?", first.ID).Update("order_id", order.ID).Error)
	again := model.OrderItem{UserID: userID, ProductID: productID, Quantity: 3}
	require.NoError(t, gdb.Create(&again).Error)
}

func TestOpen_SQLiteEnforcesForeignKeys(t *testing.T) {
	gdb := openTestDB(t)

	var enabled int
	require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	orphan := model.OrderItem{UserID: "u1", ProductID: uuid.NewString(), Quantity: 1}
	assert.ErrorIs(t, gdb.Create(&orphan).Error, gorm.ErrForeignKeyViolated)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "app.db?_foreign_keys=on", sqliteDSN("app.db"))
	assert.Equal(t, "file:app.db?cache=shared&_foreign_keys=on", sqliteDSN("file:app.db?cache=shared"))
	assert.Equal(t, "app.db?_fk=1", sqliteDSN("app.db?_fk=1"))
}

func TestMigrate_ReviewUniquePerUserAndProduct(t *testing.T) {
	gdb := openTestDB(t)

	r1 := model.Review{UserID: "u1", ProductID: "p1", Rating: 4, Text: "good"}
	require.NoError(t, gdb.Create(&r1).Error)
	r2 := model.Review{UserID: "u1", ProductID: "p1", Rating: 2, Text: "meh"}
	assert.ErrorIs(t, gdb.Create(&r2).Error, gorm.ErrDuplicatedKey)
}

func TestRegisterMetricsCallbacks(t *testing.T) {
	gdb := openTestDB(t)
	rec := &fakeRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(gdb, rec))

	c := model.Category{Name: "Books", Slug: "books"}
	require.NoError(t, gdb.Create(&c).Error)

	var got model.Category
	require.NoError(t, gdb.First(&got, "id = ?", c.ID).Error)
	require.NoError(t, gdb.Model(&got).Update("name", "Novels").Error)
	require.NoError(t, gdb.Delete(&model.Category{}, "id = ?", c.ID).Error)

	assert.True(t, rec.has("insert", "categories"))
	assert.True(t, rec.has("select", "categories"))
	assert.True(t, rec.has("update", "categories"))
	assert.True(t, rec.has("delete", "categories"))
}

func TestRegisterMetricsCallbacks_NotFoundIsNotAnError(t *testing.T) {
	gdb := openTestDB(t)
	rec := &fakeRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(gdb, rec))

	var got model.Category
	err := gdb.First(&got, "slug = ?", "missing").Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.NotEmpty(t, rec.queries)
	assert.NoError(t, rec.queries[len(rec.queries)-1].err)
}

func TestStartDBStatsCollector(t *testing.T) {
	gdb := openTestDB(t)
	rec := &fakeRecorder{}

	stop := StartDBStatsCollector(gdb, rec, 10*time.Millisecond)
	defer stop()

	assert.Eventually(t, func() bool {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		return len(rec.stats) > 0
	}, time.Second, 10*time.Millisecond)
}
