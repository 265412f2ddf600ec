package repository

import (
	"path/filepath"
	"testing"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/infra/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(config.DatabaseConfig{
		Driver: "sqlite",
		URL:    filepath.Join(t.TempDir(), "repo.db"),
	}, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

// カテゴリ・出品者・商品を1件ずつ作る
func seedProduct(t *testing.T, gdb *gorm.DB, slug string, price int64) model.Product {
	t.Helper()
	cat := model.Category{Name: "cat-" + slug, Slug: "cat-" + slug}
	require.NoError(t, gdb.Create(&cat).Error)
	seller := model.Seller{UserID: "seller-" + slug, BusinessName: "shop " + slug, Slug: "shop-" + slug}
	require.NoError(t, gdb.Create(&seller).Error)
	p := model.Product{
		Name:       "Product " + slug,
		Slug:       slug,
		Price:      price,
		Stock:      10,
		CategoryID: cat.ID,
		SellerID:   seller.ID,
	}
	require.NoError(t, gdb.Create(&p).Error)
	return p
}

// 空の注文を1件作る
func seedOrder(t *testing.T, gdb *gorm.DB, userID string) model.Order {
	t.Helper()
	o := model.Order{UserID: userID, Status: model.OrderStatusPending, FullName: "Jane"}
	require.NoError(t, gdb.Create(&o).Error)
	return o
}

func at(minutesAgo int) time.Time {
	return time.Now().Add(-time.Duration(minutesAgo) * time.Minute).UTC()
}
