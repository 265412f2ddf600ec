package repository

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_ListAndFindWithItems(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	p := seedProduct(t, gdb, "kettle", 4000)
	carts := NewCartItemGormRepository(gdb)
	orders := NewOrderGormRepository(gdb)

	item, _, err := carts.Upsert(ctx, "u1", p.ID, 2)
	require.NoError(t, err)

	o := &model.Order{UserID: "u1", Status: model.OrderStatusPending, FullName: "Jane"}
	require.NoError(t, orders.Create(ctx, o))
	_, err = carts.AttachToOrder(ctx, "u1", o.ID, []string{item.ID})
	require.NoError(t, err)

	list, err := orders.ListByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Items, 1)
	require.NotNil(t, list[0].Items[0].Product)
	assert.Equal(t, "kettle", list[0].Items[0].Product.Slug)

	got, err := orders.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FullName)
	assert.Len(t, got.Items, 1)

	_, err = orders.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	none, err := orders.ListByUserID(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAuditLogRepository_Filter(t *testing.T) {
	ctx := context.Background()
	r := NewAuditLogGormRepository(newTestDB(t))

	require.NoError(t, r.Create(ctx, &model.AuditLog{
		ActorUserID: "admin", Action: model.AuditActionSoftDelete,
		ResourceType: model.AuditResourceProduct, ResourceID: "p1",
		Before: []byte(`{"slug":"p1"}`),
	}))
	require.NoError(t, r.Create(ctx, &model.AuditLog{
		ActorUserID: model.SystemActor, Action: model.AuditActionPurge,
		ResourceType: model.AuditResourceCategory, ResourceID: "c1",
	}))

	all, err := r.List(ctx, repo.AuditLogFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	action := model.AuditActionSoftDelete
	filtered, err := r.List(ctx, repo.AuditLogFilter{Action: &action})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "p1", filtered[0].ResourceID)
	assert.JSONEq(t, `{"slug":"p1"}`, string(filtered[0].Before))

	byActor, err := r.List(ctx, repo.AuditLogFilter{ActorUserID: model.SystemActor})
	require.NoError(t, err)
	require.Len(t, byActor, 1)
	assert.Equal(t, model.AuditActionPurge, byActor[0].Action)
}
