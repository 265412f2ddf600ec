package repository

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewUpsert_SecondCallOverwrites(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	p := seedProduct(t, gdb, "book", 1500)
	r := NewReviewGormRepository(gdb)

	first, created, err := r.Upsert(ctx, "u1", p.ID, 2, "meh")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := r.Upsert(ctx, "u1", p.ID, 5, "actually great")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Rating)
	assert.Equal(t, "actually great", second.Text)

	all, err := r.ListByProductID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 5, all[0].Rating)
}

func TestReviewSummary(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	p := seedProduct(t, gdb, "chair", 8000)
	r := NewReviewGormRepository(gdb)

	empty, err := r.Summary(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.Count)
	assert.Nil(t, empty.Average)

	_, _, err = r.Upsert(ctx, "u1", p.ID, 4, "ok")
	require.NoError(t, err)
	_, _, err = r.Upsert(ctx, "u2", p.ID, 5, "good")
	require.NoError(t, err)

	s, err := r.Summary(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.Count)
	require.NotNil(t, s.Average)
	assert.InDelta(t, 4.5, *s.Average, 1e-9)
}

func TestReviewList_NewestFirst(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	p := seedProduct(t, gdb, "desk", 9000)
	r := NewReviewGormRepository(gdb)

	older := model.Review{UserID: "u1", ProductID: p.ID, Rating: 1, Text: "old"}
	older.CreatedAt = at(30)
	newer := model.Review{UserID: "u2", ProductID: "other", Rating: 3, Text: "new"}
	newer.CreatedAt = at(1)
	require.NoError(t, gdb.Create(&older).Error)
	require.NoError(t, gdb.Create(&newer).Error)

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].Text)

	byProduct, err := r.ListByProductID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, byProduct, 1)
	assert.Equal(t, "old", byProduct[0].Text)
}

func TestReviewDelete(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	p := seedProduct(t, gdb, "sofa", 30000)
	r := NewReviewGormRepository(gdb)

	rev, _, err := r.Upsert(ctx, "u1", p.ID, 3, "fine")
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, rev.ID))
	_, err = r.FindByID(ctx, rev.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, rev.ID), repo.ErrNotFound)
}
