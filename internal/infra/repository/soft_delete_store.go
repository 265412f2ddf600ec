package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

// 論理削除できるエンティティの共通ストア。
// 読み取りは Query (is_deleted = false のみ) と QueryIncludingDeleted を呼び分ける。
type softDeleteStore[T any] struct {
	db  *gorm.DB
	now func() time.Time
}

func newSoftDeleteStore[T any](db *gorm.DB) softDeleteStore[T] {
	return softDeleteStore[T]{db: db, now: time.Now}
}

// 削除されていない行だけを新しい順で引くクエリ
func (s softDeleteStore[T]) Query(ctx context.Context) *gorm.DB {
	return s.QueryIncludingDeleted(ctx).Where("is_deleted = ?", false)
}

// 論理削除済みも含めたクエリ
func (s softDeleteStore[T]) QueryIncludingDeleted(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(new(T)).Order("created_at DESC")
}

// 見つからない場合は nil, nil
func (s softDeleteStore[T]) GetOrNone(ctx context.Context, query any, args ...any) (*T, error) {
	return firstOrNone[T](s.Query(ctx).Where(query, args...))
}

// 見つからない場合は ErrNotFound
func (s softDeleteStore[T]) Get(ctx context.Context, query any, args ...any) (*T, error) {
	return firstOrNotFound[T](s.Query(ctx).Where(query, args...))
}

// 管理者の物理削除用。論理削除済みも対象、見つからない場合は nil, nil
func (s softDeleteStore[T]) GetOrNoneIncludingDeleted(ctx context.Context, query any, args ...any) (*T, error) {
	return firstOrNone[T](s.QueryIncludingDeleted(ctx).Where(query, args...))
}

// 論理削除済みでも取得する
func (s softDeleteStore[T]) GetIncludingDeleted(ctx context.Context, id string) (*T, error) {
	return firstOrNotFound[T](s.QueryIncludingDeleted(ctx).Where("id = ?", id))
}

func (s softDeleteStore[T]) Create(ctx context.Context, v *T) error {
	return translateError(s.db.WithContext(ctx).Create(v).Error)
}

// hard=false は is_deleted と deleted_at の2列だけを更新する。
// hard=true は行を物理削除する (論理削除済みの行も対象)。
func (s softDeleteStore[T]) Delete(ctx context.Context, id string, hard bool) error {
	var res *gorm.DB
	if hard {
		res = s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	} else {
		res = s.db.WithContext(ctx).
			Model(new(T)).
			Where("id = ? AND is_deleted = ?", id, false).
			UpdateColumns(map[string]any{
				"is_deleted": true,
				"deleted_at": s.now(),
			})
	}
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// deletedBefore より前に論理削除された行を1行ずつ物理削除する。
// まだ参照されている行 (外部キー違反) は残して次へ進み、
// 最後に件数付きの ErrReferenced を返す。消せた件数はその場合も返す。
func (s softDeleteStore[T]) PurgeDeleted(ctx context.Context, deletedBefore time.Time) (int64, error) {
	var ids []string
	if err := s.db.WithContext(ctx).
		Model(new(T)).
		Where("is_deleted = ? AND deleted_at < ?", true, deletedBefore).
		Pluck("id", &ids).Error; err != nil {
		return 0, translateError(err)
	}

	var purged int64
	skipped := 0
	for _, id := range ids {
		res := s.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, true).Delete(new(T))
		err := translateError(res.Error)
		switch {
		case errors.Is(err, repo.ErrReferenced):
			skipped++
			continue
		case err != nil:
			return purged, err
		}
		purged += res.RowsAffected
	}
	if skipped > 0 {
		return purged, fmt.Errorf("%d rows kept: %w", skipped, repo.ErrReferenced)
	}
	return purged, nil
}

func firstOrNone[T any](q *gorm.DB) (*T, error) {
	var out T
	err := q.First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func firstOrNotFound[T any](q *gorm.DB) (*T, error) {
	out, err := firstOrNone[T](q)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, repo.ErrNotFound
	}
	return out, nil
}
