package repository

import (
	"context"
	"time"
)

// 削除の約束。hard=false なら論理削除、hard=true なら物理削除。
type Deleter interface {
	Delete(ctx context.Context, id string, hard bool) error
}

// 論理削除されてから一定期間過ぎた行を物理削除する約束
type Purger interface {
	PurgeDeleted(ctx context.Context, deletedBefore time.Time) (int64, error)
}
