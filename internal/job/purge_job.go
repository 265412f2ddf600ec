package job

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"go.uber.org/zap"
)

// 物理削除の件数を記録する先
type PurgeRecorder interface {
	RecordPurge(table string, rows int64)
}

// 論理削除済みの行を持つテーブル1つ分
type PurgeTarget struct {
	Table    string
	Resource model.AuditResourceType
	Purger   repo.Purger
}

// PurgeJob は保持期間を過ぎた論理削除済みの行を物理削除する。
// 参照されていて消せない行はログを出して残し、次へ進む。
type PurgeJob struct {
	targets   []PurgeTarget
	auditLogs repo.AuditLogRepository
	recorder  PurgeRecorder
	retention time.Duration
	timeout   time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

// targets は参照する側から順に並べる (住所 → 商品 → 出品者 → カテゴリ)
func NewPurgeJob(
	targets []PurgeTarget,
	auditLogs repo.AuditLogRepository,
	recorder PurgeRecorder,
	retention time.Duration,
	logger *zap.Logger,
) *PurgeJob {
	return &PurgeJob{
		targets:   targets,
		auditLogs: auditLogs,
		recorder:  recorder,
		retention: retention,
		timeout:   5 * time.Minute,
		now:       time.Now,
		logger:    logger,
	}
}

// 1回分の結果
type PurgeResult struct {
	Table string
	Rows  int64
	Err   error
}

// cron から呼ばれる
func (j *PurgeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	j.RunOnce(ctx)
}

func (j *PurgeJob) RunOnce(ctx context.Context) []PurgeResult {
	cutoff := j.now().Add(-j.retention)
	j.logger.Info("Starting purge job", zap.Time("deleted_before", cutoff))

	results := make([]PurgeResult, 0, len(j.targets))
	var total int64
	for _, t := range j.targets {
		n, err := t.Purger.PurgeDeleted(ctx, cutoff)
		results = append(results, PurgeResult{Table: t.Table, Rows: n, Err: err})

		switch {
		case errors.Is(err, repo.ErrReferenced):
			//参照されている行だけ残り、消せた分は記録する
			j.logger.Warn("Skipped purge of referenced rows",
				zap.String("table", t.Table),
				zap.Int64("purged", n),
				zap.Error(err),
			)
		case err != nil:
			j.logger.Error("Failed to purge deleted rows", zap.String("table", t.Table), zap.Error(err))
			continue
		}
		if n == 0 {
			continue
		}

		total += n
		if j.recorder != nil {
			j.recorder.RecordPurge(t.Table, n)
		}
		j.audit(ctx, t, n, cutoff)
	}

	j.logger.Info("Purge job completed", zap.Int64("rows", total))
	return results
}

func (j *PurgeJob) audit(ctx context.Context, t PurgeTarget, rows int64, cutoff time.Time) {
	after, _ := json.Marshal(map[string]any{
		"table":          t.Table,
		"rows":           rows,
		"deleted_before": cutoff.UTC(),
	})
	log := &model.AuditLog{
		ActorUserID:  model.SystemActor,
		Action:       model.AuditActionPurge,
		ResourceType: t.Resource,
		ResourceID:   "*",
		After:        after,
	}
	if err := j.auditLogs.Create(ctx, log); err != nil {
		j.logger.Error("Failed to write purge audit log", zap.String("table", t.Table), zap.Error(err))
	}
}
