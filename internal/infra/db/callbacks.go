package db

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const startTimeKey = "metrics:start_time"

// DBメトリクスの記録先
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// GORMのコールバックにクエリ時間の計測を差し込む
func RegisterMetricsCallbacks(gdb *gorm.DB, recorder MetricsRecorder) error {
	cb := gdb.Callback()
	steps := []struct {
		op     string
		before func(name string, fn func(*gorm.DB)) error
		after  func(name string, fn func(*gorm.DB)) error
	}{
		{"select", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"insert", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}

	for _, s := range steps {
		op := s.op
		if err := s.before("metrics:"+op+"_before", markStart); err != nil {
			return err
		}
		if err := s.after("metrics:"+op+"_after", func(tx *gorm.DB) {
			record(tx, op, recorder)
		}); err != nil {
			return err
		}
	}
	return nil
}

func markStart(tx *gorm.DB) {
	tx.InstanceSet(startTimeKey, time.Now())
}

func record(tx *gorm.DB, op string, recorder MetricsRecorder) {
	v, ok := tx.InstanceGet(startTimeKey)
	if !ok {
		return
	}
	start, ok := v.(time.Time)
	if !ok {
		return
	}
	table := tx.Statement.Table
	if table == "" {
		table = "unknown"
	}
	err := tx.Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 見つからないのは失敗ではない
		err = nil
	}
	recorder.RecordDBQuery(op, table, time.Since(start), err)
}

// コネクションプールの統計を定期的に記録する。返り値の関数で止める。
func StartDBStatsCollector(gdb *gorm.DB, recorder MetricsRecorder, interval time.Duration) (stop func()) {
	done := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sqlDB, err := gdb.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }
}
