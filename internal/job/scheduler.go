package job

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// cronのログをzapへ流す
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}

// 前回がまだ終わっていなければ次の実行は飛ばす。panicはログに出して続行。
func NewScheduler(logger *zap.Logger) *cron.Cron {
	l := cronLogger{logger: logger.Sugar()}
	return cron.New(
		cron.WithLogger(l),
		cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l)),
	)
}

// spec は cron 式 ("0 3 * * *") または "@daily" 等
func Schedule(c *cron.Cron, spec string, j cron.Job) error {
	if _, err := c.AddJob(spec, j); err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}
	return nil
}
