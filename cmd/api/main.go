package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/infra/cache"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/job"
	"storefront/internal/metrics"
	"storefront/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	//設定
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "configs/config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := initLogger(cfg.Logger.Level, cfg.IsDev())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("Starting storefront",
		zap.String("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("redis", cfg.Redis.Enabled),
	)

	//DB接続
	logLevel := gormlogger.Warn
	if cfg.IsDev() {
		logLevel = gormlogger.Info
	}
	gdb, err := db.Open(cfg.Database, logLevel)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close(gdb)

	if err := db.Migrate(gdb); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("Database migrations completed")

	//メトリクス
	m := metrics.New(logger)
	if err := db.RegisterMetricsCallbacks(gdb, m); err != nil {
		return fmt.Errorf("register db callbacks: %w", err)
	}
	stopStats := db.StartDBStatsCollector(gdb, m, 15*time.Second)
	defer stopStats()

	//Redis（無効なら評価キャッシュ無しで動く）
	var rdb redis.Cmdable
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := cache.Ping(pingCtx, client); err != nil {
			logger.Warn("Redis is not reachable, rating cache will miss", zap.Error(err))
		}
		cancel()
		rdb = client
	}

	e, err := server.New(server.Deps{
		DB:       gdb,
		Redis:    rdb,
		Config:   cfg,
		Logger:   logger,
		Metrics:  m,
		Gatherer: prometheus.DefaultGatherer,
	})
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	//論理削除済みの行の定期purge
	if cfg.Purge.Enabled {
		purge := job.NewPurgeJob(purgeTargets(gdb), infraRepo.NewAuditLogGormRepository(gdb), m, cfg.Purge.Retention, logger)
		scheduler := job.NewScheduler(logger)
		if err := job.Schedule(scheduler, cfg.Purge.Schedule, purge); err != nil {
			return err
		}
		scheduler.Start()
		defer func() { <-scheduler.Stop().Done() }()
		logger.Info("Purge job scheduled",
			zap.String("schedule", cfg.Purge.Schedule),
			zap.Duration("retention", cfg.Purge.Retention),
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx, e, cfg.Server, cfg.Addr(), logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	logger.Info("Server exited gracefully")
	return nil
}

// 参照する側から消す
func purgeTargets(gdb *gorm.DB) []job.PurgeTarget {
	return []job.PurgeTarget{
		{Table: "shipping_addresses", Resource: model.AuditResourceAddress, Purger: infraRepo.NewShippingAddressGormRepository(gdb)},
		{Table: "products", Resource: model.AuditResourceProduct, Purger: infraRepo.NewProductGormRepository(gdb)},
		{Table: "sellers", Resource: model.AuditResourceSeller, Purger: infraRepo.NewSellerGormRepository(gdb)},
		{Table: "categories", Resource: model.AuditResourceCategory, Purger: infraRepo.NewCategoryGormRepository(gdb)},
	}
}

// initLogger はログレベル文字列からzapのloggerを作る
func initLogger(level string, dev bool) (*zap.Logger, error) {
	return loggerConfig(level, dev).Build()
}

// devなら人が読むコンソール形式、それ以外は本番向けJSON
func loggerConfig(level string, dev bool) zap.Config {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	if dev {
		zcfg := zap.NewDevelopmentConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapLevel)
		return zcfg
	}

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	zcfg.EncoderConfig.TimeKey = "timestamp"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg
}
