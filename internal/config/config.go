package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configはアプリ全体の設定
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Logger   LoggerConfig   `yaml:"logger"`
	Purge    PurgeConfig    `yaml:"purge"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	Env             string        `yaml:"env"` // dev/prod
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"` // postgres / sqlite
	URL             string        `yaml:"url"`    // DATABASE_URL があれば最優先
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"sslmode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type RedisConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Addr      string        `yaml:"addr"`
	Password  string        `yaml:"password"`
	DB        int           `yaml:"db"`
	RatingTTL time.Duration `yaml:"rating_ttl"`
}

type JWTConfig struct {
	Secret    string        `yaml:"secret"`
	AccessTTL time.Duration `yaml:"access_ttl"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
}

type PurgeConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Schedule  string        `yaml:"schedule"`
	Retention time.Duration `yaml:"retention"`
}

// 既定値
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8080",
			Env:             "dev",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			Name:            "storefront",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			RatingTTL: 5 * time.Minute,
		},
		JWT: JWTConfig{
			AccessTTL: 15 * time.Minute,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Purge: PurgeConfig{
			Enabled:   true,
			Schedule:  "@daily",
			Retention: 30 * 24 * time.Hour,
		},
	}
}

// Loadは yaml(任意) → .env(任意) → 環境変数 の順に上書きして設定を作る。
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	// .envは無くてもよい
	_ = godotenv.Load()

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	//必須チェック
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString("PORT", &cfg.Server.Port)
	setString("GO_ENV", &cfg.Server.Env)
	setString("LOG_LEVEL", &cfg.Logger.Level)

	setString("DATABASE_DRIVER", &cfg.Database.Driver)
	setString("DATABASE_URL", &cfg.Database.URL)
	setString("POSTGRES_HOST", &cfg.Database.Host)
	setString("POSTGRES_USER", &cfg.Database.User)
	setString("POSTGRES_PASSWORD", &cfg.Database.Password)
	setString("POSTGRES_DB", &cfg.Database.Name)
	setString("POSTGRES_SSLMODE", &cfg.Database.SSLMode)
	if err := setInt("POSTGRES_PORT", &cfg.Database.Port); err != nil {
		return err
	}

	setString("REDIS_ADDR", &cfg.Redis.Addr)
	setString("REDIS_PASSWORD", &cfg.Redis.Password)
	if err := setBool("REDIS_ENABLED", &cfg.Redis.Enabled); err != nil {
		return err
	}

	setString("JWT_SECRET", &cfg.JWT.Secret)
	if err := setDuration("JWT_ACCESS_TTL", &cfg.JWT.AccessTTL); err != nil {
		return err
	}

	setString("PURGE_SCHEDULE", &cfg.Purge.Schedule)
	if err := setBool("PURGE_ENABLED", &cfg.Purge.Enabled); err != nil {
		return err
	}
	return setDuration("PURGE_RETENTION", &cfg.Purge.Retention)
}

// 起動に必要な値がそろっているか
func (c Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.Database.Driver {
	case "postgres":
		if c.Database.URL == "" && c.Database.Host == "" {
			return fmt.Errorf("DATABASE_URL or POSTGRES_HOST is required")
		}
	case "sqlite":
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Purge.Enabled && c.Purge.Retention <= 0 {
		return fmt.Errorf("PURGE_RETENTION must be positive")
	}
	return nil
}

// ":8080" 形式のlistenアドレス
func (c Config) Addr() string {
	if strings.HasPrefix(c.Server.Port, ":") {
		return c.Server.Port
	}
	return ":" + c.Server.Port
}

func (c Config) IsDev() bool {
	return c.Server.Env == "" || c.Server.Env == "dev"
}

func setString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s must be number: %w", key, err)
	}
	*dst = i
	return nil
}

func setBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s must be bool: %w", key, err)
	}
	*dst = b
	return nil
}

func setDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s must be duration: %w", key, err)
	}
	*dst = d
	return nil
}
