package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	statusConnected     = "connected"
	statusNotConfigured = "not configured"
)

// /health と /ready
type HealthHandler struct {
	db    *gorm.DB
	redis redis.Cmdable // nilならRedis無し
}

func NewHealthHandler(db *gorm.DB, rdb redis.Cmdable) *HealthHandler {
	return &HealthHandler{db: db, redis: rdb}
}

type ReadyResponse struct {
	Status      string            `json:"status"`
	Connections map[string]string `json:"connections"`
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.health)
	e.GET("/ready", h.ready)
}

func (h *HealthHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// DBとRedisにpingして、どちらかが落ちていれば503
func (h *HealthHandler) ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	conns := map[string]string{
		"database": h.pingDB(ctx),
		"redis":    h.pingRedis(ctx),
	}

	res := ReadyResponse{Status: "ready", Connections: conns}
	status := http.StatusOK
	for _, s := range conns {
		if s != statusConnected && s != statusNotConfigured {
			res.Status = "not ready"
			status = http.StatusServiceUnavailable
			break
		}
	}
	return c.JSON(status, res)
}

func (h *HealthHandler) pingDB(ctx context.Context) string {
	sqlDB, err := h.db.DB()
	if err != nil {
		return "error: " + err.Error()
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return "error: " + err.Error()
	}
	return statusConnected
}

func (h *HealthHandler) pingRedis(ctx context.Context) string {
	if h.redis == nil {
		return statusNotConfigured
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return "error: " + err.Error()
	}
	return statusConnected
}
