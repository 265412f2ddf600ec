package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// handlerが500を返すときの原因。RequestLoggerが拾ってログに出す。
const CtxErrorCauseKey = "error_cause"

func SetErrorCause(c echo.Context, err error) {
	if err != nil {
		c.Set(CtxErrorCauseKey, err)
	}
}

// リクエストごとに1行ログを出す
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.URL.Path == "/health" || req.URL.Path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				// echoのエラーハンドラに書かせてからステータスを読む
				c.Error(err)
			}

			res := c.Response()
			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = res.Header().Get(echo.HeaderXRequestID)
			}
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.String("route", c.Path()),
				zap.Int("status", res.Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("client_ip", c.RealIP()),
				zap.String("request_id", requestID),
			}
			if cause, ok := c.Get(CtxErrorCauseKey).(error); ok {
				fields = append(fields, zap.Error(cause))
			}
			if res.Status >= 500 {
				logger.Error("request", fields...)
			} else {
				logger.Info("request", fields...)
			}
			return nil
		}
	}
}
