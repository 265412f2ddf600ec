package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// panicを拾って500を返す
func Recovery(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}
				req := c.Request()
				logger.Error("panic recovered",
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("path", req.URL.Path),
					zap.String("method", req.Method),
					zap.String("query", req.URL.RawQuery),
					zap.Stack("stacktrace"),
				)
				err = c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}()
			return next(c)
		}
	}
}
