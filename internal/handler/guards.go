package handler

import (
	"storefront/internal/config"
	"storefront/internal/middleware"
	"storefront/internal/repository"

	"github.com/labstack/echo/v4"
)

// ログイン必須のルートに付けるミドルウェア
func authGuards(cfg config.JWTConfig, userRepo repository.UserRepository) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		middleware.AuthJWT(cfg),
		middleware.TokenVersionGuard(userRepo),
	}
}

// 管理者のみ
func adminGuards(cfg config.JWTConfig, userRepo repository.UserRepository) []echo.MiddlewareFunc {
	return append(authGuards(cfg, userRepo), middleware.AdminRoleGuard())
}
