package server

import (
	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/repository"

	"github.com/labstack/echo/v4"
)

// Handlers はルート登録に使うhandlerの束
type Handlers struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Address *handler.AddressHandler
	Review  *handler.ReviewHandler
	Admin   *handler.AdminHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers, cfg config.JWTConfig, userRepo repository.UserRepository) {
	//公開
	h.Health.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e)
	h.Catalog.RegisterRoutes(e)

	//ログイン必須
	h.Cart.RegisterRoutes(e, cfg, userRepo)
	h.Order.RegisterRoutes(e, cfg, userRepo)
	h.Address.RegisterRoutes(e, cfg, userRepo)
	h.Review.RegisterRoutes(e, cfg, userRepo)

	//管理者
	h.Admin.RegisterRoutes(e, cfg, userRepo)
}
