package server

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/cache"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/infra/token"
	"storefront/internal/metrics"
	"storefront/internal/middleware"
	"storefront/internal/usecase"
	auth "storefront/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps はHTTPサーバーを組み立てるのに必要な外部の部品
type Deps struct {
	DB       *gorm.DB
	Redis    redis.Cmdable // nilなら評価キャッシュ無し
	Config   config.Config
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	BcryptCost int // 0ならbcrypt.DefaultCost
}

// New はrepository → usecase → handler の順に組み立ててechoを返す
func New(d Deps) (*echo.Echo, error) {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	issuer, err := token.NewJWTIssuer(d.Config.JWT.Secret, d.Config.JWT.AccessTTL)
	if err != nil {
		return nil, err
	}

	//Repository（GORM実装）
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	categoryRepo := infraRepo.NewCategoryGormRepository(d.DB)
	sellerRepo := infraRepo.NewSellerGormRepository(d.DB)
	productRepo := infraRepo.NewProductGormRepository(d.DB)
	cartRepo := infraRepo.NewCartItemGormRepository(d.DB)
	orderRepo := infraRepo.NewOrderGormRepository(d.DB)
	addressRepo := infraRepo.NewShippingAddressGormRepository(d.DB)
	reviewRepo := infraRepo.NewReviewGormRepository(d.DB)
	auditRepo := infraRepo.NewAuditLogGormRepository(d.DB)
	txm := infraRepo.NewTxManagerGorm(d.DB)

	ratingCache := usecase.NopRatingCache()
	if d.Redis != nil {
		ratingCache = cache.NewRedisRatingCache(d.Redis, d.Config.Redis.RatingTTL, d.Logger)
	}
	var recorder usecase.BusinessRecorder = usecase.NopRecorder()
	if d.Metrics != nil {
		recorder = d.Metrics
	}

	//Usecase
	registerUC := auth.NewRegisterUserUsecase(userRepo, auth.NewBcryptPasswordHasher(d.BcryptCost))
	loginUC := auth.NewLoginUsecase(userRepo, auth.NewBcryptPasswordVerifier(), issuer, auth.SystemClock{})
	catalogUC := usecase.NewCatalogUsecase(categoryRepo, sellerRepo, productRepo, reviewRepo, ratingCache)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo, recorder)
	orderUC := usecase.NewOrderUsecase(txm, orderRepo, recorder)
	addressUC := usecase.NewAddressUsecase(addressRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo, ratingCache, recorder)
	adminUC := usecase.NewAdminCatalogUsecase(txm, userRepo, categoryRepo, sellerRepo, auditRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	//Recovery → RequestID → RequestLogger → Metrics
	e.Use(middleware.Recovery(d.Logger))
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	if d.Metrics != nil {
		e.Use(middleware.Metrics(d.Metrics))
	}
	if d.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	RegisterRoutes(e, Handlers{
		Health:  handler.NewHealthHandler(d.DB, d.Redis),
		Auth:    handler.NewAuthHandler(registerUC, loginUC),
		Catalog: handler.NewCatalogHandler(catalogUC),
		Cart:    handler.NewCartHandler(cartUC),
		Order:   handler.NewOrderHandler(orderUC),
		Address: handler.NewAddressHandler(addressUC),
		Review:  handler.NewReviewHandler(reviewUC),
		Admin:   handler.NewAdminHandler(adminUC),
	}, d.Config.JWT, userRepo)

	return e, nil
}

// Start はctxが終わるまで待ってからgraceful shutdownする
func Start(ctx context.Context, e *echo.Echo, cfg config.ServerConfig, addr string, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
