package handler

import (
	"net/http"

	"storefront/internal/config"
	"storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// quantityは設定後の数量。0で削除。
type ToggleCartRequest struct {
	Slug     string `json:"slug"`
	Quantity *int64 `json:"quantity"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.JWTConfig, userRepo repository.UserRepository) {
	g := e.Group("/cart", authGuards(cfg, userRepo)...)
	g.GET("", h.getCart)
	g.POST("", h.toggle)
}

func (h *CartHandler) getCart(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	out, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 追加は201、更新・削除は200
func (h *CartHandler) toggle(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req ToggleCartRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if req.Quantity == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity: is required"})
	}

	out, err := h.uc.ToggleItem(c.Request().Context(), userID, usecase.ToggleCartItemInput{
		Slug:     req.Slug,
		Quantity: *req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	status := http.StatusOK
	if out.Result == usecase.CartItemAdded {
		status = http.StatusCreated
	}
	return c.JSON(status, out)
}
