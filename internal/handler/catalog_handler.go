package handler

import (
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カテゴリ・出品者・商品の公開API
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/categories", h.listCategories)
	e.GET("/categories/:slug", h.productsByCategory)
	e.GET("/sellers/:slug", h.productsBySeller)
	e.GET("/products", h.listProducts)
	e.GET("/products/:slug", h.productDetail)
}

func (h *CatalogHandler) listCategories(c echo.Context) error {
	out, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) productsByCategory(c echo.Context) error {
	out, err := h.uc.ListProductsByCategory(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) productsBySeller(c echo.Context) error {
	out, err := h.uc.ListProductsBySeller(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// q, min_price, max_price
func (h *CatalogHandler) listProducts(c echo.Context) error {
	in := usecase.ListProductsInput{Q: strings.TrimSpace(c.QueryParam("q"))}
	if len(in.Q) > 100 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "q: must be at most 100 characters"})
	}

	var err error
	if in.MinPrice, err = queryInt64(c, "min_price"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid min_price"})
	}
	if in.MaxPrice, err = queryInt64(c, "max_price"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid max_price"})
	}

	out, err := h.uc.ListProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) productDetail(c echo.Context) error {
	out, err := h.uc.GetProduct(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 空ならnil
func queryInt64(c echo.Context, key string) (*int64, error) {
	v := c.QueryParam(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
