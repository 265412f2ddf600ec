package handler

import (
	"net/http"
	"strconv"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理者向けAPI。全ルートにAuthJWT→TokenVersionGuard→AdminRoleGuardを付ける。
type AdminHandler struct {
	uc *usecase.AdminCatalogUsecase
}

// DI
func NewAdminHandler(uc *usecase.AdminCatalogUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CreateSellerRequest struct {
	UserID       string `json:"user_id"`
	BusinessName string `json:"business_name"`
	Slug         string `json:"slug"`
}

type CreateProductRequest struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	Stock        int64  `json:"stock"`
	CategorySlug string `json:"category_slug"`
	SellerSlug   string `json:"seller_slug"`
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, cfg config.JWTConfig, userRepo repository.UserRepository) {
	guards := adminGuards(cfg, userRepo)

	//カテゴリ作成だけ公開側と同じパス
	e.POST("/categories", h.createCategory, guards...)

	g := e.Group("/admin", guards...)
	g.POST("/sellers", h.createSeller)
	g.POST("/products", h.createProduct)
	g.DELETE("/products/:slug", h.deleteProduct)
	g.DELETE("/categories/:slug", h.deleteCategory)
	g.GET("/audit-logs", h.listAuditLogs)
}

func (h *AdminHandler) createCategory(c echo.Context) error {
	actorID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateCategory(c.Request().Context(), actorID, usecase.CreateCategoryInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AdminHandler) createSeller(c echo.Context) error {
	actorID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	var req CreateSellerRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateSeller(c.Request().Context(), actorID, usecase.CreateSellerInput{
		UserID:       req.UserID,
		BusinessName: req.BusinessName,
		Slug:         req.Slug,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AdminHandler) createProduct(c echo.Context) error {
	actorID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateProduct(c.Request().Context(), actorID, usecase.CreateProductInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Price:        req.Price,
		Stock:        req.Stock,
		CategorySlug: req.CategorySlug,
		SellerSlug:   req.SellerSlug,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AdminHandler) deleteProduct(c echo.Context) error {
	actorID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	hard, err := queryBool(c, "hard")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid hard"})
	}
	if err := h.uc.DeleteProduct(c.Request().Context(), actorID, c.Param("slug"), hard); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) deleteCategory(c echo.Context) error {
	actorID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	hard, err := queryBool(c, "hard")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid hard"})
	}
	if err := h.uc.DeleteCategory(c.Request().Context(), actorID, c.Param("slug"), hard); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// actor, action, resource_type, resource_id, from, to (RFC3339)
func (h *AdminHandler) listAuditLogs(c echo.Context) error {
	f := repository.AuditLogFilter{
		ActorUserID: c.QueryParam("actor"),
		ResourceID:  c.QueryParam("resource_id"),
	}
	if v := c.QueryParam("action"); v != "" {
		a := model.AuditAction(v)
		f.Action = &a
	}
	if v := c.QueryParam("resource_type"); v != "" {
		rt := model.AuditResourceType(v)
		f.ResourceType = &rt
	}

	var err error
	if f.CreatedFrom, err = queryTime(c, "from"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from"})
	}
	if f.CreatedTo, err = queryTime(c, "to"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to"})
	}

	out, err := h.uc.ListAuditLogs(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func queryBool(c echo.Context, key string) (bool, error) {
	v := c.QueryParam(key)
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

func queryTime(c echo.Context, key string) (*time.Time, error) {
	v := c.QueryParam(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
