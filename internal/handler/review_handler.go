package handler

import (
	"net/http"

	"storefront/internal/config"
	"storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	uc *usecase.ReviewUsecase
}

// DI
func NewReviewHandler(uc *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

type SubmitReviewRequest struct {
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
}

// 一覧は誰でも、投稿・削除はログイン必須
func (h *ReviewHandler) RegisterRoutes(e *echo.Echo, cfg config.JWTConfig, userRepo repository.UserRepository) {
	guards := authGuards(cfg, userRepo)
	e.GET("/reviews", h.listAll)
	e.GET("/reviews/product/:product_id", h.listForProduct)
	e.POST("/reviews", h.submit, guards...)
	e.DELETE("/reviews/:id", h.delete, guards...)
}

func (h *ReviewHandler) listAll(c echo.Context) error {
	out, err := h.uc.ListAllReviews(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) listForProduct(c echo.Context) error {
	out, err := h.uc.GetReviewsForProduct(c.Request().Context(), c.Param("product_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 新規は201、上書きは200
func (h *ReviewHandler) submit(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	out, err := h.uc.SubmitReview(c.Request().Context(), userID, usecase.SubmitReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Text:      req.Text,
	})
	if err != nil {
		return writeError(c, err)
	}

	status := http.StatusOK
	if out.Result == usecase.ReviewCreated {
		status = http.StatusCreated
	}
	return c.JSON(status, out)
}

func (h *ReviewHandler) delete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.uc.DeleteReview(c.Request().Context(), userID, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Review deleted successfully"})
}
