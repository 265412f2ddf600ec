package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"

	"gorm.io/datatypes"
)

// 管理者によるカタログ操作。書き込みは監査ログと同じトランザクションで行う。
type AdminCatalogUsecase struct {
	tx         repo.TransactionManager
	users      repo.UserRepository
	categories repo.CategoryRepository
	sellers    repo.SellerRepository
	auditLogs  repo.AuditLogRepository
}

// DI
func NewAdminCatalogUsecase(
	tx repo.TransactionManager,
	users repo.UserRepository,
	categories repo.CategoryRepository,
	sellers repo.SellerRepository,
	auditLogs repo.AuditLogRepository,
) *AdminCatalogUsecase {
	return &AdminCatalogUsecase{
		tx:         tx,
		users:      users,
		categories: categories,
		sellers:    sellers,
		auditLogs:  auditLogs,
	}
}

type CreateCategoryInput struct {
	Name string
	Slug string
}

type CreateSellerInput struct {
	UserID       string
	BusinessName string
	Slug         string
}

type CreateProductInput struct {
	Name         string
	Slug         string
	Description  string
	Price        int64
	Stock        int64
	CategorySlug string
	SellerSlug   string
}

func (u *AdminCatalogUsecase) CreateCategory(ctx context.Context, actorID string, in CreateCategoryInput) (model.Category, error) {
	if err := validator.ValidateCategory(in.Name, in.Slug); err != nil {
		return model.Category{}, validate(err)
	}
	c := model.Category{Name: in.Name, Slug: slugOr(in.Slug, in.Name)}
	if c.Slug == "" {
		return model.Category{}, NewError(ErrValidation, "slug: cannot be derived from name")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Categories().Create(ctx, &c); err != nil {
			return createError(err, "category")
		}
		return writeAudit(ctx, r, actorID, model.AuditActionCreate, model.AuditResourceCategory, c.ID, nil, c)
	})
	if err != nil {
		return model.Category{}, internal(err)
	}
	return c, nil
}

// 既存ユーザーを出品者にする
func (u *AdminCatalogUsecase) CreateSeller(ctx context.Context, actorID string, in CreateSellerInput) (model.Seller, error) {
	if err := validator.ValidateSeller(in.UserID, in.BusinessName, in.Slug); err != nil {
		return model.Seller{}, validate(err)
	}
	if _, err := u.users.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Seller{}, notFound("user")
		}
		return model.Seller{}, internal(err)
	}

	s := model.Seller{UserID: in.UserID, BusinessName: in.BusinessName, Slug: slugOr(in.Slug, in.BusinessName)}
	if s.Slug == "" {
		return model.Seller{}, NewError(ErrValidation, "slug: cannot be derived from business_name")
	}
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Sellers().Create(ctx, &s); err != nil {
			return createError(err, "seller")
		}
		return writeAudit(ctx, r, actorID, model.AuditActionCreate, model.AuditResourceSeller, s.ID, nil, s)
	})
	if err != nil {
		return model.Seller{}, internal(err)
	}
	return s, nil
}

func (u *AdminCatalogUsecase) CreateProduct(ctx context.Context, actorID string, in CreateProductInput) (model.Product, error) {
	if err := validator.ValidateProduct(in.Name, in.Slug, in.CategorySlug, in.SellerSlug, in.Price, in.Stock); err != nil {
		return model.Product{}, validate(err)
	}

	//Tx外で参照先を確認する
	c, err := u.categories.FindBySlug(ctx, in.CategorySlug)
	if err != nil {
		return model.Product{}, internal(err)
	}
	if c == nil {
		return model.Product{}, notFound("category")
	}
	s, err := u.sellers.FindBySlug(ctx, in.SellerSlug)
	if err != nil {
		return model.Product{}, internal(err)
	}
	if s == nil {
		return model.Product{}, notFound("seller")
	}

	p := model.Product{
		Name:        in.Name,
		Slug:        slugOr(in.Slug, in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  c.ID,
		SellerID:    s.ID,
	}
	if p.Slug == "" {
		return model.Product{}, NewError(ErrValidation, "slug: cannot be derived from name")
	}
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Products().Create(ctx, &p); err != nil {
			return createError(err, "product")
		}
		return writeAudit(ctx, r, actorID, model.AuditActionCreate, model.AuditResourceProduct, p.ID, nil, p)
	})
	if err != nil {
		return model.Product{}, internal(err)
	}
	p.Category = c
	p.Seller = s
	return p, nil
}

// hard=false は論理削除、hard=true は論理削除済みも含めて物理削除
func (u *AdminCatalogUsecase) DeleteProduct(ctx context.Context, actorID, slug string, hard bool) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		find := r.Products().FindBySlug
		if hard {
			find = r.Products().FindBySlugIncludingDeleted
		}
		p, err := find(ctx, slug)
		if err != nil {
			return internal(err)
		}
		if p == nil {
			return notFound("product")
		}
		p.Category, p.Seller = nil, nil

		if err := r.Products().Delete(ctx, p.ID, hard); err != nil {
			return deleteError(err, "product")
		}
		return writeAudit(ctx, r, actorID, deleteAction(hard), model.AuditResourceProduct, p.ID, p, nil)
	})
	return internal(err)
}

func (u *AdminCatalogUsecase) DeleteCategory(ctx context.Context, actorID, slug string, hard bool) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		find := r.Categories().FindBySlug
		if hard {
			find = r.Categories().FindBySlugIncludingDeleted
		}
		c, err := find(ctx, slug)
		if err != nil {
			return internal(err)
		}
		if c == nil {
			return notFound("category")
		}

		if err := r.Categories().Delete(ctx, c.ID, hard); err != nil {
			return deleteError(err, "category")
		}
		return writeAudit(ctx, r, actorID, deleteAction(hard), model.AuditResourceCategory, c.ID, c, nil)
	})
	return internal(err)
}

func (u *AdminCatalogUsecase) ListAuditLogs(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, error) {
	if f.CreatedFrom != nil && f.CreatedTo != nil && f.CreatedFrom.After(*f.CreatedTo) {
		return nil, NewError(ErrValidation, "from: must not be after to")
	}
	out, err := u.auditLogs.List(ctx, f)
	if err != nil {
		return nil, internal(err)
	}
	return nonNil(out), nil
}

func deleteAction(hard bool) model.AuditAction {
	if hard {
		return model.AuditActionHardDelete
	}
	return model.AuditActionSoftDelete
}

func createError(err error, what string) error {
	if errors.Is(err, repo.ErrDuplicate) {
		return &AppError{Kind: ErrConflict, Message: what + " already exists", Err: err}
	}
	return internal(err)
}

func deleteError(err error, what string) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return notFound(what)
	case errors.Is(err, repo.ErrReferenced):
		return &AppError{Kind: ErrConflict, Message: what + " is still referenced", Err: err}
	}
	return internal(err)
}

// before/after はJSONにして残す
func writeAudit(
	ctx context.Context,
	r repo.TxRepos,
	actorID string,
	action model.AuditAction,
	resource model.AuditResourceType,
	resourceID string,
	before, after any,
) error {
	log := model.AuditLog{
		ActorUserID:  actorID,
		Action:       action,
		ResourceType: resource,
		ResourceID:   resourceID,
	}
	var err error
	if log.Before, err = toJSON(before); err != nil {
		return internal(err)
	}
	if log.After, err = toJSON(after); err != nil {
		return internal(err)
	}
	return internal(r.AuditLogs().Create(ctx, &log))
}

func toJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
