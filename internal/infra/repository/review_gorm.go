package repository

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

// DI
func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

// (user_id, product_id) の一意制約で INSERT ... ON CONFLICT DO UPDATE
func (r *ReviewGormRepository) Upsert(ctx context.Context, userID, productID string, rating int, text string) (model.Review, bool, error) {
	candidate := model.Review{
		Entity:    model.Entity{ID: uuid.NewString()},
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Text:      text,
	}

	var stored model.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "text", "updated_at"}),
		}).Create(&candidate).Error; err != nil {
			return translateError(err)
		}
		return tx.Where("user_id = ? AND product_id = ?", userID, productID).Take(&stored).Error
	})
	if err != nil {
		return model.Review{}, false, err
	}
	return stored, stored.ID == candidate.ID, nil
}

func (r *ReviewGormRepository) ListByProductID(ctx context.Context, productID string) ([]model.Review, error) {
	var out []model.Review
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReviewGormRepository) ListAll(ctx context.Context) ([]model.Review, error) {
	var out []model.Review
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// 件数と平均。0件なら平均はnil。
func (r *ReviewGormRepository) Summary(ctx context.Context, productID string) (repo.RatingSummary, error) {
	var row struct {
		Count   int64
		Average *float64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("COUNT(*) AS count, CAST(AVG(rating) AS DOUBLE PRECISION) AS average").
		Where("product_id = ?", productID).
		Scan(&row).Error
	if err != nil {
		return repo.RatingSummary{}, err
	}
	return repo.RatingSummary{Count: row.Count, Average: row.Average}, nil
}

func (r *ReviewGormRepository) FindByID(ctx context.Context, id string) (*model.Review, error) {
	return firstOrNotFound[model.Review](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *ReviewGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
