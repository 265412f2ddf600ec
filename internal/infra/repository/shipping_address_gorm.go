package repository

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type ShippingAddressGormRepository struct {
	softDeleteStore[model.ShippingAddress]
}

// DI
func NewShippingAddressGormRepository(db *gorm.DB) *ShippingAddressGormRepository {
	return &ShippingAddressGormRepository{softDeleteStore: newSoftDeleteStore[model.ShippingAddress](db)}
}

func (r *ShippingAddressGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.ShippingAddress, error) {
	var out []model.ShippingAddress
	if err := r.Query(ctx).Where("user_id = ?", userID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// 他人の住所・削除済みの住所は見つからない扱い
func (r *ShippingAddressGormRepository) FindOwned(ctx context.Context, userID, id string) (*model.ShippingAddress, error) {
	return r.GetOrNone(ctx, "id = ? AND user_id = ?", id, userID)
}

// 住所の7項目だけを更新する
func (r *ShippingAddressGormRepository) Update(ctx context.Context, a *model.ShippingAddress) error {
	res := r.db.WithContext(ctx).
		Model(&model.ShippingAddress{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", a.ID, a.UserID, false).
		Updates(map[string]any{
			"full_name": a.FullName,
			"email":     a.Email,
			"phone":     a.Phone,
			"address":   a.Address,
			"city":      a.City,
			"country":   a.Country,
			"zipcode":   a.Zipcode,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
