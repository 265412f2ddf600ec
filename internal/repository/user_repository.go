package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// ユーザーの保存・取得
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// 見つからない場合 ErrNotFound
	FindByID(ctx context.Context, userID string) (*model.User, error)
	// 見つからない場合 nil, nil
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}
