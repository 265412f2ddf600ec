package auth

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
	"storefront/internal/usecase"
	"storefront/internal/validator"
)

// 会員登録の入力
type RegisterUserInput struct {
	Email    string
	Password string
}

// 会員登録の出力
type RegisterUserOutput struct {
	User model.User `json:"user"`
}

var ErrEmailAlreadyExists = errors.New("email already exists")

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
}

// DI
func NewRegisterUserUsecase(userRepo repository.UserRepository, hasher PasswordHasher) *RegisterUserUsecase {
	return &RegisterUserUsecase{userRepo: userRepo, hasher: hasher}
}

// 会員登録実行
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (RegisterUserOutput, error) {
	var out RegisterUserOutput
	email := normalizeEmail(in.Email)

	if err := validator.ValidateRegister(email, in.Password); err != nil {
		return out, usecase.NewError(usecase.ErrValidation, err.Error())
	}

	// email重複チェック
	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return out, &usecase.AppError{Kind: usecase.ErrInternal, Message: "internal error", Err: err}
	}
	if existing != nil {
		return out, emailTaken(nil)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, &usecase.AppError{Kind: usecase.ErrInternal, Message: "internal error", Err: err}
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hashed, // 平文は保存しない
		Role:         model.RoleUser,
		IsActive:     true,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// 同時登録で一意制約に当たった場合
		if errors.Is(err, repository.ErrDuplicate) {
			return out, emailTaken(err)
		}
		return out, &usecase.AppError{Kind: usecase.ErrInternal, Message: "internal error", Err: err}
	}

	out.User = *user
	return out, nil
}

func emailTaken(cause error) error {
	if cause == nil {
		cause = ErrEmailAlreadyExists
	}
	return &usecase.AppError{Kind: usecase.ErrConflict, Message: ErrEmailAlreadyExists.Error(), Err: cause}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
