package auth

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
	"storefront/internal/usecase"
	"storefront/internal/validator"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

type AccessToken struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	TokenVersion int    `json:"token_version"`
}

// handlerがJSONにして返す
type LoginOutput struct {
	User  model.User  `json:"user"`
	Token AccessToken `json:"token"`
}

var (
	// メールまたはパスワードが違う
	ErrInvalidCredentials = errors.New("invalid credentials")
	// 停止済みユーザー
	ErrUserInactive = errors.New("user is inactive")
)

type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   AccessTokenIssuer
	clock    Clock
}

// DI
func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *LoginUsecase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput
	email := normalizeEmail(in.Email)

	if err := validator.ValidateLogin(email, in.Password); err != nil {
		return out, usecase.NewError(usecase.ErrValidation, err.Error())
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return out, &usecase.AppError{Kind: usecase.ErrInternal, Message: "internal error", Err: err}
	}
	// ユーザーが居ない場合もパスワード違いと同じ応答
	if user == nil || !u.verifier.Verify(in.Password, user.PasswordHash) {
		return out, &usecase.AppError{Kind: usecase.ErrUnauthorized, Message: ErrInvalidCredentials.Error(), Err: ErrInvalidCredentials}
	}

	//停止ユーザーはログイン不可
	if !user.IsActive {
		return out, &usecase.AppError{Kind: usecase.ErrForbidden, Message: ErrUserInactive.Error(), Err: ErrUserInactive}
	}

	now := u.clock.Now()
	token, exp, err := u.issuer.Issue(user.ID, user.Role, user.TokenVersion, now)
	if err != nil {
		return out, &usecase.AppError{Kind: usecase.ErrInternal, Message: "internal error", Err: err}
	}

	//最終ログイン時刻更新
	user.LastLoginAt = &now
	if err := u.userRepo.Update(ctx, user); err != nil {
		return out, &usecase.AppError{Kind: usecase.ErrInternal, Message: "internal error", Err: err}
	}

	out.User = *user
	out.Token = AccessToken{
		AccessToken:  token,
		TokenType:    "Bearer",
		ExpiresIn:    int(exp.Sub(now).Seconds()),
		TokenVersion: user.TokenVersion,
	}
	return out, nil
}
