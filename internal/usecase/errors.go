package usecase

import (
	"errors"
	"fmt"

	"storefront/internal/validator"
)

// エラーの種類。handlerはこの種類でHTTPステータスを決める。
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrEmptyCart    = errors.New("no items in cart")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")

	// 配送先が無い/他人のもの
	ErrShippingNotFound = fmt.Errorf("shipping address %w", ErrNotFound)
)

// usecaseが返すエラー。KindでHTTPの種類、Messageで利用者向けの文言。
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

// errors.Is で Kind と原因の両方に届くようにする
func (e *AppError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewError(kind error, message string) error {
	return &AppError{Kind: kind, Message: message}
}

func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	ok := errors.As(err, &ae)
	return ae, ok
}

func notFound(what string) error {
	return NewError(ErrNotFound, what+" not found")
}

// 入力チェックの結果を ErrValidation にする
func invalid(err error) error {
	return &AppError{Kind: ErrValidation, Message: err.Error(), Err: err}
}

func validate(err error) error {
	if err == nil {
		return nil
	}
	var fe *validator.FieldError
	if errors.As(err, &fe) {
		return invalid(fe)
	}
	return invalid(err)
}

// 想定外のエラー。原因は残すが文言は出さない。
func internal(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsAppError(err); ok {
		return err
	}
	return &AppError{Kind: ErrInternal, Message: "internal error", Err: err}
}
