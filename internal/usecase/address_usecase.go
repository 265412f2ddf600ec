package usecase

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"
)

type AddressUsecase struct {
	addresses repo.ShippingAddressRepository
}

// DI
func NewAddressUsecase(addresses repo.ShippingAddressRepository) *AddressUsecase {
	return &AddressUsecase{addresses: addresses}
}

type AddressInput = validator.AddressFields

func (u *AddressUsecase) List(ctx context.Context, userID string) ([]model.ShippingAddress, error) {
	if userID == "" {
		return nil, NewError(ErrUnauthorized, "unauthorized")
	}
	out, err := u.addresses.ListByUserID(ctx, userID)
	if err != nil {
		return nil, internal(err)
	}
	return out, nil
}

func (u *AddressUsecase) Create(ctx context.Context, userID string, in AddressInput) (model.ShippingAddress, error) {
	if userID == "" {
		return model.ShippingAddress{}, NewError(ErrUnauthorized, "unauthorized")
	}
	if err := validator.ValidateAddress(in); err != nil {
		return model.ShippingAddress{}, validate(err)
	}
	a := newAddress(userID, in)
	if err := u.addresses.Create(ctx, &a); err != nil {
		return model.ShippingAddress{}, internal(err)
	}
	return a, nil
}

// 自分の住所だけ更新できる
func (u *AddressUsecase) Update(ctx context.Context, userID, id string, in AddressInput) (model.ShippingAddress, error) {
	if userID == "" {
		return model.ShippingAddress{}, NewError(ErrUnauthorized, "unauthorized")
	}
	if err := validator.ValidateAddress(in); err != nil {
		return model.ShippingAddress{}, validate(err)
	}
	a := newAddress(userID, in)
	a.ID = id
	if err := u.addresses.Update(ctx, &a); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.ShippingAddress{}, notFound("shipping address")
		}
		return model.ShippingAddress{}, internal(err)
	}

	updated, err := u.addresses.FindOwned(ctx, userID, id)
	if err != nil {
		return model.ShippingAddress{}, internal(err)
	}
	if updated == nil {
		return model.ShippingAddress{}, notFound("shipping address")
	}
	return *updated, nil
}

// 論理削除。過去の注文は住所をコピーして持っているので影響しない。
func (u *AddressUsecase) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return NewError(ErrUnauthorized, "unauthorized")
	}
	a, err := u.addresses.FindOwned(ctx, userID, id)
	if err != nil {
		return internal(err)
	}
	if a == nil {
		return notFound("shipping address")
	}
	if err := u.addresses.Delete(ctx, a.ID, false); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("shipping address")
		}
		return internal(err)
	}
	return nil
}

func newAddress(userID string, in AddressInput) model.ShippingAddress {
	return model.ShippingAddress{
		UserID:   userID,
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		City:     in.City,
		Country:  in.Country,
		Zipcode:  in.Zipcode,
	}
}
