package usecase

import (
	"context"
	"strings"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	"github.com/polkiloo/foodfront/internal/domain/model"
)

// AccountUseCase manages the profile and saved addresses of the caller.
type AccountUseCase struct {
	account backend.AccountAPI
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(client backend.Client) *AccountUseCase {
	return &AccountUseCase{account: client}
}

func (u *AccountUseCase) Profile(ctx context.Context) (*model.Profile, error) {
	return u.account.Profile(ctx)
}

// UpdateProfile changes the name and phone. Email and role are owned by the backend.
func (u *AccountUseCase) UpdateProfile(ctx context.Context, p model.Profile) (*model.Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)
	if p.Name == "" {
		return nil, invalid("name is required")
	}
	return u.account.UpdateProfile(ctx, p)
}

func (u *AccountUseCase) ChangePassword(ctx context.Context, change model.PasswordChange) error {
	if change.CurrentPassword == "" {
		return invalid("current password is required")
	}
	if len(change.NewPassword) < 6 {
		return invalid("password must be at least 6 characters")
	}
	return u.account.ChangePassword(ctx, change)
}

func (u *AccountUseCase) Addresses(ctx context.Context) ([]model.Address, error) {
	return u.account.Addresses(ctx)
}

func (u *AccountUseCase) AddAddress(ctx context.Context, a model.Address) (*model.Address, error) {
	a, err := normalizeAddress(a)
	if err != nil {
		return nil, err
	}
	return u.account.AddAddress(ctx, a)
}

func (u *AccountUseCase) UpdateAddress(ctx context.Context, a model.Address) (*model.Address, error) {
	a, err := normalizeAddress(a)
	if err != nil {
		return nil, err
	}
	return u.account.UpdateAddress(ctx, a)
}

func (u *AccountUseCase) DeleteAddress(ctx context.Context, id int64) error {
	return u.account.DeleteAddress(ctx, id)
}
