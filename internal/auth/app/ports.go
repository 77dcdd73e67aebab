package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
)

// Store persists the session between runs. Load on an empty store
// returns a zero Session and no error.
type Store interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, s domain.Session) error
	Clear(ctx context.Context) error
}

type AccountAPI interface {
	LoginCustomer(ctx context.Context, email, password string) (domain.User, error)
	LoginVendor(ctx context.Context, email, password string) (domain.User, error)
	LoginAdmin(ctx context.Context, identifier, password string) (domain.Admin, error)
	Signup(ctx context.Context, req domain.SignupRequest) (domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error

	SetupTwoFactor(ctx context.Context, customerID string) (domain.TwoFactorSetup, error)
	EnableTwoFactor(ctx context.Context, customerID, code, secret string) error
	ValidateTwoFactor(ctx context.Context, customerID, code string) (bool, error)
	DisableTwoFactor(ctx context.Context, customerID, code string) error
}
