package rest

import (
	"context"
	"net/http"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/auth/domain"
)

type userDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	TFAEnabled bool   `json:"tfaEnabled"`
}

func (d userDTO) toDomain(op string) (domain.User, error) {
	if d.ID == "" {
		return domain.User{}, &api.Error{Kind: api.KindServer, Op: op, Message: "malformed response: account without id"}
	}
	return domain.User{ID: d.ID, Name: d.Name, Email: d.Email, TFAEnabled: d.TFAEnabled}, nil
}

type credentialsDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminLoginDTO struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type signupDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Password string `json:"password"`
}

type codeDTO struct {
	Code   string `json:"code"`
	Secret string `json:"secret,omitempty"`
}

// AccountAPI implements app.AccountAPI over the customer, vendor and
// admin login routes.
type AccountAPI struct {
	c *api.Client
}

func NewAccountAPI(c *api.Client) *AccountAPI {
	return &AccountAPI{c: c}
}

func (a *AccountAPI) login(ctx context.Context, op, path, email, password string) (domain.User, error) {
	var dto userDTO
	if err := a.c.Post(ctx, op, path, nil, credentialsDTO{Email: email, Password: password}, &dto); err != nil {
		return domain.User{}, err
	}
	return dto.toDomain(op)
}

func (a *AccountAPI) LoginCustomer(ctx context.Context, email, password string) (domain.User, error) {
	return a.login(ctx, "auth.login", "/customers/login", email, password)
}

func (a *AccountAPI) LoginVendor(ctx context.Context, email, password string) (domain.User, error) {
	return a.login(ctx, "auth.vendor_login", "/vendors/login", email, password)
}

func (a *AccountAPI) LoginAdmin(ctx context.Context, identifier, password string) (domain.Admin, error) {
	var dto struct {
		Username string `json:"username"`
	}
	err := a.c.Post(ctx, "auth.admin_login", "/admin/login", nil,
		adminLoginDTO{Identifier: identifier, Password: password}, &dto)
	if err != nil {
		return domain.Admin{}, err
	}
	return domain.Admin{Username: dto.Username}, nil
}

func (a *AccountAPI) Signup(ctx context.Context, req domain.SignupRequest) (domain.User, error) {
	var dto userDTO
	err := a.c.Post(ctx, "auth.signup", "/customers", nil, signupDTO{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	}, &dto)
	if err != nil {
		return domain.User{}, err
	}
	u, err := dto.toDomain("auth.signup")
	u.Role = domain.RoleCustomer
	return u, err
}

func (a *AccountAPI) ForgotPassword(ctx context.Context, email string) error {
	return a.c.Post(ctx, "auth.forgot_password", "/customers/forgot-password", nil,
		map[string]string{"email": email}, nil)
}

func (a *AccountAPI) ResetPassword(ctx context.Context, token, newPassword string) error {
	return a.c.Post(ctx, "auth.reset_password", "/customers/reset-password", nil,
		map[string]string{"token": token, "newPassword": newPassword}, nil)
}

func twoFactor(action, customerID string, body any) api.Request {
	return api.Request{
		Method: http.MethodPost,
		Path:   "/customers/2fa/" + action,
		Query:  map[string]string{"customerId": customerID},
		Body:   body,
	}
}

func (a *AccountAPI) SetupTwoFactor(ctx context.Context, customerID string) (domain.TwoFactorSetup, error) {
	var dto struct {
		Secret      string `json:"secret"`
		QRCodeImage string `json:"qrCodeImage"`
		OTPAuthURL  string `json:"otpAuthUrl"`
	}
	if err := a.c.Do(ctx, "auth.2fa_setup", twoFactor("setup", customerID, nil), &dto); err != nil {
		return domain.TwoFactorSetup{}, err
	}
	if dto.Secret == "" {
		return domain.TwoFactorSetup{}, &api.Error{Kind: api.KindServer, Op: "auth.2fa_setup", Message: "malformed response: no secret"}
	}
	return domain.TwoFactorSetup{Secret: dto.Secret, QRCodeImage: dto.QRCodeImage, OTPAuthURL: dto.OTPAuthURL}, nil
}

func (a *AccountAPI) EnableTwoFactor(ctx context.Context, customerID, code, secret string) error {
	return a.c.Do(ctx, "auth.2fa_verify", twoFactor("verify", customerID, codeDTO{Code: code, Secret: secret}), nil)
}

func (a *AccountAPI) ValidateTwoFactor(ctx context.Context, customerID, code string) (bool, error) {
	var dto struct {
		Valid bool `json:"valid"`
	}
	if err := a.c.Do(ctx, "auth.2fa_validate", twoFactor("validate", customerID, codeDTO{Code: code}), &dto); err != nil {
		return false, err
	}
	return dto.Valid, nil
}

func (a *AccountAPI) DisableTwoFactor(ctx context.Context, customerID, code string) error {
	return a.c.Do(ctx, "auth.2fa_disable", twoFactor("disable", customerID, codeDTO{Code: code}), nil)
}
