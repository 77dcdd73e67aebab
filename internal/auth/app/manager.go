package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/auth/domain"
)

var (
	ErrNoPendingTwoFactor = errors.New("no login is waiting for a verification code")
	ErrInvalidCode        = errors.New("invalid verification code")
)

// Manager owns the session for one client. Hydrate loads it from the
// store; Logout tears it down. Every change is written through.
type Manager struct {
	accounts AccountAPI
	store    Store
	log      *slog.Logger

	mu      sync.RWMutex
	session domain.Session
}

func NewManager(accounts AccountAPI, store Store, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{accounts: accounts, store: store, log: log}
}

func (m *Manager) Hydrate(ctx context.Context) error {
	s, err := m.store.Load(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.session = s
	m.mu.Unlock()
	return nil
}

func (m *Manager) Current() domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Clone()
}

// RequireRole returns the session if it may act as any of roles.
func (m *Manager) RequireRole(roles ...domain.Role) (domain.Session, error) {
	s := m.Current()
	if !s.Authenticated() {
		return domain.Session{}, api.Unauthorized("auth", "please log in first")
	}
	for _, r := range roles {
		if s.HasRole(r) {
			return s, nil
		}
	}
	return domain.Session{}, api.Unauthorized("auth", "this action is not available for your account")
}

// CustomerID is the id of the logged-in customer.
func (m *Manager) CustomerID() (string, error) {
	s, err := m.RequireRole(domain.RoleCustomer)
	if err != nil {
		return "", err
	}
	return s.User.ID, nil
}

func (m *Manager) set(ctx context.Context, s domain.Session) error {
	if err := m.store.Save(ctx, s); err != nil {
		return err
	}
	m.mu.Lock()
	m.session = s
	m.mu.Unlock()
	return nil
}

func credentials(op, who, password string) error {
	if strings.TrimSpace(who) == "" || password == "" {
		return api.Invalid(op, "email and password are required")
	}
	return nil
}

// LoginCustomer returns StepTwoFactor when the account has 2FA enabled;
// the session stays unauthenticated until VerifyTwoFactor succeeds.
func (m *Manager) LoginCustomer(ctx context.Context, email, password string) (domain.Step, error) {
	if err := credentials("auth.login", email, password); err != nil {
		return domain.StepDone, err
	}
	user, err := m.accounts.LoginCustomer(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return domain.StepDone, err
	}
	user.Role = domain.RoleCustomer

	s := domain.Session{User: &user, TwoFactorPending: user.TFAEnabled}
	if err := m.set(ctx, s); err != nil {
		return domain.StepDone, err
	}

	if user.TFAEnabled {
		m.log.Info("login awaiting 2fa", slog.String("customer_id", user.ID))
		return domain.StepTwoFactor, nil
	}
	m.log.Info("customer logged in", slog.String("customer_id", user.ID))
	return domain.StepDone, nil
}

func (m *Manager) VerifyTwoFactor(ctx context.Context, code string) error {
	s := m.Current()
	if s.User == nil || !s.TwoFactorPending {
		return ErrNoPendingTwoFactor
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return api.Invalid("auth.2fa_validate", "verification code is required")
	}

	ok, err := m.accounts.ValidateTwoFactor(ctx, s.User.ID, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCode
	}

	s.TwoFactorPending = false
	return m.set(ctx, s)
}

func (m *Manager) LoginVendor(ctx context.Context, email, password string) error {
	if err := credentials("auth.vendor_login", email, password); err != nil {
		return err
	}
	user, err := m.accounts.LoginVendor(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return err
	}
	user.Role = domain.RoleVendor
	return m.set(ctx, domain.Session{User: &user})
}

// LoginAdmin adds the admin marker; an existing user login is kept.
func (m *Manager) LoginAdmin(ctx context.Context, identifier, password string) error {
	if strings.TrimSpace(identifier) == "" || password == "" {
		return api.Invalid("auth.admin_login", "identifier and password are required")
	}
	admin, err := m.accounts.LoginAdmin(ctx, strings.TrimSpace(identifier), password)
	if err != nil {
		return err
	}
	if admin.Username == "" {
		admin.Username = strings.TrimSpace(identifier)
	}
	s := m.Current()
	s.Admin = &admin
	return m.set(ctx, s)
}

func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.session = domain.Session{}
	m.mu.Unlock()
	return nil
}

func (m *Manager) Signup(ctx context.Context, req domain.SignupRequest) (domain.User, error) {
	const op = "auth.signup"
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	switch {
	case req.Name == "":
		return domain.User{}, api.Invalid(op, "name is required")
	case !strings.Contains(req.Email, "@"):
		return domain.User{}, api.Invalid(op, "a valid email is required")
	case len(req.Password) < 6:
		return domain.User{}, api.Invalid(op, "password must be at least 6 characters")
	}
	return m.accounts.Signup(ctx, req)
}

func (m *Manager) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return api.Invalid("auth.forgot_password", "email is required")
	}
	return m.accounts.ForgotPassword(ctx, email)
}

func (m *Manager) ResetPassword(ctx context.Context, token, newPassword, confirm string) error {
	const op = "auth.reset_password"
	if strings.TrimSpace(token) == "" || newPassword == "" {
		return api.Invalid(op, "reset code and new password are required")
	}
	if newPassword != confirm {
		return api.Invalid(op, "passwords do not match")
	}
	return m.accounts.ResetPassword(ctx, strings.TrimSpace(token), newPassword)
}

func (m *Manager) SetupTwoFactor(ctx context.Context) (domain.TwoFactorSetup, error) {
	id, err := m.CustomerID()
	if err != nil {
		return domain.TwoFactorSetup{}, err
	}
	return m.accounts.SetupTwoFactor(ctx, id)
}

// EnableTwoFactor confirms enrollment with a code from the authenticator.
func (m *Manager) EnableTwoFactor(ctx context.Context, code, secret string) error {
	id, err := m.CustomerID()
	if err != nil {
		return err
	}
	if strings.TrimSpace(code) == "" || strings.TrimSpace(secret) == "" {
		return api.Invalid("auth.2fa_verify", "verification code and secret are required")
	}
	if err := m.accounts.EnableTwoFactor(ctx, id, strings.TrimSpace(code), strings.TrimSpace(secret)); err != nil {
		return err
	}
	return m.setTFA(ctx, true)
}

func (m *Manager) DisableTwoFactor(ctx context.Context, code string) error {
	id, err := m.CustomerID()
	if err != nil {
		return err
	}
	if strings.TrimSpace(code) == "" {
		return api.Invalid("auth.2fa_disable", "verification code is required")
	}
	if err := m.accounts.DisableTwoFactor(ctx, id, strings.TrimSpace(code)); err != nil {
		return err
	}
	return m.setTFA(ctx, false)
}

func (m *Manager) setTFA(ctx context.Context, enabled bool) error {
	s := m.Current()
	u := *s.User
	u.TFAEnabled = enabled
	s.User = &u
	return m.set(ctx, s)
}
