package mockapi

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// TwoFactorCode is the one code the mock authenticator accepts.
const TwoFactorCode = "123456"

type Signup struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type TwoFactorSetup struct {
	Secret      string `json:"secret"`
	QRCodeImage string `json:"qrCodeImage"`
	OTPAuthURL  string `json:"otpAuthUrl"`
}

func (s *Store) customerByEmail(email string) *Customer {
	for _, c := range s.customers {
		if strings.EqualFold(c.Email, email) {
			return c
		}
	}
	return nil
}

func (s *Store) Signup(in Signup) (Customer, error) {
	if strings.TrimSpace(in.Name) == "" || !strings.Contains(in.Email, "@") {
		return Customer{}, fail(http.StatusBadRequest, "Name and a valid email are required")
	}
	if len(in.Password) < 6 {
		return Customer{}, fail(http.StatusBadRequest, "Password must be at least 6 characters")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.customerByEmail(in.Email) != nil {
		return Customer{}, fail(http.StatusConflict, "Email %s is already registered", in.Email)
	}
	c := &Customer{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Phone:    in.Phone,
		Address:  in.Address,
		password: in.Password,
	}
	s.customers[c.ID] = c
	return *c, nil
}

func (s *Store) LoginCustomer(email, password string) (Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.customerByEmail(email)
	if c == nil || c.password != password {
		return Customer{}, fail(http.StatusUnauthorized, "Invalid email or password")
	}
	return *c, nil
}

func (s *Store) LoginVendor(email, password string) (Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vendors {
		if strings.EqualFold(v.Email, email) && v.password != "" && v.password == password {
			return *v, nil
		}
	}
	return Vendor{}, fail(http.StatusUnauthorized, "Invalid email or password")
}

func (s *Store) LoginAdmin(identifier, password string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pw, ok := s.admins[identifier]; ok && pw == password {
		return identifier, nil
	}
	return "", fail(http.StatusUnauthorized, "Invalid admin credentials")
}

// ForgotPassword issues a reset token. Unknown emails succeed silently.
func (s *Store) ForgotPassword(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.customerByEmail(email)
	if c == nil {
		return
	}
	for tok, id := range s.resets {
		if id == c.ID {
			delete(s.resets, tok)
		}
	}
	s.resets[uuid.NewString()] = c.ID
}

// ResetToken returns the outstanding reset token for email, if any.
func (s *Store) ResetToken(email string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.customerByEmail(email)
	if c == nil {
		return ""
	}
	for tok, id := range s.resets {
		if id == c.ID {
			return tok
		}
	}
	return ""
}

func (s *Store) ResetPassword(token, password string) error {
	if len(password) < 6 {
		return fail(http.StatusBadRequest, "Password must be at least 6 characters")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.resets[token]
	if !ok {
		return fail(http.StatusBadRequest, "Invalid or expired reset token")
	}
	delete(s.resets, token)
	s.customers[id].password = password
	return nil
}

func (s *Store) customer(id string) (*Customer, error) {
	c, ok := s.customers[id]
	if !ok {
		return nil, fail(http.StatusNotFound, "Customer not found with id: %s", id)
	}
	return c, nil
}

func (s *Store) SetupTwoFactor(customerID string) (TwoFactorSetup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.customer(customerID)
	if err != nil {
		return TwoFactorSetup{}, err
	}
	secret := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:16]
	c.pendingSecret = secret

	link := fmt.Sprintf("otpauth://totp/Storefront:%s?secret=%s&issuer=Storefront", url.PathEscape(c.Email), secret)
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return TwoFactorSetup{}, fail(http.StatusInternalServerError, "qr code: %v", err)
	}
	return TwoFactorSetup{
		Secret:      secret,
		QRCodeImage: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		OTPAuthURL:  link,
	}, nil
}

func (s *Store) EnableTwoFactor(customerID, code, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.customer(customerID)
	if err != nil {
		return err
	}
	if c.pendingSecret == "" || (secret != "" && secret != c.pendingSecret) {
		return fail(http.StatusBadRequest, "No two-factor setup in progress")
	}
	if code != TwoFactorCode {
		return fail(http.StatusBadRequest, "Invalid verification code")
	}
	c.tfaSecret, c.pendingSecret = c.pendingSecret, ""
	c.TFAEnabled = true
	return nil
}

func (s *Store) ValidateTwoFactor(customerID, code string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, err := s.customer(customerID)
	if err != nil {
		return false, err
	}
	return c.TFAEnabled && code == TwoFactorCode, nil
}

func (s *Store) DisableTwoFactor(customerID, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.customer(customerID)
	if err != nil {
		return err
	}
	if !c.TFAEnabled {
		return fail(http.StatusBadRequest, "Two-factor authentication is not enabled")
	}
	if code != TwoFactorCode {
		return fail(http.StatusBadRequest, "Invalid verification code")
	}
	c.TFAEnabled, c.tfaSecret = false, ""
	return nil
}
