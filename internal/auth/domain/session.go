package domain

import "strings"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return r, true
	}
	return "", false
}

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	TFAEnabled bool   `json:"tfaEnabled"`
}

// Admin marks a session that passed the admin login.
type Admin struct {
	Username string `json:"username"`
}

// Session is what the client remembers between commands. It carries no
// expiry; the backend enforces authorization on every call.
type Session struct {
	User             *User  `json:"user,omitempty"`
	Admin            *Admin `json:"admin,omitempty"`
	TwoFactorPending bool   `json:"twoFactorPending,omitempty"`
}

func (s Session) Authenticated() bool {
	if s.Admin != nil {
		return true
	}
	return s.User != nil && !s.TwoFactorPending
}

// HasRole reports whether the session may act as r.
func (s Session) HasRole(r Role) bool {
	if r == RoleAdmin {
		return s.Admin != nil
	}
	return s.Authenticated() && s.User != nil && s.User.Role == r
}

// Step tells the caller what a login needs next.
type Step int

const (
	StepDone Step = iota
	StepTwoFactor
)

type SignupRequest struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}

// TwoFactorSetup is what the backend hands out when a customer starts
// enrolling an authenticator app.
type TwoFactorSetup struct {
	Secret      string
	QRCodeImage string
	OTPAuthURL  string
}

// Clone returns a copy that shares no pointers with s.
func (s Session) Clone() Session {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	if s.Admin != nil {
		a := *s.Admin
		out.Admin = &a
	}
	return out
}
