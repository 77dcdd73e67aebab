package domain

import "testing"

func TestSessionAuthenticated(t *testing.T) {
	customer := &User{ID: "c1", Role: RoleCustomer, TFAEnabled: true}

	cases := []struct {
		name string
		s    Session
		want bool
	}{
		{"empty -> anonymous", Session{}, false},
		{"pending 2fa -> anonymous", Session{User: customer, TwoFactorPending: true}, false},
		{"verified user -> authenticated", Session{User: customer}, true},
		{"admin marker -> authenticated", Session{Admin: &Admin{Username: "root"}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.Authenticated(); got != tc.want {
				t.Fatalf("Authenticated() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSessionHasRole(t *testing.T) {
	s := Session{User: &User{ID: "v1", Role: RoleVendor}}
	if !s.HasRole(RoleVendor) {
		t.Fatal("vendor session should have vendor role")
	}
	if s.HasRole(RoleCustomer) || s.HasRole(RoleAdmin) {
		t.Fatal("vendor session should not have other roles")
	}

	s.Admin = &Admin{Username: "ops"}
	if !s.HasRole(RoleAdmin) {
		t.Fatal("admin marker should grant admin role")
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole(" Vendor "); !ok || r != RoleVendor {
		t.Fatalf("got %q, %v", r, ok)
	}
	if _, ok := ParseRole("driver"); ok {
		t.Fatal("driver is not a role")
	}
}
