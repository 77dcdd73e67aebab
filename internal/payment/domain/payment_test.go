package domain

import "testing"

func TestParseMethod(t *testing.T) {
	cases := []struct {
		in   string
		want Method
		ok   bool
	}{
		{"cash", MethodCash, true},
		{"mobile", MethodMobileMoney, true},
		{"MOBILE_MONEY", MethodMobileMoney, true},
		{" Card ", MethodCard, true},
		{"Mobile Money", MethodMobileMoney, true},
		{"Credit Card", MethodCard, true},
		{"debit-card", MethodCard, true},
		{"bitcoin", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.in+" -> "+string(tc.want), func(t *testing.T) {
			got, ok := ParseMethod(tc.in)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("ParseMethod(%q) = %q, %v", tc.in, got, ok)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	if s, ok := ParseStatus("completed"); !ok || s != StatusCompleted {
		t.Fatalf("got %q, %v", s, ok)
	}
	if _, ok := ParseStatus("DONE"); ok {
		t.Fatal("DONE should not parse")
	}
}
