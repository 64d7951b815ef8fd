package domain

import "testing"

func TestCanonicalSpecialty(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Psychology", "Psychology"},
		{"psychology", "Psychology"},
		{"  PROGRAMMING ", "Programming"},
		{"health-fitness", "Health & Fitness"},
		{"auto_mechanics", "Auto Mechanics"},
		{"Cloud Services", "Cloud Services"},
		{"Underwater Basket Weaving", "Underwater Basket Weaving"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CanonicalSpecialty(tt.in); got != tt.want {
			t.Errorf("CanonicalSpecialty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFold(t *testing.T) {
	if Fold("São PAULO") != Fold("são paulo") {
		t.Error("expected case-insensitive fold to match")
	}
}
