package templates

import "testing"

func TestAccessibleShare(t *testing.T) {
	tests := []struct {
		accessible int
		total      int
		want       string
	}{
		{0, 0, "0%"},
		{0, 9, "0%"},
		{3, 9, "33%"},
		{9, 9, "100%"},
	}
	for _, tt := range tests {
		if got := accessibleShare(tt.accessible, tt.total); got != tt.want {
			t.Errorf("accessibleShare(%d, %d) = %q, want %q", tt.accessible, tt.total, got, tt.want)
		}
	}
}

func TestStepBadge(t *testing.T) {
	tests := []struct {
		aaNormal bool
		aaa      bool
		want     string
	}{
		{false, false, "-"},
		{true, false, "AA"},
		{true, true, "AAA"},
	}
	for _, tt := range tests {
		if got := stepBadge(tt.aaNormal, tt.aaa); got != tt.want {
			t.Errorf("stepBadge(%v, %v) = %q, want %q", tt.aaNormal, tt.aaa, got, tt.want)
		}
	}
}
