package util

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
		want  string
	}{
		{"whole px", 16, "px", "16px"},
		{"fractional px", 12.8, "px", "12.8px"},
		{"rem", 1.25, "rem", "1.25rem"},
		{"long fraction trimmed", 20.48, "px", "20.48px"},
		{"zero", 0, "px", "0px"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.value, tt.unit); got != tt.want {
				t.Errorf("FormatSize(%v, %q) = %q, want %q", tt.value, tt.unit, got, tt.want)
			}
		})
	}
}

func TestFormatRatio(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.25, "1.25"},
		{1.333, "1.333"},
		{2, "2"},
	}
	for _, tt := range tests {
		if got := FormatRatio(tt.in); got != tt.want {
			t.Errorf("FormatRatio(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatContrast(t *testing.T) {
	if got := FormatContrast(4.5); got != "4.50:1" {
		t.Errorf("got %q", got)
	}
	if got := FormatContrast(21); got != "21.00:1" {
		t.Errorf("got %q", got)
	}
}
