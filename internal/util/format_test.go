package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{-time.Second, "0ms"},
		{0, "0ms"},
		{600 * time.Millisecond, "600ms"},
		{time.Second, "1s"},
		{1500 * time.Millisecond, "1.5s"},
		{2 * time.Second, "2s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPosition(t *testing.T) {
	tests := []struct {
		line, total int
		want        string
	}{
		{0, 0, "0/0"},
		{0, 10, "1/10"},
		{9, 10, "10/10"},
		{40, 10, "10/10"},
	}
	for _, tt := range tests {
		if got := FormatPosition(tt.line, tt.total); got != tt.want {
			t.Errorf("FormatPosition(%d, %d) = %q, want %q", tt.line, tt.total, got, tt.want)
		}
	}
}
