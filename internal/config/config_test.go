package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseFillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("easing: outQuint\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Default()
	want.Easing = "outQuint"
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestParseAllFields(t *testing.T) {
	data := []byte(`
easing: inOutBack
duration: 1.5s
fps: 30
jump_lines: 4
watch: false
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Config{
		Easing:    "inOutBack",
		Duration:  1500 * time.Millisecond,
		FPS:       30,
		JumpLines: 4,
		Watch:     false,
	}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestParseZeroDurationAllowed(t *testing.T) {
	cfg, err := Parse([]byte("duration: 0s\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Duration != 0 {
		t.Fatalf("expected zero duration, got %v", cfg.Duration)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "easing: [unclosed"},
		{"bad duration", "duration: soon"},
		{"negative duration", "duration: -1s"},
		{"unknown easing", "easing: bounce"},
	}
	for _, tt := range tests {
		if _, err := Parse([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}

	if _, err := Parse([]byte("easing: bounce")); !errors.Is(err, ErrUnknownEasing) {
		t.Fatalf("expected ErrUnknownEasing, got %v", err)
	}
}

func TestLoadUsesEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("fps: 24\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(EnvPath, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPS != 24 {
		t.Fatalf("expected fps 24, got %d", cfg.FPS)
	}
}

func TestLoadMissingEnvPathFails(t *testing.T) {
	t.Setenv(EnvPath, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvPath, "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestEasingFunc(t *testing.T) {
	cfg := Default()
	cfg.Easing = "linear"
	if got := cfg.EasingFunc()(0.3); got != 0.3 {
		t.Fatalf("expected linear, got %v", got)
	}
}
