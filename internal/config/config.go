// Package config loads viewer settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/olivier-w/scrollus/internal/ease"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding an explicit config path.
const EnvPath = "SCROLLUS_CONFIG"

// DefaultPath is read from the working directory when EnvPath is unset.
const DefaultPath = "scrollus.yaml"

// ErrUnknownEasing reports an easing name that is not a preset.
var ErrUnknownEasing = errors.New("config: unknown easing")

// Config holds the viewer settings.
type Config struct {
	Easing    string        `yaml:"easing"`
	Duration  time.Duration `yaml:"-"`
	FPS       int           `yaml:"fps"`
	JumpLines int           `yaml:"jump_lines"`
	Watch     bool          `yaml:"watch"`
}

// file mirrors Config as written on disk.
type file struct {
	Easing    string `yaml:"easing"`
	Duration  string `yaml:"duration"`
	FPS       int    `yaml:"fps"`
	JumpLines int    `yaml:"jump_lines"`
	Watch     *bool  `yaml:"watch"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Easing:    "inOutCubic",
		Duration:  600 * time.Millisecond,
		FPS:       60,
		JumpLines: 10,
		Watch:     true,
	}
}

// EasingFunc returns the configured curve.
func (c Config) EasingFunc() ease.Func {
	return ease.Preset(c.Easing)
}

// Load reads the file named by EnvPath, or DefaultPath if that variable is
// empty. A missing DefaultPath yields the defaults; a missing explicit
// path is an error.
func Load() (Config, error) {
	if path := os.Getenv(EnvPath); path != "" {
		return LoadFile(path)
	}
	cfg, err := LoadFile(DefaultPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads settings from path, filling unset fields with defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML settings, filling unset fields with defaults.
func Parse(data []byte) (Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if f.Easing != "" {
		if _, ok := ease.ByName(f.Easing); !ok {
			return Config{}, fmt.Errorf("%w %q", ErrUnknownEasing, f.Easing)
		}
		cfg.Easing = f.Easing
	}
	if f.Duration != "" {
		d, err := time.ParseDuration(f.Duration)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: duration: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("parse config: duration must be non-negative, got %v", d)
		}
		cfg.Duration = d
	}
	if f.FPS > 0 {
		cfg.FPS = f.FPS
	}
	if f.JumpLines > 0 {
		cfg.JumpLines = f.JumpLines
	}
	if f.Watch != nil {
		cfg.Watch = *f.Watch
	}
	return cfg, nil
}
