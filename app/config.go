// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the settings for one run. Field tags give the keys used in
// TOML and YAML config files.
type Config struct {
	Image    string   `toml:"image" yaml:"image"`
	CanvasID string   `toml:"canvas_id" yaml:"canvas_id"`
	Width    int      `toml:"width" yaml:"width"`
	Height   int      `toml:"height" yaml:"height"`
	Output   string   `toml:"output" yaml:"output"`
	Timeout  Duration `toml:"timeout" yaml:"timeout"`
	Strict   bool     `toml:"strict" yaml:"strict"`
	Backend  string   `toml:"backend" yaml:"backend"`

	// RandomShapes, when positive, draws that many random primitives
	// underneath the image.
	RandomShapes int    `toml:"random_shapes" yaml:"random_shapes"`
	Seed         uint64 `toml:"seed" yaml:"seed"`
}

// Default values.
const (
	DefaultImage    = "images/lotus.jpeg"
	DefaultCanvasID = "canvas"
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultOutput   = "ggshapes.png"
	DefaultTimeout  = 30 * time.Second
	DefaultBackend  = "raster"
)

// DefaultConfig returns the configuration used when no file or flags
// override it.
func DefaultConfig() Config {
	return Config{
		Image:    DefaultImage,
		CanvasID: DefaultCanvasID,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Output:   DefaultOutput,
		Timeout:  Duration(DefaultTimeout),
		Strict:   true,
		Backend:  DefaultBackend,
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file on top of
// DefaultConfig. Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("app: read config: %w", err)
	}
	return ParseConfig(data, filepath.Ext(path))
}

// ParseConfig decodes data in the format named by ext on top of
// DefaultConfig.
func ParseConfig(data []byte, ext string) (Config, error) {
	cfg := DefaultConfig()

	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrConfigFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("app: parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.Image == "" {
		return ErrNoImage
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, c.Width, c.Height)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("app: negative timeout %s", c.Timeout)
	}
	if c.RandomShapes < 0 {
		return fmt.Errorf("app: negative random_shapes %d", c.RandomShapes)
	}
	return nil
}

// Duration is a time.Duration written as a Go duration string ("10s",
// "1m30s") in config files.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
