// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// MaxFileSize bounds the configuration file size (64 KiB).
const MaxFileSize = 64 * 1024

// ErrInvalidConfig indicates a configuration that failed to parse or validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the engine configuration.
type Config struct {
	// DefaultClosedRange is the boundary policy of queries that do not pick
	// one explicitly: false extrapolates, true clamps.
	DefaultClosedRange bool `yaml:"default_closed_range"`

	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

// Log configures the slog logger built by NewLogger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Metrics configures the registry's Prometheus collectors.
type Metrics struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"required_if=Enabled true,omitempty,max=64,promname"`
}

// Default returns the built-in configuration: open range, info-level text
// logs, metrics enabled under the "lutgrid" namespace.
func Default() Config {
	return Config{
		DefaultClosedRange: false,
		Log:                Log{Level: "info", Format: "text"},
		Metrics:            Metrics{Enabled: true, Namespace: "lutgrid"},
	}
}

// configValidate is shared by every Validate call; validator caches struct
// metadata per instance.
var configValidate *validator.Validate

// promName matches Prometheus metric name components.
var promName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("promname", func(fl validator.FieldLevel) bool {
		return promName.MatchString(fl.Field().String())
	})
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Parse decodes YAML over Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	if info.Size() > MaxFileSize {
		return Config{}, fmt.Errorf("config.Load: %s is %d bytes, limit %d: %w", path, info.Size(), MaxFileSize, ErrInvalidConfig)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load %s: %w", path, err)
	}
	return cfg, nil
}
