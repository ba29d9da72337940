package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the markergen configuration. It is read from a YAML file when
// --config is given; command-line flags override individual fields.
type Config struct {
	Bits     int          `yaml:"bits" validate:"gte=0,lte=16,square"`
	Strategy string       `yaml:"strategy" validate:"oneof=linear canonical"`
	Limit    int          `yaml:"limit" validate:"gte=0"`
	LogLevel string       `yaml:"log_level" validate:"oneof=debug info warn error"`
	Filter   FilterConfig `yaml:"filter"`
	Render   RenderConfig `yaml:"render"`
}

// FilterConfig configures the optional region-count acceptance filter.
type FilterConfig struct {
	MinBlackRegions int `yaml:"min_black_regions" validate:"gte=0"`
	Connectivity    int `yaml:"connectivity" validate:"oneof=4 8"`
}

// RenderConfig configures page images written by the render command.
type RenderConfig struct {
	MarkerSize int    `yaml:"marker_size" validate:"gt=0"`
	Rows       int    `yaml:"rows" validate:"gt=0"`
	Cols       int    `yaml:"cols" validate:"gt=0"`
	Begin      int    `yaml:"begin" validate:"gte=0"`
	OutDir     string `yaml:"out_dir" validate:"required"`
	Format     string `yaml:"format" validate:"oneof=pgm png"`
}

// DefaultConfig mirrors the reference run: the 3×3 alphabet, 50-pixel
// markers on a 15×8 page.
func DefaultConfig() Config {
	return Config{
		Bits:     9,
		Strategy: "linear",
		LogLevel: "info",
		Filter: FilterConfig{
			Connectivity: 4,
		},
		Render: RenderConfig{
			MarkerSize: 50,
			Rows:       15,
			Cols:       8,
			OutDir:     ".",
			Format:     "pgm",
		},
	}
}

var configValidate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// bits must fill an n×n marker exactly
	_ = v.RegisterValidation("square", func(fl validator.FieldLevel) bool {
		n := int(fl.Field().Int())
		s := 0
		for (s+1)*(s+1) <= n {
			s++
		}

		return s*s == n
	})

	return v
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// LoadConfig reads path over DefaultConfig, so a file only needs the keys it
// changes. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}

	return cfg, nil
}

// WriteConfig writes cfg as YAML to path.
func WriteConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
