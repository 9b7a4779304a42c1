// Package config loads tool configuration from defaults and environment
// variables, in that precedence order.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds every tunable of the narration maker.
type Config struct {
	// OutputDir is where the export command writes its files.
	OutputDir string `koanf:"output_dir" validate:"required"`
	// Format selects which serializations to write.
	Format string `koanf:"format"     validate:"oneof=csv xlsx both"`
	// Separator is the delimited-text field separator. Non-comma, so
	// synthesized prose with embedded commas survives.
	Separator string `koanf:"separator"  validate:"required,len=1,excludesall=0x2C"`
	LogLevel  string `koanf:"log_level"  validate:"oneof=debug info warn error"`
	LogJSON   bool   `koanf:"log_json"`
}

// Validate re-checks the struct tags. Callers that override fields after
// Load (e.g. from CLI flags) must validate again.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func Default() *Config {
	return &Config{
		OutputDir: ".",
		Format:    "both",
		Separator: "|",
		LogLevel:  "info",
	}
}
