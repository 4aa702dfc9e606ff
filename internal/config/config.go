// Package config loads the toonctl configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Stormrider66/toon/codec"
	"github.com/Stormrider66/toon/format"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the toonctl configuration.
type Config struct {
	Codec     codec.Options   `yaml:"codec"`
	Container ContainerConfig `yaml:"container"`
	Log       LogConfig       `yaml:"log"`
}

// ContainerConfig configures sealed container output.
type ContainerConfig struct {
	Compression string `yaml:"compression" validate:"oneof=none zstd s2 lz4"`
}

// LogConfig configures the CLI logger.
//
// When File is set, log lines go to that file with size-based rotation instead
// of stderr.
type LogConfig struct {
	Level      string `yaml:"level" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" validate:"oneof=console json"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB" validate:"gte=0"`
	MaxBackups int    `yaml:"maxBackups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"maxAgeDays" validate:"gte=0"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Codec: codec.DefaultOptions(),
		Container: ContainerConfig{
			Compression: "zstd",
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the result.
// Keys missing from the file keep their default values. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	c.Container.Compression = strings.ToLower(c.Container.Compression)
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: %v is not %s=%s", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param()))
			}

			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}

		return err
	}

	return nil
}

// CompressionType returns the parsed container compression.
func (c *Config) CompressionType() (format.CompressionType, error) {
	return format.ParseCompressionType(c.Container.Compression)
}
