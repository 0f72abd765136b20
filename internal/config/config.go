package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	App     AppConfig     `yaml:"app" toml:"app"`
	Storage StorageConfig `yaml:"storage" toml:"storage"`
	UI      UIConfig      `yaml:"ui" toml:"ui"`
	Bridge  BridgeConfig  `yaml:"bridge" toml:"bridge"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

type AppConfig struct {
	// Identifier names the per-user data directory, e.g. "com.pixdir.app".
	Identifier string `yaml:"identifier" toml:"identifier" validate:"required,excludesall=/\\"`
}

type StorageConfig struct {
	DataDir      string `yaml:"data_dir" toml:"data_dir"`
	ImageDirName string `yaml:"image_dir_name" toml:"image_dir_name" validate:"omitempty,excludesall=/\\"`
}

type UIConfig struct {
	Surface      string `yaml:"surface" toml:"surface"`
	ChangedEvent string `yaml:"changed_event" toml:"changed_event"`
}

type BridgeConfig struct {
	Addr           string   `yaml:"addr" toml:"addr" validate:"omitempty,hostname_port"`
	MaxConcurrent  int      `yaml:"max_concurrent" toml:"max_concurrent" validate:"gte=0"`
	SendBuffer     int      `yaml:"send_buffer" toml:"send_buffer" validate:"gte=0"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty" toml:"allowed_origins,omitempty"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" toml:"format" validate:"omitempty,oneof=text json logfmt"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{
		App: AppConfig{Identifier: "com.pixdir.app"},
	}
	cfg.applyDefaults()
	return cfg
}

// Validate checks struct tags and fills defaults for optional fields.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if c.Storage.ImageDirName == "" {
		c.Storage.ImageDirName = "images"
	}
	if c.UI.Surface == "" {
		c.UI.Surface = "main"
	}
	if c.UI.ChangedEvent == "" {
		c.UI.ChangedEvent = "directory-changed"
	}
	if c.Bridge.Addr == "" {
		c.Bridge.Addr = "127.0.0.1:7878"
	}
	if c.Bridge.MaxConcurrent == 0 {
		c.Bridge.MaxConcurrent = 8
	}
	if c.Bridge.SendBuffer == 0 {
		c.Bridge.SendBuffer = 16
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}
