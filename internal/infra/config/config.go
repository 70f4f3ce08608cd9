// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Playback PlaybackConfig `yaml:"playback"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Storage  StorageConfig  `yaml:"storage"`
	Messages MessagesConfig `yaml:"messages"`
}

// ServerConfig represents server configuration.
type ServerConfig struct {
	Addr  string      `yaml:"addr" default:":8080"`
	Hooks HooksConfig `yaml:"hooks"`
}

// HooksConfig represents lifecycle hooks configuration.
type HooksConfig struct {
	OnStarted []string `yaml:"on_started"`
	OnStopped []string `yaml:"on_stopped"`
}

// PlaybackConfig represents playback control configuration.
type PlaybackConfig struct {
	TickIntervalMs int `yaml:"tick_interval_ms" default:"1000" validate:"gte=1,lte=60000"`
	EventBuffer    int `yaml:"event_buffer" default:"64" validate:"gte=1,lte=65536"`
}

// CatalogConfig represents track catalog configuration.
type CatalogConfig struct {
	RadioSize int            `yaml:"radio_size" default:"5" validate:"gte=1"`
	Sources   []SourceConfig `yaml:"sources" validate:"required,min=1,dive"`
}

// SourceConfig represents a single catalog source.
type SourceConfig struct {
	Type        string         `yaml:"type" validate:"required,oneof=builtin file"`
	DisplayName string         `yaml:"display_name"`
	Settings    map[string]any `yaml:"settings"`
}

// StorageConfig represents the key-value store backing the library.
type StorageConfig struct {
	Type     string         `yaml:"type" default:"memory" validate:"oneof=memory redis"`
	Settings map[string]any `yaml:"settings"`
}

// MessagesConfig represents user-facing messages.
type MessagesConfig struct {
	Downloaded        string `yaml:"downloaded" default:"Downloaded to library"`
	AlreadyDownloaded string `yaml:"already_downloaded" default:"Already downloaded"`
	RadioStarted      string `yaml:"radio_started" default:"Started radio for %s"`
	LinkCopied        string `yaml:"link_copied" default:"Link copied to clipboard"`
	DefaultError      string `yaml:"default_error" default:"Something went wrong"`
}

// Default returns a configuration with every default applied and the
// built-in catalog as the only source.
func Default() (*Config, error) {
	var cfg Config
	cfg.applyFallbacks()
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	return &cfg, nil
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values for sensitive fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	// Override with environment variables
	cfg.overrideFromEnv()
	cfg.applyFallbacks()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("SOUNDWAVE_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("SOUNDWAVE_REDIS_PASSWORD"); v != "" {
		if c.Storage.Settings == nil {
			c.Storage.Settings = make(map[string]any)
		}
		c.Storage.Settings["password"] = v
	}
}

// applyFallbacks fills in values creasty/defaults cannot express.
func (c *Config) applyFallbacks() {
	if len(c.Catalog.Sources) == 0 {
		c.Catalog.Sources = []SourceConfig{{Type: "builtin", DisplayName: "SoundWave"}}
	}
}

// TickInterval returns the playback tick interval.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Playback.TickIntervalMs) * time.Millisecond
}

// GetMessage returns the message for the given code.
func (c *Config) GetMessage(code string) string {
	switch code {
	case "downloaded":
		return c.Messages.Downloaded
	case "already_downloaded":
		return c.Messages.AlreadyDownloaded
	case "radio_started":
		return c.Messages.RadioStarted
	case "link_copied":
		return c.Messages.LinkCopied
	default:
		return c.Messages.DefaultError
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}
