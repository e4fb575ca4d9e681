// Package config loads the server configuration from YAML with sane
// defaults, so `parley serve` runs with no file at all.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	Addr    string        `yaml:"addr"`
	Store   StoreConfig   `yaml:"store"`
	NLU     NLUConfig     `yaml:"nlu"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig selects and configures the state store backend.
type StoreConfig struct {
	// Driver is one of "memory", "file" or "redis".
	Driver string      `yaml:"driver"`
	Path   string      `yaml:"path"` // file driver base directory
	Redis  RedisConfig `yaml:"redis"`
}

// RedisConfig configures the redis driver.
type RedisConfig struct {
	Addr     string   `yaml:"addr"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	Prefix   string   `yaml:"prefix"`
	TTL      Duration `yaml:"ttl"`
}

// Duration accepts YAML scalars like "30s" or "24h".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// NLUConfig selects and configures the recognizer.
type NLUConfig struct {
	// Driver is one of "rules" or "luis".
	Driver   string `yaml:"driver"`
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Addr: ":8978",
		Store: StoreConfig{
			Driver: "memory",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "parley:",
			},
		},
		NLU: NLUConfig{
			Driver: "rules",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case "memory", "file", "redis":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	switch c.NLU.Driver {
	case "rules":
	case "luis":
		if c.NLU.Endpoint == "" {
			return fmt.Errorf("nlu driver %q requires an endpoint", c.NLU.Driver)
		}
	default:
		return fmt.Errorf("unknown nlu driver %q", c.NLU.Driver)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	return nil
}

// SlogLevel maps the configured level onto slog's scale.
func (c LoggingConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
