// Package config loads name-base settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreMemDB  = "memdb"

	FormatText = "text"
	FormatYAML = "yaml"
)

var (
	ErrParsingConfig = errors.New("failed to parse config")
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds the settings that flags can override.
type Config struct {
	Decimal        bool   `env:"NAMEBASE_DECIMAL" envDefault:"false"`
	Workers        int    `env:"NAMEBASE_WORKERS" envDefault:"4"`
	LogLevel       string `env:"NAMEBASE_LOG_LEVEL" envDefault:"warn"`
	LogDevelopment bool   `env:"NAMEBASE_LOG_DEVELOPMENT" envDefault:"false"`
	Store          string `env:"NAMEBASE_STORE" envDefault:"memory"`
	StoreShards    int    `env:"NAMEBASE_STORE_SHARDS" envDefault:"16"`
	NameCache      int64  `env:"NAMEBASE_NAME_CACHE" envDefault:"4096"`
	Format         string `env:"NAMEBASE_FORMAT" envDefault:"text"`
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, cfg.Validate()
}

// LoadFrom parses cfg from the given variables only.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	case c.StoreShards <= 0:
		return fmt.Errorf("%w: store shards must be positive, got %d", ErrInvalidConfig, c.StoreShards)
	case c.NameCache < 0:
		return fmt.Errorf("%w: name cache cannot be negative, got %d", ErrInvalidConfig, c.NameCache)
	case c.Store != StoreMemory && c.Store != StoreMemDB:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, c.Store)
	case c.Format != FormatText && c.Format != FormatYAML:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	return nil
}

// Base is the numeral base of command-line arguments.
func (c Config) Base() int {
	if c.Decimal {
		return 10
	}
	return 6
}
