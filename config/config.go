// Package config reads the CLI settings from the environment
package config

import (
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/minaorangina/splendor/protocol"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Config struct {
	Players int `env:"SPLENDOR_PLAYERS,default=2"`
	// CatalogPath is a card file; the bundled catalog is used when empty
	CatalogPath string `env:"SPLENDOR_CATALOG"`
	// Seed fixes the shuffle. Zero seeds from the clock.
	Seed     uint64 `env:"SPLENDOR_SEED,default=0"`
	LogLevel string `env:"SPLENDOR_LOG_LEVEL,default=info"`
	Dev      bool   `env:"SPLENDOR_DEV,default=false"`
}

// FromEnv decodes and validates the configuration
func FromEnv() (Config, error) {
	var c Config
	if err := envdecode.StrictDecode(&c); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs error
	if c.Players < 2 || c.Players > 4 {
		errs = multierr.Append(errs, protocol.Errorf(protocol.InvalidArgument,
			"SPLENDOR_PLAYERS must be between 2 and 4, got %d", c.Players))
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		errs = multierr.Append(errs, protocol.Errorf(protocol.InvalidArgument,
			"SPLENDOR_LOG_LEVEL: %v", err))
	}
	return errs
}

// Logger builds a JSON logger, or a console one in dev mode. Both write to stderr.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.Dev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// Exitf writes a formatted error message to stderr and exits with code 1
func Exitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
