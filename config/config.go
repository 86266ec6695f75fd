// Package config loads runtime configuration from the environment. The
// loaded Config is an explicit value: construct it once at startup and pass
// it into the component constructors.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Config contains all configuration parameters for the library's components.
type Config struct {
	WalletFile            string        `envconfig:"WALLET_FILE" default:"wallets.json"`
	BalanceAttemptTimeout time.Duration `envconfig:"BALANCE_ATTEMPT_TIMEOUT" default:"10s"`
	LogLevel              string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from a .env file (if present) and the process
// environment.
func Load() (*Config, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return cfg, nil
}

// NewLogger builds a production zap logger at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
