package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "wallets.json", cfg.WalletFile)
	assert.Equal(t, 10*time.Second, cfg.BalanceAttemptTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WALLET_FILE", "/tmp/keeper.json")
	t.Setenv("BALANCE_ATTEMPT_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/keeper.json", cfg.WalletFile)
	assert.Equal(t, 2*time.Second, cfg.BalanceAttemptTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "warn"}
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)

	bad := &Config{LogLevel: "shouting"}
	_, err = bad.NewLogger()
	assert.Error(t, err)
}
