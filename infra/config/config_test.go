package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.ListenAddr)
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
	assert.Equal(t, 20, cfg.SeedOrders)
	assert.Equal(t, int64(10), cfg.SeedMidPrice)
	assert.Equal(t, int64(3), cfg.SeedSpread)
	assert.Equal(t, 0.5, cfg.SeedBuyBias)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CLOB_LISTEN_ADDR", ":8080")
	t.Setenv("CLOB_SEED_ORDERS", "50")
	t.Setenv("CLOB_SEED_MID_PRICE", "250")
	t.Setenv("CLOB_SEED_BUY_BIAS", "0.75")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 50, cfg.SeedOrders)
	assert.Equal(t, int64(250), cfg.SeedMidPrice)
	assert.Equal(t, 0.75, cfg.SeedBuyBias)
}

func TestLoadRejectsGarbage(t *testing.T) {
	t.Setenv("CLOB_SEED_ORDERS", "plenty")

	_, err := Load()
	assert.Error(t, err)
}
