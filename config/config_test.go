package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Cart)
	require.NotNil(t, cfg.Order)
	require.NotNil(t, cfg.Redis)
	require.NotNil(t, cfg.Metrics)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 24*time.Hour, cfg.Cart.TTL)
	assert.Equal(t, "cart", cfg.Cart.KeyPrefix)
	assert.Equal(t, "KES", cfg.Order.Currency)
	assert.Zero(t, cfg.Order.ShippingCents)
	assert.Zero(t, cfg.Order.TaxBasisPoints)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Cart:  &CartConfig{TTL: time.Hour, KeyPrefix: "c", MaxWriteRetries: 2},
		Order: &OrderConfig{Currency: "USD", ShippingCents: 500},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Cart.TTL)
	assert.Equal(t, "c", cfg.Cart.KeyPrefix)
	assert.Equal(t, 2, cfg.Cart.MaxWriteRetries)
	assert.Equal(t, "USD", cfg.Order.Currency)
	assert.Equal(t, int64(500), cfg.Order.ShippingCents)
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverride(t *testing.T) {
	t.Setenv("CART_KEYPREFIX", "shopcart")

	cfg, err := LoadWithEnv[Config]("config", ".")
	require.NoError(t, err)

	assert.Equal(t, "jewelshop", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Cart)
	assert.Equal(t, 24*time.Hour, cfg.Cart.TTL)
	assert.Equal(t, "shopcart", cfg.Cart.KeyPrefix)
}
