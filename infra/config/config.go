package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config collects everything the process reads from its environment.
type Config struct {
	ListenAddr string
	CORSOrigin string

	SeedOrders   int
	SeedMidPrice int64
	SeedSpread   int64
	SeedBuyBias  float64
}

func Load() (Config, error) {
	cfg := Config{}

	var err error
	if cfg.ListenAddr, err = getEnv("CLOB_LISTEN_ADDR", ":3000"); err != nil {
		return Config{}, err
	}
	if cfg.CORSOrigin, err = getEnv("CLOB_CORS_ORIGIN", "http://localhost:5173"); err != nil {
		return Config{}, err
	}
	if cfg.SeedOrders, err = getEnv("CLOB_SEED_ORDERS", 20); err != nil {
		return Config{}, err
	}
	if cfg.SeedMidPrice, err = getEnv("CLOB_SEED_MID_PRICE", int64(10)); err != nil {
		return Config{}, err
	}
	if cfg.SeedSpread, err = getEnv("CLOB_SEED_SPREAD", int64(3)); err != nil {
		return Config{}, err
	}
	if cfg.SeedBuyBias, err = getEnv("CLOB_SEED_BUY_BIAS", 0.5); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv[T any](key string, defaultValue T) (T, error) {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}

	var err error
	var parsed any

	switch any(defaultValue).(type) {
	case string:
		return any(v).(T), nil
	case int:
		parsed, err = strconv.Atoi(v)
	case int64:
		parsed, err = strconv.ParseInt(v, 10, 64)
	case float64:
		parsed, err = strconv.ParseFloat(v, 64)
	default:
		return defaultValue, fmt.Errorf("unsupported type for env var %s: %T", key, defaultValue)
	}

	if err != nil {
		return defaultValue, fmt.Errorf("failed to parse env %s as %T: %w", key, defaultValue, err)
	}
	return parsed.(T), nil
}
