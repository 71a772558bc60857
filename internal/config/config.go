package config

import (
	"errors"

	"github.com/spf13/viper"
)

type ServiceConfig struct {
	Port        string
	DatabaseDSN string
	IdentityURL string
	GinMode     string
}

// Load reads the service configuration from the environment. main loads a
// .env file first, so local dev and deployed env vars go through the same
// path. A missing DATABASE_DSN is fatal; everything else has a default.
func Load() (ServiceConfig, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("IDENTITY_SERVICE_URL", "http://localhost:4000")

	cfg := ServiceConfig{
		Port:        v.GetString("PORT"),
		DatabaseDSN: v.GetString("DATABASE_DSN"),
		IdentityURL: v.GetString("IDENTITY_SERVICE_URL"),
		GinMode:     v.GetString("GIN_MODE"),
	}
	if cfg.DatabaseDSN == "" {
		return ServiceConfig{}, errors.New("DATABASE_DSN is not set")
	}
	return cfg, nil
}
