package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all startup configuration for the service. It is built once in
// main and passed by reference into the components that need it.
type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string
	RabbitMQURL string
}

// Load reads configuration from environment variables via Viper.
// JWT_SECRET and DATABASE_URL are mandatory; a missing value is a startup
// error, not something to paper over with a default secret.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", ":8080")
	viper.AutomaticEnv()

	cfg := &Config{
		AppPort:     viper.GetString("APP_PORT"),
		DatabaseURL: viper.GetString("DATABASE_URL"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	return cfg, nil
}
