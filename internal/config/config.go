package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the API server configuration.
type Config struct {
	Port          int    `env:"PORT" envDefault:"5000"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"./forestshield.db"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"devsecret"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"http://localhost:3000"`
}

// DashboardConfig holds the dashboard server configuration.
type DashboardConfig struct {
	Port       int    `env:"DASHBOARD_PORT" envDefault:"3000"`
	PredictURL string `env:"PREDICT_URL" envDefault:"http://127.0.0.1:8000/predecir"`
}

// Load reads configuration from the environment, with a .env file as fallback.
func Load() (*Config, error) {
	// A missing .env file is not an error; env vars win either way.
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// LoadDashboard reads the dashboard configuration from the environment.
func LoadDashboard() (*DashboardConfig, error) {
	_ = godotenv.Load()

	cfg := DashboardConfig{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
