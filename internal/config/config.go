package config

import (
	"os"
	"time"

	"auction-hub/utils"

	"github.com/joho/godotenv"
)

// Config holds the process configuration
type Config struct {
	Port          string
	DataDir       string
	SweepInterval time.Duration
}

// Load reads configuration from .env and the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Info("config: no .env file, using environment", nil)
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DataDir:       getEnv("DATA_DIR", "data"),
		SweepInterval: time.Second,
	}
	if raw := getEnv("SWEEP_INTERVAL", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			utils.Warn("config: invalid SWEEP_INTERVAL, using 1s", map[string]any{"value": raw})
		} else {
			cfg.SweepInterval = d
		}
	}
	return cfg
}

// getEnv returns an environment variable or the default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
