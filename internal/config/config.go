package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the example simulation
type Config struct {
	Sim SimConfig
}

// SimConfig holds simulation-specific configuration
type SimConfig struct {
	World    string
	Ticks    int
	Entities int
	Seed     int64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Sim: SimConfig{
			World:    getEnvOrDefault("SIM_WORLD", "overworld"),
			Ticks:    getEnvAsIntOrDefault("SIM_TICKS", 10),
			Entities: getEnvAsIntOrDefault("SIM_ENTITIES", 3),
			Seed:     int64(getEnvAsIntOrDefault("SIM_SEED", 1)),
		},
	}

	if cfg.Sim.Ticks <= 0 {
		return nil, fmt.Errorf("SIM_TICKS must be positive, got %d", cfg.Sim.Ticks)
	}
	if cfg.Sim.Entities <= 0 {
		return nil, fmt.Errorf("SIM_ENTITIES must be positive, got %d", cfg.Sim.Entities)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
