package config

import (
	"os"
	"strconv"

	"taxidash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds the paths of the three input datasets. Each file is an
// independent resource: one being absent must not prevent the others from
// loading.
type DataConfig struct {
	CompaniesFile     string
	NeighborhoodsFile string
	DurationsFile     string
	TopN              int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Data: DataConfig{
			CompaniesFile:     getEnvOrDefault("COMPANIES_FILE", "data/moved_project_sql_result_01.csv"),
			NeighborhoodsFile: getEnvOrDefault("NEIGHBORHOODS_FILE", "data/moved_project_sql_result_04.csv"),
			DurationsFile:     getEnvOrDefault("DURATIONS_FILE", "data/moved_project_sql_result_07.csv"),
			TopN:              getEnvIntOrDefault("TOP_N", 10),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Data.TopN < 1 {
		return errors.ConfigInvalid("TOP_N must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
