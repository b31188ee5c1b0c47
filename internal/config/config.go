// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Network  NetworkConfig
	Seed     SeedConfig
	Database *DatabaseConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `validate:"required"`
	Port string `validate:"required,numeric"`
}

// NetworkConfig bounds the in-memory network.
type NetworkConfig struct {
	MaxUsers                int `validate:"gt=0"`
	MaxFollowees            int `validate:"gt=0"`
	RecommendationCacheSize int `validate:"gt=0"`
}

// SeedConfig names an optional YAML fixture loaded at startup.
type SeedConfig struct {
	File string `validate:"omitempty,filepath"`
}

// DatabaseConfig contains PostgreSQL connection settings used for seeding.
type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	User     string `validate:"required"`
	Password string `validate:"required"`
	DBName   string `validate:"required"`
	SSLMode  string `validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first if present.
// Database settings are only read when DB_HOST is set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	serverHost, err := getRequiredEnv("SERVER_HOST")
	if err != nil {
		return nil, err
	}

	serverPort, err := getRequiredEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}

	maxUsers, err := getIntEnv("NETWORK_MAX_USERS", 100)
	if err != nil {
		return nil, err
	}

	maxFollowees, err := getIntEnv("NETWORK_MAX_FOLLOWEES", 10)
	if err != nil {
		return nil, err
	}

	cacheSize, err := getIntEnv("RECOMMENDATION_CACHE_SIZE", 128)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: serverHost,
			Port: serverPort,
		},
		Network: NetworkConfig{
			MaxUsers:                maxUsers,
			MaxFollowees:            maxFollowees,
			RecommendationCacheSize: cacheSize,
		},
		Seed: SeedConfig{
			File: os.Getenv("SEED_FILE"),
		},
	}

	if os.Getenv("DB_HOST") != "" {
		db, err := loadDatabase()
		if err != nil {
			return nil, err
		}
		cfg.Database = db
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadDatabase() (*DatabaseConfig, error) {
	keys := []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE"}
	values := make([]string, len(keys))
	for i, key := range keys {
		v, err := getRequiredEnv(key)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return &DatabaseConfig{
		Host:     values[0],
		Port:     values[1],
		User:     values[2],
		Password: values[3],
		DBName:   values[4],
		SSLMode:  values[5],
	}, nil
}

// DSN returns PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// getRequiredEnv reads required environment variable or returns error.
func getRequiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

// getIntEnv reads an integer environment variable, falling back to def when unset.
func getIntEnv(key string, def int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}
