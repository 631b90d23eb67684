package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	DriverPostgres = "postgres"
	DriverFile     = "file"
)

// Config holds all application configuration
type Config struct {
	BotToken  string
	ChannelID string
	LogLevel  string

	StorageDriver  string
	DataDir        string
	MigrationsPath string
	Database       DatabaseConfig

	EventTimeout     time.Duration
	TransportTimeout time.Duration
	SessionTTL       time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:       os.Getenv("BOT_TOKEN"),
		ChannelID:      os.Getenv("CHANNEL_ID"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StorageDriver:  getEnv("STORAGE_DRIVER", DriverPostgres),
		DataDir:        getEnv("DATA_DIR", "data"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "quiethelp"),
			User:     getEnv("DB_USER", "quiethelp"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	var err error
	if cfg.EventTimeout, err = getDuration("EVENT_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.TransportTimeout, err = getDuration("TRANSPORT_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.ChannelID == "" {
		return nil, fmt.Errorf("CHANNEL_ID is required")
	}

	switch cfg.StorageDriver {
	case DriverPostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverFile:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverFile, cfg.StorageDriver)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, value)
	}
	return d, nil
}
