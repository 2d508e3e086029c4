package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Places    PlacesConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	BaseURL         string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int
	MinConns    int
	AutoMigrate bool
}

// PlacesConfig holds Foursquare places search configuration
type PlacesConfig struct {
	BaseURL    string
	APIKey     string
	APIVersion string
	Timeout    time.Duration
}

// MailConfig holds outbound email configuration
type MailConfig struct {
	SendGridAPIKey string
	FromName       string
	FromAddress    string
	Timeout        time.Duration
}

// RateLimitConfig holds meeting-creation rate limit configuration
type RateLimitConfig struct {
	CreateMeetingMax    int
	CreateMeetingWindow time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			BaseURL:         strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			Name:        getEnv("DB_NAME", "middleground"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxConns:    getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:    getEnvAsInt("DB_MIN_CONNS", 5),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Places: PlacesConfig{
			BaseURL:    getEnv("FOURSQUARE_URL", "https://places-api.foursquare.com"),
			APIKey:     getEnv("FOURSQUARE_API_KEY", ""),
			APIVersion: getEnv("FOURSQUARE_API_VERSION", "2025-06-17"),
			Timeout:    getEnvAsDuration("FOURSQUARE_TIMEOUT", "10s"),
		},
		Mail: MailConfig{
			SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
			FromName:       getEnv("MAIL_FROM_NAME", "MiddleGround"),
			FromAddress:    getEnv("MAIL_FROM_ADDRESS", "no-reply@middleground.local"),
			Timeout:        getEnvAsDuration("MAIL_TIMEOUT", "10s"),
		},
		RateLimit: RateLimitConfig{
			CreateMeetingMax:    getEnvAsInt("CREATE_MEETING_MAX", 10),
			CreateMeetingWindow: getEnvAsDuration("CREATE_MEETING_WINDOW", "1m"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if c.Mail.SendGridAPIKey == "" {
		log.Printf("Warning: SENDGRID_API_KEY is not set; emails will only be logged")
	}
	if c.Places.APIKey == "" {
		log.Printf("Warning: FOURSQUARE_API_KEY is not set; venue suggestions will be empty")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: invalid value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: invalid value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		fallback, _ := time.ParseDuration(defaultValue)
		log.Printf("Warning: invalid duration for %s, using default %s", key, defaultValue)
		return fallback
	}
	return value
}
