package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	API      APIConfig
	Database DatabaseConfig
	Session  SessionConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// APIConfig holds the remote portfolio API configuration
type APIConfig struct {
	BaseURL string
}

// DatabaseConfig holds the session-store configuration
type DatabaseConfig struct {
	Path string
}

// SessionConfig holds session cookie and encryption configuration.
// Key is a base64-encoded fernet key; when empty an ephemeral key is
// generated at startup, invalidating sessions across restarts.
type SessionConfig struct {
	Key string
	TTL time.Duration
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	ttlHours, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "168"))
	if err != nil || ttlHours <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %q", os.Getenv("SESSION_TTL_HOURS"))
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8000/api/v1"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/alphadash.db"),
		},
		Session: SessionConfig{
			Key: getEnv("SESSION_KEY", ""),
			TTL: time.Duration(ttlHours) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
