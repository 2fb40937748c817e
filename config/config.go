// Package config provides environment based configuration for the agentsim
// server binary.
package config

import (
	"os"
	"strconv"
)

// Config holds the server configuration.
type Config struct {
	// Server settings
	Port int

	// Profile selects the deployment content: aws, gcp or azure.
	Profile string

	// Session storage
	SessionBackend string // memory or sqlite
	SQLiteDSN      string
	MaxTurns       int // 0 keeps history unbounded

	// Logging
	LogLevel  string
	LogFormat string // json or text
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:           getEnvInt("PORT", 8080),
		Profile:        getEnv("AGENT_PROFILE", "aws"),
		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		SQLiteDSN:      getEnv("SQLITE_DSN", "file:agentsim.db?cache=shared&mode=rwc"),
		MaxTurns:       getEnvInt("MAX_TURNS", 0),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
