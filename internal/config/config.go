package config

import "os"

// Config holds all configuration for the application
type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string
	ModeratorKey string
}

// Load returns the application configuration
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "civicboard.db"),
		JWTSecret:    getEnv("JWT_SECRET", "your-secret-key"),
		ModeratorKey: getEnv("MODERATOR_KEY", "moderator123"),
	}
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
