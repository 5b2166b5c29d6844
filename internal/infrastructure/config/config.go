package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration values, loaded once at startup
// and passed explicitly into constructors.
type Config struct {
	AdminSecret     string
	AdminSecretHash string
	MongoURI        string
	MongoDBName     string
	RedisURL        string
	AppBaseURL      string
	Port            string
	AdminTokenTTL   time.Duration
	ListCacheTTL    time.Duration
}

// NewConfig creates a new Config instance, loading values from environment
// variables.
func NewConfig() *Config {
	return &Config{
		AdminSecret:     getEnv("ADMIN_SECRET", ""),
		AdminSecretHash: getEnv("ADMIN_SECRET_HASH", ""),
		MongoURI:        getEnv("MONGODB_URI", ""),
		MongoDBName:     getEnv("MONGODB_DB_NAME", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		AppBaseURL:      getEnv("APP_BASE_URL", "http://localhost:8080"),
		Port:            getEnv("PORT", "8080"),
		AdminTokenTTL:   time.Minute * time.Duration(getEnvAsInt("ADMIN_TOKEN_TTL_MINUTES", 60)),
		ListCacheTTL:    time.Minute * time.Duration(getEnvAsInt("LIST_CACHE_TTL_MINUTES", 5)),
	}
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a
// default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
