package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	Server struct {
		Port    string
		GinMode string
	}

	JWT struct {
		Secret     string
		AccessTTL  time.Duration
		RefreshTTL time.Duration
	}

	Identity struct {
		Audience string
	}

	Directory struct {
		URL           string
		FallbackAllow bool
		Timeout       time.Duration
		CacheTTL      time.Duration
		CacheSize     int
	}

	CORS struct {
		FrontendURL  string
		AllowMethods string
		AllowHeaders string
	}
}

// Load loads configuration from environment variables
func Load() *Config {
	_ = godotenv.Load()

	config := &Config{}

	config.DB.Host = getEnv("DB_HOST", "localhost")
	config.DB.Port = getEnv("DB_PORT", "5432")
	config.DB.User = getEnv("DB_USER", "eventi")
	config.DB.Password = getEnv("DB_PASSWORD", "eventi_password")
	config.DB.Name = getEnv("DB_NAME", "eventi_db")
	config.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	config.Server.Port = getEnv("PORT", "8080")
	config.Server.GinMode = getEnv("GIN_MODE", "debug")

	config.JWT.Secret = getEnv("JWT_SECRET", "change-me-in-production")
	config.JWT.AccessTTL = time.Duration(getEnvAsInt64("JWT_ACCESS_TTL_MINUTES", 30)) * time.Minute
	config.JWT.RefreshTTL = time.Duration(getEnvAsInt64("JWT_REFRESH_TTL_HOURS", 168)) * time.Hour

	config.Identity.Audience = getEnv("IDENTITY_AUDIENCE", "")

	config.Directory.URL = getEnv("EMPLOYEE_DIRECTORY_URL", "http://localhost:9090")
	config.Directory.FallbackAllow = getEnvAsBool("EMPLOYEE_DIRECTORY_FALLBACK_ALLOW", false)
	config.Directory.Timeout = time.Duration(getEnvAsInt64("EMPLOYEE_DIRECTORY_TIMEOUT_SECONDS", 5)) * time.Second
	config.Directory.CacheTTL = time.Duration(getEnvAsInt64("EMPLOYEE_DIRECTORY_CACHE_TTL_MINUTES", 10)) * time.Minute
	config.Directory.CacheSize = int(getEnvAsInt64("EMPLOYEE_DIRECTORY_CACHE_SIZE", 10000))

	config.CORS.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")
	config.CORS.AllowMethods = getEnv("CORS_ALLOW_METHODS", "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS")
	config.CORS.AllowHeaders = getEnv("CORS_ALLOW_HEADERS", "Origin,Content-Length,Content-Type,Authorization")

	return config
}

// GetDatabaseURL returns the database connection URL
func (c *Config) GetDatabaseURL() string {
	return "postgres://" + c.DB.User + ":" + c.DB.Password + "@" + c.DB.Host + ":" + c.DB.Port + "/" + c.DB.Name + "?sslmode=" + c.DB.SSLMode
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 gets an environment variable as int64 or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
