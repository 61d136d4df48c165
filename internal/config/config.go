package config

import (
	"fmt"
	"os"
	"strconv"
)

// Identity provider selection.
const (
	AuthProviderNone       = "none"
	AuthProviderFirebase   = "firebase"
	AuthProviderAuthorizer = "authorizer"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// External identity provider. With AuthProviderNone the service runs on
	// the local-credential fallback path only.
	AuthProvider      string
	AuthzURL          string
	AuthzClientID     string
	FirebaseProjectID string

	// Content seeding
	ContentFile   string // optional external content bundle; empty uses the embedded one
	SeedDemoUsers bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DBType:            getEnv("DB_TYPE", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		AuthProvider:      getEnv("AUTH_PROVIDER", AuthProviderNone),
		AuthzURL:          getEnv("AUTHZ_URL", ""),
		AuthzClientID:     getEnv("AUTHZ_CLIENT_ID", ""),
		FirebaseProjectID: getEnv("FIREBASE_PROJECT_ID", ""),
		ContentFile:       getEnv("CONTENT_FILE", ""),
		SeedDemoUsers:     getEnvAsBool("SEED_DEMO_USERS", true),
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBType != "sqlite" && cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}

	switch cfg.AuthProvider {
	case AuthProviderNone:
	case AuthProviderAuthorizer:
		if cfg.AuthzURL == "" {
			return nil, fmt.Errorf("AUTHZ_URL is required when AUTH_PROVIDER=authorizer")
		}
		if cfg.AuthzClientID == "" {
			return nil, fmt.Errorf("AUTHZ_CLIENT_ID is required when AUTH_PROVIDER=authorizer")
		}
	case AuthProviderFirebase:
		if cfg.FirebaseProjectID == "" {
			return nil, fmt.Errorf("FIREBASE_PROJECT_ID is required when AUTH_PROVIDER=firebase")
		}
	default:
		return nil, fmt.Errorf("unsupported AUTH_PROVIDER: %s", cfg.AuthProvider)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
