package services

import (
	"fmt"
	"log"

	"github.com/monastery360/datastore/internal/config"
	"github.com/monastery360/datastore/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status           string            `json:"status"`
	Database         string            `json:"database"`
	IdentityProvider string            `json:"identityProvider"`
	Details          map[string]string `json:"details,omitempty"`
	ErrorMessage     string            `json:"error,omitempty"`
}

// HealthCheck performs a comprehensive health check of the service
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
	} else {
		if err := sqlDB.Ping(); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
			log.Printf("Health check failed - database ping: %v", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	// Check identity provider connectivity. Local-credential deployments
	// have no external provider to reach.
	providerURL := ""
	switch cfg.AuthProvider {
	case config.AuthProviderAuthorizer:
		providerURL = cfg.AuthzURL
	case config.AuthProviderFirebase:
		providerURL = "https://identitytoolkit.googleapis.com"
	}

	if providerURL == "" {
		result.IdentityProvider = "local"
	} else if err := utils.PingIdentityProvider(providerURL); err != nil {
		result.Status = "unhealthy"
		result.IdentityProvider = "unreachable"
		result.Details["identity_provider_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("Identity provider ping failed: %v", err)
		} else {
			result.ErrorMessage += fmt.Sprintf("; Identity provider ping failed: %v", err)
		}
		log.Printf("Health check failed - identity provider ping: %v", err)
	} else {
		result.IdentityProvider = "ok"
		result.Details["identity_provider"] = cfg.AuthProvider
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
