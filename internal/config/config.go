package config

import (
	"fmt"
	"os"
)

// Default Mercado Pago identifiers used when the env does not override them.
// They match the values the provisioning command registers.
const (
	DefaultBaseURL         = "https://api.mercadopago.com"
	DefaultExternalStoreID = "ST001"
	DefaultExternalPOSID   = "POS002"
	DefaultSetupFile       = "mp_setup_result.json"
	DefaultPort            = "8080"
)

// Config holds all process-wide settings. It is loaded once at startup and
// never mutated afterwards; handlers receive what they need via constructors.
type Config struct {
	AccessToken     string // MP_ACCESS_TOKEN, required
	UserID          string // MP_USER_ID, required
	BaseURL         string // MP_BASE_URL
	ExternalStoreID string // MP_EXTERNAL_STORE_ID
	ExternalPOSID   string // MP_EXTERNAL_POS_ID
	SetupFile       string // MP_SETUP_FILE, path of the provisioning result
	Port            string // APP_PORT
}

// Load builds a Config from the environment. Credentials have no default:
// a missing access token or user id is a startup error, never papered over.
func Load() (*Config, error) {
	cfg := &Config{
		AccessToken:     os.Getenv("MP_ACCESS_TOKEN"),
		UserID:          os.Getenv("MP_USER_ID"),
		BaseURL:         getEnv("MP_BASE_URL", DefaultBaseURL),
		ExternalStoreID: getEnv("MP_EXTERNAL_STORE_ID", DefaultExternalStoreID),
		ExternalPOSID:   getEnv("MP_EXTERNAL_POS_ID", DefaultExternalPOSID),
		SetupFile:       getEnv("MP_SETUP_FILE", DefaultSetupFile),
		Port:            getEnv("APP_PORT", DefaultPort),
	}

	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("MP_ACCESS_TOKEN is required")
	}
	if cfg.UserID == "" {
		return nil, fmt.Errorf("MP_USER_ID is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
