package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ConnectionModePooled     = "pooled"
	ConnectionModePerRequest = "per_request"
)

type Config struct {
	ServerPort             string
	Environment            string
	DocumentStoreURL       string
	StoreDatabase          string
	StoreConnectionMode    string
	StoreConnectTimeout    time.Duration
	VerifyContentSignature bool
	MaxRequestBody         string
}

// Load reads .env (when present) and the process environment. A missing
// document store connection string is an error.
func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:             getEnv("SERVER_PORT", "8080"),
		Environment:            getEnv("ENVIRONMENT", "development"),
		DocumentStoreURL:       getEnv("DOCUMENT_STORE_URL", getEnv("MONGODB_CONNECTION_STRING", "")),
		StoreDatabase:          getEnv("STORE_DATABASE", "game_assets"),
		StoreConnectionMode:    strings.ToLower(getEnv("STORE_CONNECTION_MODE", ConnectionModePooled)),
		StoreConnectTimeout:    time.Duration(getEnvAsInt64("STORE_CONNECT_TIMEOUT", 10)) * time.Second,
		VerifyContentSignature: getEnvAsBool("VERIFY_CONTENT_SIGNATURE", false),
		MaxRequestBody:         getEnv("MAX_REQUEST_BODY", "8M"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DocumentStoreURL) == "" {
		return fmt.Errorf("DOCUMENT_STORE_URL (or MONGODB_CONNECTION_STRING) must be set")
	}

	switch c.StoreConnectionMode {
	case ConnectionModePooled, ConnectionModePerRequest:
	default:
		return fmt.Errorf("STORE_CONNECTION_MODE must be %q or %q, got %q",
			ConnectionModePooled, ConnectionModePerRequest, c.StoreConnectionMode)
	}

	if c.StoreConnectTimeout <= 0 {
		return fmt.Errorf("STORE_CONNECT_TIMEOUT must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}
