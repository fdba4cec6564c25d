package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first when present; real process
// environment wins over .env entries.
//
// Recognized variables:
//
//	AUTH_API_URL         base URL of the auth service
//	USER_API_URL         base URL of the users service
//	MASTER_DATA_API_URL  base URL of the master-data service
//	ADMIN_PAGE_SIZE      default table page size
//	LOG_LEVEL            log level name
//	ADMIN_SESSION_FILE   path of the persisted session entry
func parseEnv(cfg *Config) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	if v := os.Getenv("AUTH_API_URL"); v != "" {
		cfg.AuthServiceURL = v
	}
	if v := os.Getenv("USER_API_URL"); v != "" {
		cfg.UserServiceURL = v
	}
	if v := os.Getenv("MASTER_DATA_API_URL"); v != "" {
		cfg.MasterDataServiceURL = v
	}
	if v := os.Getenv("ADMIN_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DefaultPageSize = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ADMIN_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
}
