package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first if present;
// variables already set in the environment win over the file.
//
// Recognized variables:
//
//	SALONBOOK_DATABASE_DSN  — remote store DSN
//	SALONBOOK_SESSION_DB    — local session database path
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SALONBOOK_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("SALONBOOK_SESSION_DB"); v != "" {
		cfg.SessionDBPath = v
	}
}
