package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays values from the process environment onto config.
// Variables that are not set leave the current values untouched.
//
// Recognized variables: ADDRESS, DATABASE_DSN, SECRET_KEY,
// ENCRYPTION_SECRET, TOKEN_VALIDITY (Go duration string, e.g. "72h").
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
