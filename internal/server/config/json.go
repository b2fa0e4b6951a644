package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/drivenpass/internal/flagx"
	"github.com/dmitrijs2005/drivenpass/internal/timex"
)

// JSONConfig mirrors Config for JSON unmarshalling. It uses timex.Duration
// for the token lifetime, which allows both string values such as "72h" and
// integer nanoseconds.
type JSONConfig struct {
	Address               string         `json:"address"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	EncryptionSecret      string         `json:"encryption_secret"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
}

// parseJSON loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. Only fields present in
// the file override the current values. An unreadable or invalid file panics:
// a broken explicit config is a startup bug, not a runtime condition.
func parseJSON(config *Config) {
	path := flagx.JSONConfigPath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JSONConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Address != "" {
		config.Address = c.Address
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.EncryptionSecret != "" {
		config.EncryptionSecret = c.EncryptionSecret
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
}
