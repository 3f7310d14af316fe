// Package config loads server configuration from environment variables.
package config

import "time"

// Config holds everything the server needs to start.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DBPath is the SQLite database file. Parent directories are
	// created on startup.
	DBPath string

	// ExportDir is where exported spreadsheets are written.
	ExportDir string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load reads the configuration, falling back to local-development
// defaults for anything unset.
func Load() *Config {
	return &Config{
		Addr:         getEnvAsString("ADDR", ":8080"),
		DBPath:       getEnvAsString("DB_PATH", "./data/ledgerbook.db"),
		ExportDir:    getEnvAsString("EXPORT_DIR", "./data/exports"),
		ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
	}
}
