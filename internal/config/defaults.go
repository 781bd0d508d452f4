package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultAdapterAddress        = "http://localhost:8000"
	DefaultAdapterRequestTimeout = 2 * time.Minute
	DefaultServerAddress         = "localhost:8000"
	DefaultServerRequestTimeout  = 30 * time.Second

	DefaultKDFIterations       = 250_000
	MinKDFIterations           = 100_000
	DefaultMinPassphraseLength = 8

	defaultAppDir = "go-wise"
	defaultDBFile = "wise.db"
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN()},
		},
		Vault: Vault{
			KDFIterations:       DefaultKDFIterations,
			MinPassphraseLength: DefaultMinPassphraseLength,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
	}
}

// defaultDSN places the SQLite file in the per-user config directory,
// falling back to the working directory.
func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return defaultDBFile
	}

	return filepath.Join(dir, defaultAppDir, defaultDBFile)
}
