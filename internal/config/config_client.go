package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the analysis API base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains durable storage connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite/PostgreSQL connection string used by the client.
	DSN string
}

// ClientSession contains session storage settings.
type ClientSession struct {
	// Path is the bbolt file path; empty selects in-memory storage.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB      ClientDB
	Session ClientSession
}

// ClientVault holds the key vault policy.
type ClientVault struct {
	KDFIterations       int
	MinPassphraseLength int
	ClearOnFormatError  bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Vault   ClientVault
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:      ClientDB{DSN: cfg.Storage.DB.DSN},
			Session: ClientSession{Path: cfg.Storage.Session.Path},
		},
		Vault: ClientVault{
			KDFIterations:       cfg.Vault.KDFIterations,
			MinPassphraseLength: cfg.Vault.MinPassphraseLength,
			ClearOnFormatError:  cfg.Vault.ClearOnFormatError,
		},
	}
}
