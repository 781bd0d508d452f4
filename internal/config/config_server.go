package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view used by the development analysis
// backend.
type ServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// GetServerConfig builds and validates the development server config.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
	}

	return serverCfg, serverCfg.validate()
}
