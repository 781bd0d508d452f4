// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the merged [StructuredConfig] for values that are invalid
// regardless of which binary consumes them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Vault.KDFIterations < 0 || cfg.Vault.MinPassphraseLength < 0 {
		return ErrInvalidVaultConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("negative request timeout: %w", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("analysis API address must be an http(s) URL: %w", ErrInvalidAdapterConfigs)
	}

	if cfg.Vault.KDFIterations < MinKDFIterations {
		return fmt.Errorf("kdf iterations below %d: %w", MinKDFIterations, ErrInvalidVaultConfigs)
	}

	if cfg.Vault.MinPassphraseLength < 1 {
		return ErrInvalidVaultConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
