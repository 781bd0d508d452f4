package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a missing API URL or a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates an unsafe vault policy, such as a
	// KDF iteration count below the accepted minimum.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidServerConfigs indicates invalid development server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
