package models

// VaultState is the lifecycle state of the API key vault.
type VaultState int

const (
	// VaultEmpty means no key is held in any tier.
	VaultEmpty VaultState = iota
	// VaultSessionOnly means a plaintext key lives in session storage only.
	VaultSessionOnly
	// VaultLockedEncrypted means an envelope exists in durable storage but
	// has not been decrypted during this session.
	VaultLockedEncrypted
	// VaultUnlocked means the envelope was decrypted (or just created) and
	// the plaintext key is held in memory.
	VaultUnlocked
)

// String implements fmt.Stringer.
func (s VaultState) String() string {
	switch s {
	case VaultEmpty:
		return "empty"
	case VaultSessionOnly:
		return "session_only"
	case VaultLockedEncrypted:
		return "locked_encrypted"
	case VaultUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// StorageMode selects the tier a newly submitted key is saved to.
type StorageMode string

const (
	// StorageSession keeps the plaintext key for the current session only.
	StorageSession StorageMode = "session"
	// StorageSecure encrypts the key with a passphrase and persists it.
	StorageSecure StorageMode = "secure"
)

// Valid reports whether m is one of the known storage modes.
func (m StorageMode) Valid() bool {
	return m == StorageSession || m == StorageSecure
}

// VaultStatus is a read-only snapshot of the vault for the UI.
type VaultStatus struct {
	State VaultState
	// HasEnvelope reports whether durable storage holds an envelope.
	HasEnvelope bool
	// HasSessionKey reports whether session storage holds a plaintext key.
	HasSessionKey bool
}

// HasStoredKey reports whether any tier currently holds a key.
func (s VaultStatus) HasStoredKey() bool {
	return s.HasEnvelope || s.HasSessionKey
}

// SaveKeyRequest is a user's request to store a new API key.
type SaveKeyRequest struct {
	APIKey     string
	Mode       StorageMode
	Passphrase string
}
