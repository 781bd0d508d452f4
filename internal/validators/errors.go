package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// Stored envelope schema. Reported under crypto.ErrFormat by the envelope
	// serializer.
	ErrMissingField       = errors.New("required field is missing")
	ErrInvalidBase64      = errors.New("field is not valid base64")
	ErrInvalidFieldLength = errors.New("field has invalid length")

	ErrEmptyAPIKey        = errors.New("API key cannot be empty")
	ErrInvalidStorageMode = errors.New("invalid storage mode")

	// ErrEmptyPassphrase is the single sentinel for a missing save passphrase.
	// It is returned both by the save request check and by
	// crypto.KeyChainService.DeriveKey.
	ErrEmptyPassphrase    = errors.New("passphrase is required for secure storage")
	ErrPassphraseTooShort = errors.New("passphrase is too short")

	// ErrEmptyUnlockPassword is returned for an empty passphrase on unlock,
	// before any key derivation runs.
	ErrEmptyUnlockPassword = errors.New("passphrase is required to decrypt the stored API key")
)
