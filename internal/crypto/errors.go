package crypto

import "errors"

var (
	// ErrAuthentication is returned by Open when the authentication tag does
	// not verify: the passphrase is wrong or the data was modified.
	ErrAuthentication = errors.New("decryption failed: authentication error")

	// ErrFormat is returned by Unpack when stored text is not a well-formed
	// envelope.
	ErrFormat = errors.New("invalid encrypted data format")

	ErrInvalidSaltLength = errors.New("invalid salt length")
	ErrInvalidIVLength   = errors.New("invalid iv length")
	ErrInvalidKeyLength  = errors.New("invalid key length")
)
