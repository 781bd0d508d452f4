package crypto

import "github.com/MKhiriev/go-wise/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all client-side cryptography of the API key vault.
// It knows nothing about storage, networking or the vault lifecycle.
//
// Encryption flow:
//
//	Salt, IV  = GenerateSalt() + GenerateIV()
//	Key       = DeriveKey(passphrase, Salt)
//	Sealed    = Seal(Key, IV, apiKey)
//
// Decryption reverses it with the salt and IV carried in the [models.Envelope].
type KeyChainService interface {
	// GenerateSalt returns 16 fresh random bytes. The salt is not secret but
	// must be unique per encryption.
	GenerateSalt() ([]byte, error)

	// GenerateIV returns 12 fresh random bytes for a single Seal call.
	GenerateIV() ([]byte, error)

	// DeriveKey stretches passphrase with salt into a 256-bit AES key using
	// PBKDF2-HMAC-SHA256. Deterministic for the same inputs.
	DeriveKey(passphrase string, salt []byte) ([]byte, error)

	// Seal encrypts plaintext with AES-256-GCM under key and iv.
	Seal(key, iv, plaintext []byte) ([]byte, error)

	// Open decrypts and authenticates ciphertext. Any wrong key, wrong IV or
	// modified byte yields [ErrAuthentication].
	Open(key, iv, ciphertext []byte) ([]byte, error)
}

// EnvelopeSerializer converts envelopes to and from their stored text form.
type EnvelopeSerializer interface {
	// Pack Base64-encodes the three envelope fields into a flat JSON object.
	Pack(envelope models.Envelope) (string, error)

	// Unpack parses and validates stored text. Every failure wraps
	// [ErrFormat]; no cryptographic operation is performed.
	Unpack(text string) (models.Envelope, error)
}
