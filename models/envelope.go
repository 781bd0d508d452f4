package models

// Envelope is the persisted record of one encrypted API key.
//
// All three fields are raw bytes in memory and Base64 text on disk. The
// envelope is produced only by a successful encryption and consumed only by
// a decryption attempt.
type Envelope struct {
	// Salt is the 16-byte PBKDF2 salt, regenerated on every encryption.
	Salt []byte
	// IV is the 12-byte AES-GCM nonce, regenerated on every encryption.
	IV []byte
	// Ciphertext is the AES-GCM output including the authentication tag.
	Ciphertext []byte
}

// StoredEnvelope is the wire form of [Envelope]: a flat JSON object with
// Base64 (standard, padded) encoded fields.
type StoredEnvelope struct {
	Salt       string `json:"salt"`
	IV         string `json:"iv"`
	Ciphertext string `json:"ciphertext"`
}

// Fixed sizes of the random envelope components.
const (
	EnvelopeSaltSize = 16
	EnvelopeIVSize   = 12
)
