// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/MKhiriev/go-wise/internal/validators"
	"github.com/MKhiriev/go-wise/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the PBKDF2 salt length in bytes.
	SaltSize = models.EnvelopeSaltSize
	// IVSize is the AES-GCM nonce length in bytes.
	IVSize = models.EnvelopeIVSize
	// KeySize is the derived AES-256 key length in bytes.
	KeySize = 32

	// DefaultIterations is the PBKDF2 iteration count used when none is
	// configured.
	DefaultIterations = 250_000
	// MinIterations is the lowest iteration count accepted for production use.
	MinIterations = 100_000
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	iterations int
	random     io.Reader
}

// Option tunes a [KeyChainService] at construction time.
type Option func(*keyChainService)

// WithIterations overrides the PBKDF2 iteration count. Values below one are
// ignored. The config layer enforces [MinIterations]; tests may go lower.
func WithIterations(n int) Option {
	return func(k *keyChainService) {
		if n > 0 {
			k.iterations = n
		}
	}
}

// WithRandom replaces the CSPRNG used for salts and IVs.
func WithRandom(r io.Reader) Option {
	return func(k *keyChainService) {
		if r != nil {
			k.random = r
		}
	}
}

// NewKeyChainService constructs a [KeyChainService] using PBKDF2-HMAC-SHA256
// with [DefaultIterations] and crypto/rand unless overridden.
func NewKeyChainService(opts ...Option) KeyChainService {
	k := &keyChainService{
		iterations: DefaultIterations,
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	return k.randomBytes(SaltSize)
}

// GenerateIV implements [KeyChainService].
func (k *keyChainService) GenerateIV() ([]byte, error) {
	return k.randomBytes(IVSize)
}

// DeriveKey implements [KeyChainService]. The result exists only in memory
// for the duration of one encrypt or decrypt call.
func (k *keyChainService) DeriveKey(passphrase string, salt []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, validators.ErrEmptyPassphrase
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSaltLength, len(salt), SaltSize)
	}

	return pbkdf2.Key([]byte(passphrase), salt, k.iterations, KeySize, sha256.New), nil
}

// Seal implements [KeyChainService].
func (k *keyChainService) Seal(key, iv, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, iv)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, iv, plaintext, nil), nil
}

// Open implements [KeyChainService]. A tag mismatch is the only way a wrong
// passphrase is detected; there is no separate verification step.
func (k *keyChainService) Open(key, iv, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key, iv)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrAuthentication)
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	return plaintext, nil
}

func (k *keyChainService) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(k.random, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

func newGCM(key, iv []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeyLength, len(key), KeySize)
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidIVLength, len(iv), IVSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
