// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-wise/models"
)

const (
	FieldSalt       = "salt"
	FieldIV         = "iv"
	FieldCiphertext = "ciphertext"

	FieldAPIKey      = "api_key"
	FieldStorageMode = "storage_mode"
	FieldPassphrase  = "passphrase"
)

// DefaultMinPassphraseLength is the minimum passphrase length for newly
// created secure saves.
const DefaultMinPassphraseLength = 8

// VaultValidator checks vault inputs: stored envelopes before any
// cryptographic call and save requests before any state change.
type VaultValidator struct {
	minPassphraseLength int
}

// NewVaultValidator returns a [Validator] for [models.StoredEnvelope],
// [models.SaveKeyRequest] and unlock passphrases (plain string). A
// non-positive minPassphraseLength falls back to
// [DefaultMinPassphraseLength].
func NewVaultValidator(minPassphraseLength int) Validator {
	if minPassphraseLength <= 0 {
		minPassphraseLength = DefaultMinPassphraseLength
	}
	return &VaultValidator{minPassphraseLength: minPassphraseLength}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StoredEnvelope:
		return v.validateStoredEnvelope(ctx, value, fields...)
	case *models.StoredEnvelope:
		return v.validateStoredEnvelope(ctx, *value, fields...)

	case models.SaveKeyRequest:
		return v.validateSaveKeyRequest(ctx, value, fields...)
	case *models.SaveKeyRequest:
		return v.validateSaveKeyRequest(ctx, *value, fields...)

	case string:
		// unlock passphrase: only presence is checked
		if value == "" {
			return ErrEmptyUnlockPassword
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateStoredEnvelope(_ context.Context, env models.StoredEnvelope, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSalt, FieldIV, FieldCiphertext}
	}

	for _, f := range fields {
		switch f {
		case FieldSalt:
			if err := checkBase64Field(FieldSalt, env.Salt, models.EnvelopeSaltSize); err != nil {
				return err
			}
		case FieldIV:
			if err := checkBase64Field(FieldIV, env.IV, models.EnvelopeIVSize); err != nil {
				return err
			}
		case FieldCiphertext:
			if err := checkBase64Field(FieldCiphertext, env.Ciphertext, 0); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateSaveKeyRequest(_ context.Context, req models.SaveKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAPIKey, FieldStorageMode, FieldPassphrase}
	}

	for _, f := range fields {
		switch f {
		case FieldAPIKey:
			if strings.TrimSpace(req.APIKey) == "" {
				return ErrEmptyAPIKey
			}
		case FieldStorageMode:
			if !req.Mode.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidStorageMode, req.Mode)
			}
		case FieldPassphrase:
			if req.Mode != models.StorageSecure {
				continue
			}
			if req.Passphrase == "" {
				return ErrEmptyPassphrase
			}
			if n := utf8.RuneCountInString(req.Passphrase); n < v.minPassphraseLength {
				return fmt.Errorf("%w: must be at least %d characters, got %d", ErrPassphraseTooShort, v.minPassphraseLength, n)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// checkBase64Field requires value to be present and valid standard Base64.
// A positive size additionally pins the decoded length.
func checkBase64Field(name, value string, size int) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, name)
	}

	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidBase64, name)
	}
	if size > 0 && len(decoded) != size {
		return fmt.Errorf("%w: %s is %d bytes, want %d", ErrInvalidFieldLength, name, len(decoded), size)
	}

	return nil
}
