// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-wise/internal/validators"
	"github.com/MKhiriev/go-wise/models"
)

type envelopeSerializer struct {
	validator validators.Validator
}

// NewEnvelopeSerializer returns an [EnvelopeSerializer] that checks stored
// text against validator before decoding any field.
func NewEnvelopeSerializer(validator validators.Validator) EnvelopeSerializer {
	return &envelopeSerializer{validator: validator}
}

// Pack implements [EnvelopeSerializer].
func (s *envelopeSerializer) Pack(envelope models.Envelope) (string, error) {
	if len(envelope.Salt) == 0 || len(envelope.IV) == 0 || len(envelope.Ciphertext) == 0 {
		return "", fmt.Errorf("pack envelope: %w", validators.ErrMissingField)
	}

	payload, err := json.Marshal(models.StoredEnvelope{
		Salt:       EncodeBase64(envelope.Salt),
		IV:         EncodeBase64(envelope.IV),
		Ciphertext: EncodeBase64(envelope.Ciphertext),
	})
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}

	return string(payload), nil
}

// Unpack implements [EnvelopeSerializer].
func (s *envelopeSerializer) Unpack(text string) (models.Envelope, error) {
	stored, err := decodeStoredEnvelope(text)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	if err = s.validator.Validate(context.Background(), stored); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	// validated above, decoding cannot fail
	salt, _ := DecodeBase64(stored.Salt)
	iv, _ := DecodeBase64(stored.IV)
	ciphertext, _ := DecodeBase64(stored.Ciphertext)

	return models.Envelope{Salt: salt, IV: iv, Ciphertext: ciphertext}, nil
}

// decodeStoredEnvelope accepts exactly one JSON object. Field names are
// matched case-sensitively and may appear once. Unknown fields are ignored;
// trailing data, arrays and scalars are not.
func decodeStoredEnvelope(text string) (models.StoredEnvelope, error) {
	trimmed := bytes.TrimSpace([]byte(text))
	if len(trimmed) == 0 {
		return models.StoredEnvelope{}, errors.New("empty input")
	}
	if trimmed[0] != '{' {
		return models.StoredEnvelope{}, errors.New("not a JSON object")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return models.StoredEnvelope{}, fmt.Errorf("decode json: %w", err)
	}

	var stored models.StoredEnvelope
	fields := map[string]*string{
		"salt":       &stored.Salt,
		"iv":         &stored.IV,
		"ciphertext": &stored.Ciphertext,
	}
	seen := make(map[string]struct{}, len(fields))

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return models.StoredEnvelope{}, fmt.Errorf("decode json: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return models.StoredEnvelope{}, fmt.Errorf("unexpected token %v", tok)
		}
		if _, dup := seen[key]; dup {
			return models.StoredEnvelope{}, fmt.Errorf("duplicate field %q", key)
		}
		seen[key] = struct{}{}

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return models.StoredEnvelope{}, fmt.Errorf("decode field %q: %w", key, err)
		}

		dst, known := fields[key]
		if !known {
			continue
		}
		if len(raw) == 0 || raw[0] != '"' {
			return models.StoredEnvelope{}, fmt.Errorf("field %q is not a string", key)
		}
		if err = json.Unmarshal(raw, dst); err != nil {
			return models.StoredEnvelope{}, fmt.Errorf("decode field %q: %w", key, err)
		}
	}

	if _, err := dec.Token(); err != nil {
		return models.StoredEnvelope{}, fmt.Errorf("decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return models.StoredEnvelope{}, errors.New("unexpected data after JSON object")
	}

	return stored, nil
}
