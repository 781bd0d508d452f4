// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-wise/internal/validators"
	"github.com/MKhiriev/go-wise/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSerializer() EnvelopeSerializer {
	return NewEnvelopeSerializer(validators.NewVaultValidator(validators.DefaultMinPassphraseLength))
}

func testEnvelope() models.Envelope {
	return models.Envelope{
		Salt:       bytes.Repeat([]byte{0x01}, SaltSize),
		IV:         bytes.Repeat([]byte{0x02}, IVSize),
		Ciphertext: []byte("ciphertext-with-tag"),
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	raw := []byte{0x00, 0xFF, 0x10, 0x80}

	decoded, err := DecodeBase64(EncodeBase64(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)

	// padded standard alphabet, same as btoa
	assert.Equal(t, "AP8QgA==", EncodeBase64(raw))

	_, err = DecodeBase64("not base64!")
	assert.Error(t, err)
}

func TestPack_ProducesFlatThreeFieldObject(t *testing.T) {
	s := newTestSerializer()

	text, err := s.Pack(testEnvelope())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &fields))
	assert.Len(t, fields, 3)
	assert.Equal(t, EncodeBase64(testEnvelope().Salt), fields["salt"])
	assert.Equal(t, EncodeBase64(testEnvelope().IV), fields["iv"])
	assert.Equal(t, EncodeBase64(testEnvelope().Ciphertext), fields["ciphertext"])
}

func TestPack_RejectsIncompleteEnvelope(t *testing.T) {
	s := newTestSerializer()

	env := testEnvelope()
	env.IV = nil

	_, err := s.Pack(env)
	assert.ErrorIs(t, err, validators.ErrMissingField)
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	s := newTestSerializer()

	text, err := s.Pack(testEnvelope())
	require.NoError(t, err)

	got, err := s.Unpack(text)
	require.NoError(t, err)
	assert.Equal(t, testEnvelope(), got)
}

func TestUnpack_AcceptsBrowserRecord(t *testing.T) {
	// browser-written record carrying an unknown field
	text := `{"salt":"AQEBAQEBAQEBAQEBAQEBAQ==","iv":"AgICAgICAgICAgIC","ciphertext":"Y2lwaGVy","version":1}`

	got, err := newTestSerializer().Unpack(text)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0x01}, SaltSize), got.Salt)
	assert.Equal(t, bytes.Repeat([]byte{0x02}, IVSize), got.IV)
	assert.Equal(t, []byte("cipher"), got.Ciphertext)
}

func TestUnpack_FormatErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cause error
	}{
		{name: "empty", input: ""},
		{name: "not json", input: "sk-plaintext-key"},
		{name: "json array", input: `["salt","iv","ciphertext"]`},
		{name: "json null", input: "null"},
		{name: "truncated json", input: `{"salt":"AQEBAQEBAQEBAQEBAQEBAQ==",`},
		{name: "trailing data", input: `{"salt":"a","iv":"b","ciphertext":"c"} {}`},
		{name: "wrong field type", input: `{"salt":1,"iv":"AgICAgICAgICAgIC","ciphertext":"Y2lwaGVy"}`},
		{
			name:  "missing iv",
			input: `{"salt":"AQEBAQEBAQEBAQEBAQEBAQ==","ciphertext":"Y2lwaGVy"}`,
			cause: validators.ErrMissingField,
		},
		{
			name:  "missing ciphertext",
			input: `{"salt":"AQEBAQEBAQEBAQEBAQEBAQ==","iv":"AgICAgICAgICAgIC"}`,
			cause: validators.ErrMissingField,
		},
		{
			name:  "field names in upper case",
			input: `{"SALT":"AQEBAQEBAQEBAQEBAQEBAQ==","IV":"AgICAgICAgICAgIC","Ciphertext":"Y2lwaGVy"}`,
			cause: validators.ErrMissingField,
		},
		{
			name:  "only ciphertext in mixed case",
			input: `{"salt":"AQEBAQEBAQEBAQEBAQEBAQ==","iv":"AgICAgICAgICAgIC","cipherText":"Y2lwaGVy"}`,
			cause: validators.ErrMissingField,
		},
		{name: "duplicate salt", input: `{"salt":"AQEBAQEBAQEBAQEBAQEBAQ==","salt":"AQEBAQEBAQEBAQEBAQEBAQ==","iv":"AgICAgICAgICAgIC","ciphertext":"Y2lwaGVy"}`},
		{name: "duplicate unknown field", input: `{"salt":"AQEBAQEBAQEBAQEBAQEBAQ==","iv":"AgICAgICAgICAgIC","ciphertext":"Y2lwaGVy","v":1,"v":2}`},
		{name: "null field", input: `{"salt":null,"iv":"AgICAgICAgICAgIC","ciphertext":"Y2lwaGVy"}`},
		{
			name:  "invalid base64",
			input: `{"salt":"AQEBAQEBAQEBAQEBAQEBAQ==","iv":"AgICAgICAgICAgIC","ciphertext":"***"}`,
			cause: validators.ErrInvalidBase64,
		},
		{
			name:  "short salt",
			input: `{"salt":"AQEB","iv":"AgICAgICAgICAgIC","ciphertext":"Y2lwaGVy"}`,
			cause: validators.ErrInvalidFieldLength,
		},
	}

	s := newTestSerializer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Unpack(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFormat)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
			assert.Equal(t, models.Envelope{}, got)
		})
	}
}
