package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-wise/internal/adapter"
	"github.com/MKhiriev/go-wise/internal/app"
	"github.com/MKhiriev/go-wise/internal/crypto"
	"github.com/MKhiriev/go-wise/internal/store"
	"github.com/MKhiriev/go-wise/internal/validators"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "cancelled", err: context.Canceled, want: app.MsgCancelled},
		{name: "empty key", err: fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyAPIKey), want: app.MsgEmptyAPIKey},
		{name: "empty passphrase", err: fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyPassphrase), want: app.MsgEmptyPassphraseForSave},
		{name: "empty passphrase at key derivation", err: fmt.Errorf("error deriving key: %w", validators.ErrEmptyPassphrase), want: app.MsgEmptyPassphraseForSave},
		{name: "short passphrase", err: fmt.Errorf("%w: %w", ErrValidation, validators.ErrPassphraseTooShort), want: app.MsgPassphraseTooShort},
		{name: "empty unlock passphrase", err: fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyUnlockPassword), want: app.MsgEmptyPassphraseForUnlock},
		{name: "other validation", err: fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidStorageMode), want: app.MsgInvalidInput},
		{name: "authentication", err: crypto.ErrAuthentication, want: app.MsgDecryptionFailed},
		{name: "format", err: fmt.Errorf("%w: %w", crypto.ErrFormat, validators.ErrMissingField), want: app.MsgInvalidEncryptedData},
		{name: "encryption", err: fmt.Errorf("%w: error encrypting key", ErrEncryptionFailed), want: app.MsgEncryptionFailed},
		{name: "busy", err: ErrVaultBusy, want: app.MsgVaultBusy},
		{name: "locked", err: ErrVaultLocked, want: app.MsgVaultLocked},
		{name: "no key", err: ErrNoAPIKey, want: app.MsgNoAPIKey},
		{name: "transition", err: fmt.Errorf("%w: nothing to unlock", ErrInvalidTransition), want: app.MsgInvalidTransition},
		{name: "storage", err: fmt.Errorf("error writing durable storage: %w", store.ErrExecutingStatement), want: app.MsgStorageFailed},
		{name: "no input", err: ErrNoInput, want: app.MsgNoInput},
		{name: "file type", err: fmt.Errorf("%w: \".pdf\"", ErrUnsupportedFileType), want: app.MsgInvalidFileType},
		{name: "file size", err: ErrFileTooLarge, want: app.MsgFileTooLarge},
		{name: "invalid response", err: adapter.ErrInvalidResponse, want: app.MsgInvalidResponse},
		{name: "unreachable", err: fmt.Errorf("%w: connection refused", adapter.ErrUnreachable), want: app.MsgBackendUnreachable},
		{name: "rejected key with detail", err: fmt.Errorf("%w: %s", adapter.ErrUnauthorized, "Analysis failed due to an API key issue"), want: "Analysis failed due to an API key issue"},
		{name: "rejected key without detail", err: fmt.Errorf("%w: %s", adapter.ErrUnauthorized, ""), want: app.MsgAPIKeyRejected},
		{name: "server detail", err: fmt.Errorf("%w: %s", adapter.ErrUnprocessable, app.DetailEmptyContent), want: app.DetailEmptyContent},
		{name: "server without detail", err: fmt.Errorf("%w: %s", adapter.ErrInternalServerError, ""), want: app.MsgUnknownAnalysisError},
		{name: "unknown", err: errors.New("boom"), want: app.MsgUnknownAnalysisError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
