// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-wise/internal/adapter"
	"github.com/MKhiriev/go-wise/internal/app"
	"github.com/MKhiriev/go-wise/internal/crypto"
	"github.com/MKhiriev/go-wise/internal/store"
	"github.com/MKhiriev/go-wise/internal/validators"
)

// UserMessage translates an error returned by the client services into the
// sentence shown to the user. Backend errors carrying a server-provided
// detail keep that detail.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return app.MsgCancelled

	// input validation
	case errors.Is(err, validators.ErrEmptyAPIKey):
		return app.MsgEmptyAPIKey
	case errors.Is(err, validators.ErrEmptyPassphrase):
		return app.MsgEmptyPassphraseForSave
	case errors.Is(err, validators.ErrPassphraseTooShort):
		return app.MsgPassphraseTooShort
	case errors.Is(err, validators.ErrEmptyUnlockPassword):
		return app.MsgEmptyPassphraseForUnlock
	case errors.Is(err, ErrValidation):
		return app.MsgInvalidInput

	// vault
	case errors.Is(err, crypto.ErrAuthentication):
		return app.MsgDecryptionFailed
	case errors.Is(err, crypto.ErrFormat):
		return app.MsgInvalidEncryptedData
	case errors.Is(err, ErrEncryptionFailed):
		return app.MsgEncryptionFailed
	case errors.Is(err, ErrVaultBusy):
		return app.MsgVaultBusy
	case errors.Is(err, ErrVaultLocked):
		return app.MsgVaultLocked
	case errors.Is(err, ErrNoAPIKey):
		return app.MsgNoAPIKey
	case errors.Is(err, ErrInvalidTransition):
		return app.MsgInvalidTransition
	case errors.Is(err, store.ErrStorageClosed), errors.Is(err, store.ErrExecutingQuery),
		errors.Is(err, store.ErrExecutingStatement), errors.Is(err, store.ErrBuildingSQLQuery):
		return app.MsgStorageFailed

	// analysis input
	case errors.Is(err, ErrNoInput):
		return app.MsgNoInput
	case errors.Is(err, ErrUnsupportedFileType):
		return app.MsgInvalidFileType
	case errors.Is(err, ErrFileTooLarge):
		return app.MsgFileTooLarge

	// backend
	case errors.Is(err, adapter.ErrInvalidResponse):
		return app.MsgInvalidResponse
	case errors.Is(err, adapter.ErrUnreachable):
		return app.MsgBackendUnreachable
	case errors.Is(err, adapter.ErrUnauthorized):
		if detail := extractDetail(err); detail != "" {
			return detail
		}
		return app.MsgAPIKeyRejected
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrUnsupportedMedia),
		errors.Is(err, adapter.ErrUnprocessable), errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrNotImplemented), errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrServiceUnavailable):
		if detail := extractDetail(err); detail != "" {
			return detail
		}
	}

	return app.MsgUnknownAnalysisError
}

// extractDetail extracts the server detail from a message of the form
// "bad request: <detail>".
func extractDetail(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return strings.TrimSpace(msg[idx+2:])
	}
	return ""
}
