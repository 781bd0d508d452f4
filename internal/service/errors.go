package service

import "errors"

var (
	// ErrValidation wraps a rejected user input. The validator error that
	// caused it is wrapped as well.
	ErrValidation = errors.New("validation failed")

	// ErrVaultBusy is returned when another vault mutation is in flight.
	ErrVaultBusy = errors.New("another vault operation is in progress")
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the current vault state.
	ErrInvalidTransition = errors.New("operation not allowed in current vault state")
	// ErrVaultLocked is returned when the key exists only as a locked
	// envelope.
	ErrVaultLocked = errors.New("API key is locked")
	// ErrEncryptionFailed wraps any failure while sealing a new key.
	ErrEncryptionFailed = errors.New("could not encrypt API key")
	// ErrNoAPIKey is returned when no API key has been saved.
	ErrNoAPIKey = errors.New("no API key saved")

	// ErrNoInput is returned when neither a file nor text was submitted.
	ErrNoInput = errors.New("no document or text provided")
	// ErrUnsupportedFileType is returned for files the backend cannot read.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrFileTooLarge is returned for files above the upload limit.
	ErrFileTooLarge = errors.New("file is too large")
)

// Development server errors.
var (
	// ErrVersionIsNotSpecified is returned when the server starts without a
	// build version.
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrMissingAPIKey       = errors.New("API key is missing or empty")
	ErrEmptyContent        = errors.New("extracted text content is empty")
	ErrDecodeFailed        = errors.New("failed to decode file as UTF-8")
	ErrUnsupportedDocument = errors.New("unsupported document type")
	ErrDocumentParse       = errors.New("failed to parse document")
)
