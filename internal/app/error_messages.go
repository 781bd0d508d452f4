// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// terminal client and the development analysis server.
//
// Msg* constants are human-readable strings shown to the user in the
// client's error overlay. Detail* constants are the "detail" values written
// by the development server, matching what the real analysis backend says.
package app

// Client-side messages.
const (
	// MsgEmptyAPIKey is shown when the key field is blank on save.
	MsgEmptyAPIKey = "API Key cannot be empty."

	// MsgEmptyPassphraseForSave is shown when secure storage is selected
	// without a passphrase.
	MsgEmptyPassphraseForSave = "Passphrase cannot be empty for secure save."

	// MsgPassphraseTooShort is shown when a new passphrase is below the
	// configured minimum length.
	MsgPassphraseTooShort = "Passphrase is too short."

	// MsgEmptyPassphraseForUnlock is shown when unlock is submitted blank.
	MsgEmptyPassphraseForUnlock = "Passphrase is required to decrypt your stored API key."

	// MsgInvalidInput is shown for any other rejected input.
	MsgInvalidInput = "Invalid input. Please check the form and try again."

	// MsgDecryptionFailed is shown when the envelope does not authenticate.
	MsgDecryptionFailed = "Decryption failed. The passphrase may be incorrect or the data corrupted."

	// MsgInvalidEncryptedData is shown when the stored envelope is malformed.
	MsgInvalidEncryptedData = "Invalid encrypted data format."

	// MsgEncryptionFailed is shown when sealing a new key fails.
	MsgEncryptionFailed = "Could not encrypt API key. Please try again."

	// MsgVaultBusy is shown when a save or unlock is already running.
	MsgVaultBusy = "Another key operation is still running. Please wait."

	// MsgVaultLocked is shown when analysis is requested before unlock.
	MsgVaultLocked = "Your API key is locked. Enter your passphrase to unlock it."

	// MsgNoAPIKey is shown when analysis is requested with an empty vault.
	MsgNoAPIKey = "No API key saved. Please add your API key first."

	// MsgInvalidTransition is shown for an operation the vault state forbids.
	MsgInvalidTransition = "This action is not available right now."

	// MsgStorageFailed is shown when a storage tier cannot be read or written.
	MsgStorageFailed = "Could not access local key storage."

	// MsgNoInput is shown when analysis is submitted without file or text.
	MsgNoInput = "Please select a file or enter text to analyze."

	// MsgInvalidFileType is shown for unsupported document extensions.
	MsgInvalidFileType = "Invalid file type. Please select .txt, .md, or .docx"

	// MsgFileTooLarge is shown when a document exceeds the upload limit.
	MsgFileTooLarge = "File is too large."

	// MsgInvalidResponse is shown when the backend answers with no report.
	MsgInvalidResponse = "Invalid response format from server"

	// MsgBackendUnreachable is shown when the backend cannot be contacted.
	MsgBackendUnreachable = "Could not reach the analysis server."

	// MsgAPIKeyRejected is shown when the backend refuses the API key.
	MsgAPIKeyRejected = "The analysis server rejected your API key."

	// MsgCancelled is shown when the user aborts a running operation.
	MsgCancelled = "Operation cancelled."

	// MsgUnknownAnalysisError is the fallback for any other failure.
	MsgUnknownAnalysisError = "An unknown error occurred during analysis."
)

// Development server details.
const (
	DetailMissingAPIKey   = "API key is missing or empty."
	DetailEmptyContent    = "Extracted text content is empty."
	DetailDecodeFailed    = "Failed to decode file as UTF-8"
	DetailUnsupportedType = "Unsupported file type"
	DetailDocxDisabled    = ".docx processing is not enabled (python-docx library missing)"
	DetailMissingFile     = "Field 'file' is required."
	DetailInternalError   = "Internal server error processing file"
	DetailHealthy         = "WISE development backend is running"
)
