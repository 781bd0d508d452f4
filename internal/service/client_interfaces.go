package service

import (
	"context"

	"github.com/MKhiriev/go-wise/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientVaultService manages the lifecycle of the user's analysis API key
// across the session tier, the durable tier and process memory.
//
// At most one mutation runs at a time: a SaveKey or Unlock issued while
// another one is in flight fails immediately with [ErrVaultBusy]. The slow
// key derivation honours ctx; a cancelled call returns ctx.Err() and leaves
// the vault untouched.
type ClientVaultService interface {
	// Restore rebuilds the in-memory state from storage at startup:
	// a session key wins and yields SessionOnly, an envelope alone yields
	// LockedEncrypted, nothing yields Empty.
	Restore(ctx context.Context) (models.VaultState, error)

	// SaveKey stores a new API key. In session mode the key goes to the
	// session tier and any envelope is erased. In secure mode the key is
	// encrypted with passphrase, the envelope is written to the durable tier,
	// the session tier is erased and the vault becomes Unlocked.
	SaveKey(ctx context.Context, apiKey string, mode models.StorageMode, passphrase string) error

	// Unlock decrypts the stored envelope with passphrase. Only valid in
	// LockedEncrypted. Returns the plaintext key.
	Unlock(ctx context.Context, passphrase string) (string, error)

	// Forget erases both tiers and the in-memory key.
	Forget(ctx context.Context) error

	// CurrentState returns the current vault state.
	CurrentState() models.VaultState

	// APIKey returns the usable plaintext key, [ErrVaultLocked] while an
	// envelope awaits its passphrase or [ErrNoAPIKey] when the vault is empty.
	APIKey() (string, error)

	// Status returns the state together with the tier presence flags.
	Status() models.VaultStatus
}

// APIKeyProvider hands out the plaintext API key for outgoing requests.
type APIKeyProvider interface {
	APIKey() (string, error)
}

// ClientAnalysisService submits documents to the analysis backend.
type ClientAnalysisService interface {
	// Analyze uploads the file or text in input together with the vault's API
	// key and returns the report. A failed analysis discards the previous
	// report.
	Analyze(ctx context.Context, input models.AnalysisInput) (models.AnalysisReport, error)

	// LastReport returns the most recent successful report, if any.
	LastReport() (models.AnalysisReport, bool)

	// CheckBackend pings the analysis backend.
	CheckBackend(ctx context.Context) (models.HealthResponse, error)
}
