// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/go-wise/internal/crypto"
	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/internal/store"
	"github.com/MKhiriev/go-wise/internal/validators"
	"github.com/MKhiriev/go-wise/models"
)

// VaultOptions holds the vault policy knobs that are not dependencies.
type VaultOptions struct {
	// ClearOnFormatError erases a stored envelope that fails to parse on
	// unlock, moving the vault to Empty. The format error is still returned.
	ClearOnFormatError bool
}

type clientVaultService struct {
	durable    store.KeyValueStorage
	session    store.KeyValueStorage
	keychain   crypto.KeyChainService
	serializer crypto.EnvelopeSerializer
	validator  validators.Validator
	opts       VaultOptions

	// busy admits one mutation at a time
	busy *semaphore.Weighted

	mu            sync.RWMutex
	state         models.VaultState
	secret        *memguard.Enclave
	hasEnvelope   bool
	hasSessionKey bool

	logger *logger.Logger
}

// NewClientVaultService constructs an Empty vault. Call Restore once at
// startup to pick up keys saved by a previous run.
func NewClientVaultService(
	storages *store.ClientStorages,
	keychain crypto.KeyChainService,
	serializer crypto.EnvelopeSerializer,
	validator validators.Validator,
	opts VaultOptions,
	logger *logger.Logger,
) ClientVaultService {
	return &clientVaultService{
		durable:    storages.Durable,
		session:    storages.Session,
		keychain:   keychain,
		serializer: serializer,
		validator:  validator,
		opts:       opts,
		busy:       semaphore.NewWeighted(1),
		state:      models.VaultEmpty,
		logger:     logger,
	}
}

func (v *clientVaultService) Restore(ctx context.Context) (models.VaultState, error) {
	if err := v.busy.Acquire(ctx, 1); err != nil {
		return v.CurrentState(), err
	}
	defer v.busy.Release(1)

	sessionKey, err := v.get(ctx, v.session, store.SessionAPIKey)
	if err != nil {
		return v.CurrentState(), fmt.Errorf("error reading session storage: %w", err)
	}

	envelope, err := v.get(ctx, v.durable, store.DurableAPIKey)
	if err != nil {
		return v.CurrentState(), fmt.Errorf("error reading durable storage: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.hasSessionKey = sessionKey != ""
	v.hasEnvelope = envelope != ""

	switch {
	case v.hasSessionKey:
		v.setSecretLocked(sessionKey)
		v.transitionLocked(models.VaultSessionOnly, "restore")
	case v.hasEnvelope:
		v.secret = nil
		v.transitionLocked(models.VaultLockedEncrypted, "restore")
	default:
		v.secret = nil
		v.transitionLocked(models.VaultEmpty, "restore")
	}

	return v.state, nil
}

func (v *clientVaultService) SaveKey(ctx context.Context, apiKey string, mode models.StorageMode, passphrase string) (err error) {
	req := models.SaveKeyRequest{APIKey: apiKey, Mode: mode, Passphrase: passphrase}
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if !v.busy.TryAcquire(1) {
		return ErrVaultBusy
	}
	handedOff := false
	defer func() {
		if !handedOff {
			v.busy.Release(1)
		}
	}()

	if state := v.CurrentState(); state == models.VaultLockedEncrypted {
		return fmt.Errorf("%w: cannot save a new key while %s, unlock or forget first", ErrInvalidTransition, state)
	}

	if mode == models.StorageSession {
		return v.saveSession(ctx, apiKey)
	}

	var packed string
	packed, handedOff, err = offload(ctx, v.busy, func() (string, error) {
		return v.seal(apiKey, passphrase)
	})
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		return fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	return v.saveSecure(ctx, apiKey, packed)
}

// saveSession writes the session tier first and then drops the envelope.
// If dropping fails the session write is undone.
func (v *clientVaultService) saveSession(ctx context.Context, apiKey string) error {
	if err := v.session.Set(ctx, store.SessionAPIKey, apiKey); err != nil {
		return fmt.Errorf("error writing session storage: %w", err)
	}

	if err := v.durable.Delete(ctx, store.DurableAPIKey); err != nil {
		v.undo(ctx, v.session, store.SessionAPIKey, v.previousSessionKey())
		return fmt.Errorf("error erasing durable storage: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.hasSessionKey = true
	v.hasEnvelope = false
	v.setSecretLocked(apiKey)
	v.transitionLocked(models.VaultSessionOnly, "save session")

	return nil
}

// saveSecure writes the envelope and then drops the session key. If
// dropping fails the previous envelope is put back.
func (v *clientVaultService) saveSecure(ctx context.Context, apiKey, packed string) error {
	previous, err := v.get(ctx, v.durable, store.DurableAPIKey)
	if err != nil {
		return fmt.Errorf("error reading durable storage: %w", err)
	}

	if err := v.durable.Set(ctx, store.DurableAPIKey, packed); err != nil {
		return fmt.Errorf("error writing durable storage: %w", err)
	}

	if err := v.session.Delete(ctx, store.SessionAPIKey); err != nil {
		v.undo(ctx, v.durable, store.DurableAPIKey, previous)
		return fmt.Errorf("error erasing session storage: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.hasEnvelope = true
	v.hasSessionKey = false
	v.setSecretLocked(apiKey)
	v.transitionLocked(models.VaultUnlocked, "save secure")

	return nil
}

// seal runs the whole encryption pipeline. Nothing is written until every
// step has succeeded.
func (v *clientVaultService) seal(apiKey, passphrase string) (string, error) {
	salt, err := v.keychain.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	iv, err := v.keychain.GenerateIV()
	if err != nil {
		return "", fmt.Errorf("error generating iv: %w", err)
	}

	key, err := v.keychain.DeriveKey(passphrase, salt)
	if err != nil {
		return "", fmt.Errorf("error deriving key: %w", err)
	}
	defer memguard.WipeBytes(key)

	plaintext := []byte(apiKey)
	defer memguard.WipeBytes(plaintext)

	ciphertext, err := v.keychain.Seal(key, iv, plaintext)
	if err != nil {
		return "", fmt.Errorf("error encrypting key: %w", err)
	}

	packed, err := v.serializer.Pack(models.Envelope{Salt: salt, IV: iv, Ciphertext: ciphertext})
	if err != nil {
		return "", fmt.Errorf("error packing envelope: %w", err)
	}

	return packed, nil
}

func (v *clientVaultService) Unlock(ctx context.Context, passphrase string) (plaintext string, err error) {
	if err := v.validator.Validate(ctx, passphrase); err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if !v.busy.TryAcquire(1) {
		return "", ErrVaultBusy
	}
	handedOff := false
	defer func() {
		if !handedOff {
			v.busy.Release(1)
		}
	}()

	if state := v.CurrentState(); state != models.VaultLockedEncrypted {
		return "", fmt.Errorf("%w: nothing to unlock while %s", ErrInvalidTransition, state)
	}

	text, err := v.get(ctx, v.durable, store.DurableAPIKey)
	if err != nil {
		return "", fmt.Errorf("error reading durable storage: %w", err)
	}

	envelope, err := v.serializer.Unpack(text)
	if err != nil {
		v.logger.Warn().Err(err).Msg("stored envelope is malformed")
		return "", v.handleFormatError(ctx, err)
	}

	plaintext, handedOff, err = offload(ctx, v.busy, func() (string, error) {
		return v.open(envelope, passphrase)
	})
	if err != nil {
		if errors.Is(err, crypto.ErrAuthentication) {
			v.logger.Info().Msg("unlock rejected: authentication failed")
		}
		return "", err
	}

	if err := v.session.Set(ctx, store.SessionAPIKey, plaintext); err != nil {
		return "", fmt.Errorf("error writing session storage: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.hasSessionKey = true
	v.setSecretLocked(plaintext)
	v.transitionLocked(models.VaultUnlocked, "unlock")

	return plaintext, nil
}

func (v *clientVaultService) open(envelope models.Envelope, passphrase string) (string, error) {
	key, err := v.keychain.DeriveKey(passphrase, envelope.Salt)
	if err != nil {
		return "", fmt.Errorf("error deriving key: %w", err)
	}
	defer memguard.WipeBytes(key)

	plaintext, err := v.keychain.Open(key, envelope.IV, envelope.Ciphertext)
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(plaintext)

	return string(plaintext), nil
}

// handleFormatError applies the configured policy for a corrupted envelope
// and returns the error to surface.
func (v *clientVaultService) handleFormatError(ctx context.Context, formatErr error) error {
	if !errors.Is(formatErr, crypto.ErrFormat) {
		formatErr = fmt.Errorf("%w: %w", crypto.ErrFormat, formatErr)
	}

	if !v.opts.ClearOnFormatError {
		return formatErr
	}

	if err := v.durable.Delete(ctx, store.DurableAPIKey); err != nil {
		return errors.Join(formatErr, fmt.Errorf("error erasing durable storage: %w", err))
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.hasEnvelope = false
	v.secret = nil
	v.transitionLocked(models.VaultEmpty, "clear malformed envelope")

	return formatErr
}

func (v *clientVaultService) Forget(ctx context.Context) error {
	if err := v.busy.Acquire(ctx, 1); err != nil {
		return err
	}
	defer v.busy.Release(1)

	sessionErr := v.session.Delete(ctx, store.SessionAPIKey)
	durableErr := v.durable.Delete(ctx, store.DurableAPIKey)

	v.mu.Lock()
	defer v.mu.Unlock()

	// the in-memory key goes regardless of storage failures
	v.secret = nil
	if sessionErr == nil {
		v.hasSessionKey = false
	}
	if durableErr == nil {
		v.hasEnvelope = false
	}

	if err := errors.Join(sessionErr, durableErr); err != nil {
		// fall back to whatever storage still holds
		switch {
		case v.hasEnvelope:
			v.transitionLocked(models.VaultLockedEncrypted, "forget (partial)")
		default:
			v.transitionLocked(models.VaultEmpty, "forget (partial)")
		}
		return fmt.Errorf("error erasing stored key: %w", err)
	}

	v.transitionLocked(models.VaultEmpty, "forget")
	return nil
}

func (v *clientVaultService) CurrentState() models.VaultState {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.state
}

func (v *clientVaultService) APIKey() (string, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	switch v.state {
	case models.VaultLockedEncrypted:
		return "", ErrVaultLocked
	case models.VaultEmpty:
		return "", ErrNoAPIKey
	}

	if v.secret == nil {
		return "", ErrNoAPIKey
	}

	buf, err := v.secret.Open()
	if err != nil {
		return "", fmt.Errorf("error opening key enclave: %w", err)
	}
	defer buf.Destroy()

	// copy out of guarded memory before it is destroyed
	return string(buf.Bytes()), nil
}

func (v *clientVaultService) Status() models.VaultStatus {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return models.VaultStatus{
		State:         v.state,
		HasEnvelope:   v.hasEnvelope,
		HasSessionKey: v.hasSessionKey,
	}
}

// get reads key treating an absent record as an empty value.
func (v *clientVaultService) get(ctx context.Context, tier store.KeyValueStorage, key string) (string, error) {
	value, err := tier.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return "", nil
	}
	return value, err
}

// undo restores key to previous (deleting it when previous is empty). It is
// best effort; failures are only logged.
func (v *clientVaultService) undo(ctx context.Context, tier store.KeyValueStorage, key, previous string) {
	var err error
	if previous == "" {
		err = tier.Delete(ctx, key)
	} else {
		err = tier.Set(ctx, key, previous)
	}
	if err != nil {
		v.logger.Err(err).Str("key", key).Msg("failed to roll back storage write")
	}
}

// previousSessionKey returns the session key held before the current save.
func (v *clientVaultService) previousSessionKey() string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if !v.hasSessionKey || v.secret == nil {
		return ""
	}

	buf, err := v.secret.Open()
	if err != nil {
		return ""
	}
	defer buf.Destroy()

	return string(buf.Bytes())
}

func (v *clientVaultService) setSecretLocked(apiKey string) {
	// NewEnclave wipes its argument, so hand it a private copy
	v.secret = memguard.NewEnclave([]byte(apiKey))
}

func (v *clientVaultService) transitionLocked(to models.VaultState, reason string) {
	if v.state != to {
		v.logger.Info().
			Str("from", v.state.String()).
			Str("to", to.String()).
			Str("reason", reason).
			Msg("vault state changed")
	}
	v.state = to
}
