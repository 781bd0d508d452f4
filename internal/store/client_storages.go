package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-wise/internal/config"
	"github.com/MKhiriev/go-wise/internal/logger"
)

// ClientStorages groups the two key tiers used by the vault.
type ClientStorages struct {
	// Durable survives restarts and holds only the encrypted envelope.
	Durable KeyValueStorage
	// Session holds the plaintext key for the lifetime of a login session
	// (bbolt on a runtime directory) or of the process (memory).
	Session KeyValueStorage

	closers []io.Closer
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the durable database named by cfg.DB.DSN (SQLite file or
//     PostgreSQL URL).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Opens the bbolt session file when cfg.Session.Path is set, otherwise
//     keeps session values in memory.
//
// The returned value must be closed with [ClientStorages.Close].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("durable storage connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &ClientStorages{
		Durable: NewSQLKeyValueStorage(db, logger),
		closers: []io.Closer{db},
	}

	if cfg.Session.Path == "" {
		logger.Debug().Msg("session storage kept in memory")
		storages.Session = NewMemoryKeyValueStorage()
		return storages, nil
	}

	session, err := NewBoltKeyValueStorage(cfg.Session.Path)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("session storage error: %w", err)
	}
	storages.Session = session
	storages.closers = append(storages.closers, session)

	return storages, nil
}

// Close releases database handles and file locks.
func (s *ClientStorages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil

	return errors.Join(errs...)
}
