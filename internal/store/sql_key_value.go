package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-wise/internal/logger"
)

const (
	keyValueTable = "key_values"
	keyColumn     = "storage_key"
	valueColumn   = "storage_value"

	upsertSuffix = "ON CONFLICT (" + keyColumn + ") DO UPDATE SET " +
		valueColumn + " = excluded." + valueColumn + ", updated_at = CURRENT_TIMESTAMP"

	maxRetries     = 3
	retryBaseDelay = 50 * time.Millisecond
)

type sqlKeyValueStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLKeyValueStorage returns the durable tier backed by the key_values
// table of db. The schema must already be migrated.
func NewSQLKeyValueStorage(db *DB, logger *logger.Logger) KeyValueStorage {
	return &sqlKeyValueStorage{
		db:     db,
		logger: logger,
	}
}

func (s *sqlKeyValueStorage) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	query, args, err := s.db.builder().
		Select(valueColumn).
		From(keyValueTable).
		Where(map[string]any{keyColumn: key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.withRetry(ctx, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqlKeyValueStorage.Get").Msg("error reading key")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqlKeyValueStorage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := s.db.builder().
		Insert(keyValueTable).
		Columns(keyColumn, valueColumn).
		Values(key, value).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		s.logger.Err(err).Str("func", "sqlKeyValueStorage.Set").Msg("error writing key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKeyValueStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := s.db.builder().
		Delete(keyValueTable).
		Where(map[string]any{keyColumn: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		s.logger.Err(err).Str("func", "sqlKeyValueStorage.Delete").Msg("error deleting key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// withRetry repeats fn with exponential backoff while the database reports
// a transient failure.
func (s *sqlKeyValueStorage) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && s.db.classify(err) == Retryable {
			s.logger.Warn().Err(err).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
