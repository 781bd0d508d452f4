package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is a string key/value tier holding vault records.
// Implementations are safe for concurrent use.
type KeyValueStorage interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// ErrorClassificator decides whether a failed database call is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
