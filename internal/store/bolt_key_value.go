package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var sessionBucket = []byte("session")

const boltOpenTimeout = time.Second

// BoltKeyValueStorage is a file-backed tier kept in a single bbolt bucket.
// Pointed at a per-login tmpfs it behaves like a browser session store:
// values survive restarts of the client but not a logout or reboot.
type BoltKeyValueStorage struct {
	db *bbolt.DB
}

// NewBoltKeyValueStorage opens (creating if needed) the bbolt file at path.
func NewBoltKeyValueStorage(path string) (*BoltKeyValueStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create session bucket: %w", err)
	}

	return &BoltKeyValueStorage{db: db}, nil
}

func (b *BoltKeyValueStorage) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	var value string
	err := b.view(func(bucket *bbolt.Bucket) error {
		raw := bucket.Get([]byte(key))
		if raw == nil {
			return ErrKeyNotFound
		}
		// raw is only valid inside the transaction
		value = string(raw)
		return nil
	})

	return value, err
}

func (b *BoltKeyValueStorage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	return b.update(func(bucket *bbolt.Bucket) error {
		return bucket.Put([]byte(key), []byte(value))
	})
}

func (b *BoltKeyValueStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	return b.update(func(bucket *bbolt.Bucket) error {
		return bucket.Delete([]byte(key))
	})
}

// Close releases the file lock.
func (b *BoltKeyValueStorage) Close() error {
	return b.db.Close()
}

func (b *BoltKeyValueStorage) view(fn func(bucket *bbolt.Bucket) error) error {
	err := b.db.View(func(tx *bbolt.Tx) error {
		return fn(tx.Bucket(sessionBucket))
	})
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return ErrStorageClosed
	}
	return err
}

func (b *BoltKeyValueStorage) update(fn func(bucket *bbolt.Bucket) error) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return fn(tx.Bucket(sessionBucket))
	})
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return ErrStorageClosed
	}
	return err
}
