package store

import "errors"

// Sentinel errors returned by storage implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the key.
	ErrKeyNotFound = errors.New("key was not found")

	// ErrEmptyKey is returned when an operation is called with an empty key.
	ErrEmptyKey = errors.New("storage key is empty")

	// ErrStorageClosed is returned by a file-backed storage after Close.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrUnsupportedDSN is returned when the durable DSN names a database
	// the client has no driver for.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These wrap the driver error so the
// cause is still visible through [errors.Unwrap].
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
