package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/migrations"
)

// Goose dialect names of the supported databases.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

// DB is a database handle together with everything needed to talk to that
// particular engine: its migration dialect, placeholder style and error
// classification.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the durable database named by dsn. URLs starting with
// postgres:// or postgresql:// select PostgreSQL, anything else is treated
// as a SQLite file path.
func NewConnect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case dsn == "":
		return nil, fmt.Errorf("%w: empty", ErrUnsupportedDSN)
	case isPostgresDSN(dsn):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.Contains(dsn, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn[:strings.Index(dsn, "://")])
	default:
		return NewConnectSQLite(ctx, dsn, log)
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose dialect of the connected engine.
func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
