package store

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/migrations"
)

// DB bundles a connection pool with everything repositories need to speak
// its dialect: a squirrel statement builder with the right placeholder
// format and a classifier for constraint errors.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// newDB wraps conn for dialect, which must be one of the migrations dialects.
func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Dialect returns the name of the SQL dialect spoken by the pool.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the pool's dialect.
func (db *DB) Migrate() error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Str("dialect", db.dialect).Msg("failed to apply migrations")
		return fmt.Errorf("error applying migrations: %w", err)
	}
	db.logger.Info().Str("func", "DB.Migrate").Str("dialect", db.dialect).Msg("migrations applied")

	return nil
}
