// Package sqlitestore implements store.Store on top of a local SQLite
// database (pure-Go modernc.org/sqlite driver).
//
// Each collection is one row of the collections table holding the JSON array
// of its records, so Save replaces a collection with a single upsert inside a
// transaction. The schema is created by embedded goose migrations on Open.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/scanbatch/internal/dbx"
	"github.com/dmitrijs2005/scanbatch/internal/migrations"
	"github.com/dmitrijs2005/scanbatch/internal/store"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Store is a SQLite-backed store.Store.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// RunMigrations applies the embedded migrations. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the database at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// single writer; also keeps ":memory:" databases on one connection
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return New(db), nil
}

// New wraps an already migrated database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load returns the records of collection, or an empty list if it was never saved.
func (s *Store) Load(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM collections WHERE name = ?`, collection).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %s: %w", collection, err)
	}

	records, err := store.DecodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", collection, err)
	}
	return records, nil
}

// Save replaces the whole collection in one transaction.
func (s *Store) Save(ctx context.Context, collection string, records []json.RawMessage) error {
	data, err := store.EncodeRecords(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO collections (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
		`, collection, data)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save collection %s: %w: %w", collection, store.ErrStorageWriteFailed, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
