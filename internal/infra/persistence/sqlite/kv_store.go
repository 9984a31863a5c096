package sqlite

import (
	"context"
	"database/sql"
	"errors"

	pkgerrors "github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"example.com/storefront/internal/infra/persistence/kv"
)

type KVStore struct {
	db *sql.DB
}

// Open opens (or creates) the database file at path. A single connection is
// kept so that writes are serialized by the driver.
func Open(ctx context.Context, path string) (*KVStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "sqlite open")
	}
	db.SetMaxOpenConns(1)

	s := &KVStore{db: db}
	if _, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS kv_store (
            k TEXT NOT NULL PRIMARY KEY,
            v BLOB NOT NULL
        )
    `); err != nil {
		_ = db.Close()
		return nil, pkgerrors.Wrap(err, "sqlite create kv_store")
	}
	return s, nil
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT v FROM kv_store WHERE k = ?`, key)

	var v []byte
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrNotFound
		}
		return nil, pkgerrors.Wrapf(err, "sqlite get %s", key)
	}
	return v, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO kv_store (k, v) VALUES (?, ?)
        ON CONFLICT (k) DO UPDATE SET v = excluded.v
    `, key, value)
	return pkgerrors.Wrapf(err, "sqlite set %s", key)
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *KVStore) Close() error {
	return s.db.Close()
}
