package mysql

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/go-sql-driver/mysql"
	pkgerrors "github.com/pkg/errors"

	"example.com/storefront/internal/infra/persistence/kv"
)

type KVStore struct {
	db *sql.DB
}

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Open connects with a go-sql-driver DSN and creates the kv_store table.
func Open(ctx context.Context, dsn string) (*KVStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "mysql open")
	}
	s := NewKVStore(db)
	if err := s.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *KVStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS kv_store (
            k VARCHAR(191) NOT NULL PRIMARY KEY,
            v MEDIUMTEXT NOT NULL
        )
    `)
	return pkgerrors.Wrap(err, "mysql create kv_store")
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT v FROM kv_store WHERE k = ?`, key)

	var v []byte
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrNotFound
		}
		return nil, pkgerrors.Wrapf(err, "mysql get %s", key)
	}
	return v, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO kv_store (k, v)
        VALUES (?, ?)
        ON DUPLICATE KEY UPDATE v = VALUES(v)
    `, key, value)
	return pkgerrors.Wrapf(err, "mysql set %s", key)
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *KVStore) Close() error {
	return s.db.Close()
}
