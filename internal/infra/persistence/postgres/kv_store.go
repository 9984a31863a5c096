package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pkgerrors "github.com/pkg/errors"

	"example.com/storefront/internal/infra/persistence/kv"
)

type KVStore struct {
	pool *pgxpool.Pool
}

func Open(ctx context.Context, dsn string) (*KVStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "pg connect")
	}
	if _, err := pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS kv_store (
            k TEXT PRIMARY KEY,
            v BYTEA NOT NULL
        )
    `); err != nil {
		pool.Close()
		return nil, pkgerrors.Wrap(err, "pg create kv_store")
	}
	return &KVStore{pool: pool}, nil
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := s.pool.QueryRow(ctx, `SELECT v FROM kv_store WHERE k = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "pg get %s", key)
	}
	return v, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx, `
        INSERT INTO kv_store (k, v) VALUES ($1, $2)
        ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v
    `, key, value)
	return pkgerrors.Wrapf(err, "pg set %s", key)
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *KVStore) Close() error {
	s.pool.Close()
	return nil
}
