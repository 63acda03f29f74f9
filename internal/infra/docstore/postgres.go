package docstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createDocumentsTable = `
CREATE TABLE IF NOT EXISTS documents (
	key        text PRIMARY KEY,
	body       jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

const selectDocument = `SELECT body FROM documents WHERE key = $1`

const upsertDocument = `
INSERT INTO documents (key, body, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema is idempotent.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, createDocumentsTable)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	err := s.pool.QueryRow(ctx, selectDocument, key).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, body []byte) error {
	_, err := s.pool.Exec(ctx, upsertDocument, key, body)
	return err
}
