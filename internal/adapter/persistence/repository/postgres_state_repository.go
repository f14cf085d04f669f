package repository

import (
	"context"
	"errors"
	"time"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rotisserie/eris"
)

// Pool is the subset of *pgxpool.Pool the repository uses. pgxmock pools
// satisfy it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const postgresStateMigration = `
CREATE TABLE IF NOT EXISTS nexus_state (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// PostgresStateRepository stores each record as one jsonb row of nexus_state.
type PostgresStateRepository struct {
	pool    Pool
	closeFn func()
	now     func() time.Time
}

var _ interfaces.IStateRepository = (*PostgresStateRepository)(nil)

// NewPostgresStateRepository wraps pool. closeFn may be nil.
func NewPostgresStateRepository(pool Pool, closeFn func()) *PostgresStateRepository {
	return &PostgresStateRepository{pool: pool, closeFn: closeFn, now: time.Now}
}

func (r *PostgresStateRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, postgresStateMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (r *PostgresStateRepository) Close() error {
	if r.closeFn != nil {
		r.closeFn()
	}
	return nil
}

func (r *PostgresStateRepository) LoadProfile(ctx context.Context) (entities.UserProfile, error) {
	b, err := r.get(ctx, ProfileKey)
	if err != nil {
		return entities.UserProfile{}, err
	}
	return decodeProfile(b)
}

func (r *PostgresStateRepository) SaveProfile(ctx context.Context, p entities.UserProfile) error {
	b, err := encodeProfile(p)
	if err != nil {
		return err
	}
	return r.put(ctx, ProfileKey, b)
}

func (r *PostgresStateRepository) DeleteProfile(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM nexus_state WHERE key = $1`, ProfileKey)
	return eris.Wrap(err, "postgres: delete profile")
}

func (r *PostgresStateRepository) LoadLedger(ctx context.Context) ([]entities.Transaction, error) {
	b, err := r.get(ctx, LedgerKey)
	if err != nil {
		return nil, err
	}
	return decodeLedger(b)
}

func (r *PostgresStateRepository) SaveLedger(ctx context.Context, ledger []entities.Transaction) error {
	b, err := encodeLedger(ledger)
	if err != nil {
		return err
	}
	return r.put(ctx, LedgerKey, b)
}

func (r *PostgresStateRepository) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.pool.QueryRow(ctx, `SELECT value FROM nexus_state WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get %s", key)
	}
	return value, nil
}

func (r *PostgresStateRepository) put(ctx context.Context, key string, value []byte) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO nexus_state (key, value, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value, r.now().UTC(),
	)
	return eris.Wrapf(err, "postgres: put %s", key)
}
