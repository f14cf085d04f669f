package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase/interfaces"

	"github.com/rotisserie/eris"
)

const sqliteStateMigration = `
CREATE TABLE IF NOT EXISTS nexus_state (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// SQLiteStateRepository stores each record as one JSON row of nexus_state.
type SQLiteStateRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.IStateRepository = (*SQLiteStateRepository)(nil)

func NewSQLiteStateRepository(db *sql.DB) *SQLiteStateRepository {
	return &SQLiteStateRepository{db: db, now: time.Now}
}

func (r *SQLiteStateRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, sqliteStateMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (r *SQLiteStateRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteStateRepository) LoadProfile(ctx context.Context) (entities.UserProfile, error) {
	b, err := r.get(ctx, ProfileKey)
	if err != nil {
		return entities.UserProfile{}, err
	}
	return decodeProfile(b)
}

func (r *SQLiteStateRepository) SaveProfile(ctx context.Context, p entities.UserProfile) error {
	b, err := encodeProfile(p)
	if err != nil {
		return err
	}
	return r.put(ctx, ProfileKey, b)
}

func (r *SQLiteStateRepository) DeleteProfile(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM nexus_state WHERE key = ?`, ProfileKey)
	return eris.Wrap(err, "sqlite: delete profile")
}

func (r *SQLiteStateRepository) LoadLedger(ctx context.Context) ([]entities.Transaction, error) {
	b, err := r.get(ctx, LedgerKey)
	if err != nil {
		return nil, err
	}
	return decodeLedger(b)
}

func (r *SQLiteStateRepository) SaveLedger(ctx context.Context, ledger []entities.Transaction) error {
	b, err := encodeLedger(ledger)
	if err != nil {
		return err
	}
	return r.put(ctx, LedgerKey, b)
}

// get returns nil when the record does not exist.
func (r *SQLiteStateRepository) get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM nexus_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get %s", key)
	}
	return []byte(value), nil
}

func (r *SQLiteStateRepository) put(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO nexus_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), r.now().UTC(),
	)
	return eris.Wrapf(err, "sqlite: put %s", key)
}
