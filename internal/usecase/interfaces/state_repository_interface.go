package interfaces

import (
	"context"
	"nexus_recycle/internal/domain/entities"
)

// IProfileRepository persists the single "nexus_user" record.
//
// LoadProfile returns a zero-value profile (ID == "") when no record exists.

type IProfileRepository interface {
	LoadProfile(ctx context.Context) (entities.UserProfile, error)
	SaveProfile(ctx context.Context, p entities.UserProfile) error
	DeleteProfile(ctx context.Context) error
}

// ILedgerRepository persists the "nexus_txs" record, newest transaction first.
// Reads and writes are whole-value.

type ILedgerRepository interface {
	LoadLedger(ctx context.Context) ([]entities.Transaction, error)
	SaveLedger(ctx context.Context, ledger []entities.Transaction) error
}

// IStateRepository is a storage driver holding both records.
type IStateRepository interface {
	IProfileRepository
	ILedgerRepository
	Migrate(ctx context.Context) error
	Close() error
}
