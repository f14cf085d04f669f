package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/domain/impact"
	"nexus_recycle/internal/resilience"
	"nexus_recycle/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// RecentTransactionsLimit is how many trades the dashboard lists.
const RecentTransactionsLimit = 3

var ErrInvalidTransaction = errors.New("invalid transaction")

// Dashboard is the home view: who is signed in, their totals and latest trades.
type Dashboard struct {
	Profile       entities.UserProfile
	Report        impact.Report
	Recent        []entities.Transaction
	HasActiveScan bool
}

type ILedgerUseCase interface {
	Append(ctx context.Context, tx entities.Transaction) error
	Transactions(ctx context.Context) ([]entities.Transaction, error)
	Report(ctx context.Context) (impact.Report, error)
	Dashboard(ctx context.Context) (Dashboard, error)
	Flush(ctx context.Context) error
}

// LedgerUseCase owns the impact ledger.
//
// Every append writes the whole ledger. When the write keeps failing the
// in-memory ledger stays authoritative, the ledger is marked dirty and the
// next Append or Flush writes it again.
type LedgerUseCase struct {
	session *Session
	repo    interfaces.ILedgerRepository
	retry   resilience.RetryConfig
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(session *Session, repo interfaces.ILedgerRepository, retry resilience.RetryConfig) *LedgerUseCase {
	return &LedgerUseCase{session: session, repo: repo, retry: retry}
}

// Append records tx as the newest transaction. A non-nil error wrapping
// ErrPersistenceDeferred means tx is in the ledger but not yet stored.
func (u *LedgerUseCase) Append(ctx context.Context, tx entities.Transaction) error {
	if strings.TrimSpace(tx.ID) == "" {
		return ErrInvalidTransaction
	}

	s := u.session
	s.ledgerWrites.Lock()
	defer s.ledgerWrites.Unlock()

	s.mu.Lock()
	s.ledger = append([]entities.Transaction{tx}, s.ledger...)
	snapshot := s.ledgerSnapshotLocked()
	s.mu.Unlock()

	return u.write(ctx, snapshot)
}

// Flush rewrites the ledger if an earlier write was deferred.
func (u *LedgerUseCase) Flush(ctx context.Context) error {
	s := u.session
	s.ledgerWrites.Lock()
	defer s.ledgerWrites.Unlock()

	s.mu.Lock()
	if !s.ledgerDirty {
		s.mu.Unlock()
		return nil
	}
	snapshot := s.ledgerSnapshotLocked()
	s.mu.Unlock()

	return u.write(ctx, snapshot)
}

// write stores snapshot and updates the dirty flag. Caller holds ledgerWrites.
func (u *LedgerUseCase) write(ctx context.Context, snapshot []entities.Transaction) error {
	err := persist(ctx, u.retry, "save_ledger", func(ctx context.Context) error {
		return u.repo.SaveLedger(ctx, snapshot)
	})

	u.session.mu.Lock()
	u.session.ledgerDirty = err != nil
	u.session.mu.Unlock()

	if err != nil {
		zap.L().Warn("[ledger][usecase] ledger kept in memory only",
			zap.Int("transactions", len(snapshot)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrPersistenceDeferred, err)
	}
	zap.L().Debug("[ledger][usecase] ledger saved", zap.Int("transactions", len(snapshot)))
	return nil
}

func (u *LedgerUseCase) Transactions(_ context.Context) ([]entities.Transaction, error) {
	s := u.session
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.requireProfileLocked(); err != nil {
		return nil, err
	}
	return s.ledgerSnapshotLocked(), nil
}

func (u *LedgerUseCase) Report(_ context.Context) (impact.Report, error) {
	s := u.session
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.requireProfileLocked(); err != nil {
		return impact.Report{}, err
	}
	return impact.Summarize(s.ledger), nil
}

func (u *LedgerUseCase) Dashboard(_ context.Context) (Dashboard, error) {
	s := u.session
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.requireProfileLocked()
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{
		Profile:       p,
		Report:        impact.Summarize(s.ledger),
		Recent:        impact.Recent(s.ledger, RecentTransactionsLimit),
		HasActiveScan: s.scan != nil,
	}, nil
}
