package repository

import (
	"context"
	"slices"
	"sync"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase/interfaces"
)

// MemoryStateRepository keeps both records in process memory. Nothing
// survives a restart.
type MemoryStateRepository struct {
	mu      sync.RWMutex
	profile *entities.UserProfile
	ledger  []entities.Transaction
}

var _ interfaces.IStateRepository = (*MemoryStateRepository)(nil)

func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{}
}

func (r *MemoryStateRepository) LoadProfile(_ context.Context) (entities.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.profile == nil {
		return entities.UserProfile{}, nil
	}
	p := *r.profile
	if p.Location != nil {
		loc := *p.Location
		p.Location = &loc
	}
	return p, nil
}

func (r *MemoryStateRepository) SaveProfile(_ context.Context, p entities.UserProfile) error {
	if p.Location != nil {
		loc := *p.Location
		p.Location = &loc
	}
	r.mu.Lock()
	r.profile = &p
	r.mu.Unlock()
	return nil
}

func (r *MemoryStateRepository) DeleteProfile(_ context.Context) error {
	r.mu.Lock()
	r.profile = nil
	r.mu.Unlock()
	return nil
}

func (r *MemoryStateRepository) LoadLedger(_ context.Context) ([]entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := slices.Clone(r.ledger)
	if out == nil {
		out = []entities.Transaction{}
	}
	return out, nil
}

func (r *MemoryStateRepository) SaveLedger(_ context.Context, ledger []entities.Transaction) error {
	r.mu.Lock()
	r.ledger = slices.Clone(ledger)
	r.mu.Unlock()
	return nil
}

func (r *MemoryStateRepository) Migrate(context.Context) error { return nil }

func (r *MemoryStateRepository) Close() error { return nil }
