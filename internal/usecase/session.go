package usecase

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/resilience"

	"github.com/google/uuid"
)

var (
	ErrNoActiveSession     = errors.New("no active session")
	ErrPersistenceDeferred = errors.New("change applied but not yet persisted")
)

// Session is the process-wide state of the single signed-in user.
//
// One Session is created at startup and handed to every usecase. mu guards
// all fields below it; it is never held across an external call.
// profileWrites and ledgerWrites serialize durable writes so the stored
// record always reflects the latest in-memory value.
type Session struct {
	profileWrites sync.Mutex
	ledgerWrites  sync.Mutex

	mu      sync.Mutex
	profile *entities.UserProfile
	// profileDirty marks the stored profile record as behind profile. A nil
	// profile then means a delete is pending.
	profileDirty bool
	ledger       []entities.Transaction
	ledgerDirty  bool

	// scanSeq changes whenever the active scan is started, replaced or dropped.
	scanSeq uint64
	scan    *entities.ScanResult

	quotes    []entities.BuyerQuote
	quotesCtx *discoveryContext

	negotiation entities.Negotiation
}

func NewSession() *Session {
	return &Session{negotiation: idleNegotiation()}
}

func idleNegotiation() entities.Negotiation {
	return entities.Negotiation{State: entities.NegotiationIdle}
}

// discoveryContext identifies the state a buyer discovery was issued for.
type discoveryContext struct {
	profileID string
	scanSeq   uint64
	location  entities.Coordinates
}

// requireProfileLocked returns a copy of the live profile. Caller holds mu.
func (s *Session) requireProfileLocked() (entities.UserProfile, error) {
	if s.profile == nil {
		return entities.UserProfile{}, ErrNoActiveSession
	}
	return copyProfile(*s.profile), nil
}

// resetScanLocked drops the active scan and everything derived from it. Caller holds mu.
func (s *Session) resetScanLocked() {
	s.scanSeq++
	s.scan = nil
	s.quotes = nil
	s.quotesCtx = nil
	s.negotiation = idleNegotiation()
}

func (s *Session) ledgerSnapshotLocked() []entities.Transaction {
	out := slices.Clone(s.ledger)
	if out == nil {
		out = []entities.Transaction{}
	}
	return out
}

func copyProfile(p entities.UserProfile) entities.UserProfile {
	if p.Location != nil {
		loc := *p.Location
		p.Location = &loc
	}
	return p
}

func copyScan(s entities.ScanResult) entities.ScanResult {
	return entities.ScanResult{
		Components:     slices.Clone(s.Components),
		UpcyclingIdeas: slices.Clone(s.UpcyclingIdeas),
	}
}

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// persist runs a durable write with retries. The write is detached from the
// caller's cancellation so a dropped request cannot leave it half done.
func persist(ctx context.Context, cfg resilience.RetryConfig, op string, fn func(ctx context.Context) error) error {
	cfg.OnRetry = resilience.LogRetry("persistence", op)
	return resilience.Do(context.WithoutCancel(ctx), cfg, fn)
}
