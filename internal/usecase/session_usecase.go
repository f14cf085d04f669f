package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/resilience"
	"nexus_recycle/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrProfileAlreadyExists  = errors.New("profile already exists")
	ErrInvalidProfile        = errors.New("invalid profile")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrLocationUpdateIgnored = errors.New("location update ignored")
)

// ISessionUseCase manages the signed-in profile.
//
//   - Signup (3-step form) => CreateProfile()
//   - Geolocation feed => UpdateLocation()
//   - Logout => Logout(); the transaction history is kept
//   - Shutdown => Flush()

type ISessionUseCase interface {
	Restore(ctx context.Context) error
	CreateProfile(ctx context.Context, draft entities.UserProfile) (entities.UserProfile, error)
	GetProfile(ctx context.Context) (entities.UserProfile, error)
	UpdateLocation(ctx context.Context, profileID string, loc entities.Coordinates) (entities.UserProfile, error)
	Logout(ctx context.Context) error
	Flush(ctx context.Context) error
}

type SessionUseCase struct {
	session  *Session
	profiles interfaces.IProfileRepository
	ledger   interfaces.ILedgerRepository
	ids      IDGenerator
	retry    resilience.RetryConfig
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(session *Session, profiles interfaces.IProfileRepository, ledger interfaces.ILedgerRepository, ids IDGenerator, retry resilience.RetryConfig) *SessionUseCase {
	return &SessionUseCase{session: session, profiles: profiles, ledger: ledger, ids: ids, retry: retry}
}

// Restore loads both durable records into the session. It runs once at startup.
func (u *SessionUseCase) Restore(ctx context.Context) error {
	p, err := u.profiles.LoadProfile(ctx)
	if err != nil {
		return fmt.Errorf("restore profile: %w", err)
	}
	txs, err := u.ledger.LoadLedger(ctx)
	if err != nil {
		return fmt.Errorf("restore ledger: %w", err)
	}

	s := u.session
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = nil
	if p.ID != "" {
		cp := copyProfile(p)
		s.profile = &cp
	}
	s.profileDirty = false
	s.ledger = slices.Clone(txs)
	s.ledgerDirty = false
	s.resetScanLocked()

	zap.L().Info("[session][usecase] restored",
		zap.Bool("has_profile", s.profile != nil),
		zap.Int("transactions", len(s.ledger)),
	)
	return nil
}

func (u *SessionUseCase) CreateProfile(ctx context.Context, draft entities.UserProfile) (entities.UserProfile, error) {
	draft.FullName = strings.TrimSpace(draft.FullName)
	draft.ContactNumber = strings.TrimSpace(draft.ContactNumber)
	if draft.FullName == "" || !draft.EntityType.Valid() {
		return entities.UserProfile{}, ErrInvalidProfile
	}
	if draft.Location != nil && !draft.Location.Valid() {
		return entities.UserProfile{}, ErrInvalidLocation
	}

	s := u.session
	s.profileWrites.Lock()
	defer s.profileWrites.Unlock()

	s.mu.Lock()
	exists := s.profile != nil
	s.mu.Unlock()
	if exists {
		return entities.UserProfile{}, ErrProfileAlreadyExists
	}

	p := copyProfile(draft)
	p.ID = u.ids.NewID()
	if err := persist(ctx, u.retry, "save_profile", func(ctx context.Context) error {
		return u.profiles.SaveProfile(ctx, p)
	}); err != nil {
		return entities.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}

	s.mu.Lock()
	installed := copyProfile(p)
	s.profile = &installed
	s.profileDirty = false
	s.resetScanLocked()
	s.mu.Unlock()

	zap.L().Info("[session][usecase] profile created",
		zap.String("profile_id", p.ID),
		zap.String("entity_type", string(p.EntityType)),
		zap.Bool("has_location", p.HasLocation()),
	)
	return copyProfile(p), nil
}

func (u *SessionUseCase) GetProfile(_ context.Context) (entities.UserProfile, error) {
	u.session.mu.Lock()
	defer u.session.mu.Unlock()
	return u.session.requireProfileLocked()
}

// UpdateLocation merges a position from the geolocation feed. Updates for a
// profile that is no longer signed in are dropped with ErrLocationUpdateIgnored.
// An empty profileID targets the current profile.
func (u *SessionUseCase) UpdateLocation(ctx context.Context, profileID string, loc entities.Coordinates) (entities.UserProfile, error) {
	if !loc.Valid() {
		return entities.UserProfile{}, ErrInvalidLocation
	}

	s := u.session
	s.profileWrites.Lock()
	defer s.profileWrites.Unlock()

	s.mu.Lock()
	if s.profile == nil || (profileID != "" && profileID != s.profile.ID) {
		s.mu.Unlock()
		return entities.UserProfile{}, ErrLocationUpdateIgnored
	}
	l := loc
	s.profile.Location = &l
	snapshot := copyProfile(*s.profile)
	s.mu.Unlock()

	if err := u.writeProfile(ctx, &snapshot); err != nil {
		zap.L().Warn("[session][usecase] location kept in memory only",
			zap.String("profile_id", snapshot.ID),
			zap.Error(err),
		)
	}
	return snapshot, nil
}

// Logout ends the session. The ledger record is left untouched. Logging out
// again while an earlier delete is still pending retries that delete.
func (u *SessionUseCase) Logout(ctx context.Context) error {
	s := u.session
	s.profileWrites.Lock()
	defer s.profileWrites.Unlock()

	s.mu.Lock()
	had := s.profile != nil
	pending := s.profileDirty
	s.profile = nil
	s.resetScanLocked()
	s.mu.Unlock()

	if !had && !pending {
		return nil
	}

	if err := u.writeProfile(ctx, nil); err != nil {
		zap.L().Warn("[session][usecase] profile record not deleted", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistenceDeferred, err)
	}
	zap.L().Info("[session][usecase] logged out")
	return nil
}

// Flush writes the profile record again if an earlier save or delete failed.
func (u *SessionUseCase) Flush(ctx context.Context) error {
	s := u.session
	s.profileWrites.Lock()
	defer s.profileWrites.Unlock()

	s.mu.Lock()
	if !s.profileDirty {
		s.mu.Unlock()
		return nil
	}
	var snapshot *entities.UserProfile
	if s.profile != nil {
		cp := copyProfile(*s.profile)
		snapshot = &cp
	}
	s.mu.Unlock()

	if err := u.writeProfile(ctx, snapshot); err != nil {
		zap.L().Warn("[session][usecase] profile flush failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistenceDeferred, err)
	}
	return nil
}

// writeProfile saves p, or deletes the record when p is nil, and updates the
// dirty flag. Caller holds profileWrites.
func (u *SessionUseCase) writeProfile(ctx context.Context, p *entities.UserProfile) error {
	var err error
	if p == nil {
		err = persist(ctx, u.retry, "delete_profile", u.profiles.DeleteProfile)
	} else {
		err = persist(ctx, u.retry, "save_profile", func(ctx context.Context) error {
			return u.profiles.SaveProfile(ctx, *p)
		})
	}

	u.session.mu.Lock()
	u.session.profileDirty = err != nil
	u.session.mu.Unlock()
	return err
}
