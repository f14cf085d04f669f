package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/domain/ranking"
	"nexus_recycle/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrDiscoveryFailed     = errors.New("buyer discovery failed")
	ErrStaleDiscovery      = errors.New("buyer discovery superseded")
)

// discoveryTimeout bounds a shared directory lookup once it no longer
// follows any single caller's context.
const discoveryTimeout = 30 * time.Second

// RateSource yields values in [0, 1) used to simulate unpublished prices.
type RateSource func() float64

// SimulatedRate prices a listing that carries no published rate.
func SimulatedRate(material string, r float64) float64 {
	ceiling := 8.0
	switch material {
	case "Copper":
		ceiling = 450
	case "Plastic":
		ceiling = 15
	}
	return r*ceiling + 5
}

// QuoteView is a quote decorated for the marketplace screen.
// DistanceKm is nil when either side has no coordinates; the estimates are
// nil without an active scan.
type QuoteView struct {
	entities.BuyerQuote
	DistanceKm        *float64
	EstimatedWeightKg *float64
	EstimatedPayout   *float64
}

type BuyerBoard struct {
	Mode      ranking.Mode
	Material  string
	Reference entities.Coordinates
	Quotes    []QuoteView
}

type IMarketplaceUseCase interface {
	FindBuyers(ctx context.Context, mode ranking.Mode, refresh bool) (BuyerBoard, error)
}

// MarketplaceUseCase discovers buyers near the user for the scanned material.
//
// The latest list is cached against the location and scan it was fetched
// for; re-ranking a cached list does not call the directory again.
type MarketplaceUseCase struct {
	session   *Session
	directory interfaces.IBuyerDirectory
	rate      RateSource
	group     singleflight.Group
}

var _ IMarketplaceUseCase = (*MarketplaceUseCase)(nil)

func NewMarketplaceUseCase(session *Session, directory interfaces.IBuyerDirectory, rate RateSource) *MarketplaceUseCase {
	if rate == nil {
		rate = rand.Float64
	}
	return &MarketplaceUseCase{session: session, directory: directory, rate: rate}
}

func (u *MarketplaceUseCase) FindBuyers(ctx context.Context, mode ranking.Mode, refresh bool) (BuyerBoard, error) {
	s := u.session
	s.mu.Lock()
	p, err := s.requireProfileLocked()
	if err != nil {
		s.mu.Unlock()
		return BuyerBoard{}, err
	}
	if p.Location == nil {
		s.mu.Unlock()
		return BuyerBoard{}, ErrLocationUnavailable
	}
	dctx := discoveryContext{profileID: p.ID, scanSeq: s.scanSeq, location: *p.Location}

	material := ""
	var scan *entities.ScanResult
	if s.scan != nil {
		sc := copyScan(*s.scan)
		scan = &sc
		material = sc.PrimaryMaterial()
	}

	if !refresh && s.quotesCtx != nil && *s.quotesCtx == dctx {
		cached := slices.Clone(s.quotes)
		s.mu.Unlock()
		return buildBoard(mode, material, dctx.location, scan, cached), nil
	}
	s.mu.Unlock()

	key := fmt.Sprintf("%s|%d|%g|%g", dctx.profileID, dctx.scanSeq, dctx.location.Lat, dctx.location.Lng)
	ch := u.group.DoChan(key, func() (any, error) {
		return u.discover(ctx, dctx, material)
	})

	select {
	case <-ctx.Done():
		return BuyerBoard{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return BuyerBoard{}, res.Err
		}
		quotes, _ := res.Val.([]entities.BuyerQuote)
		zap.L().Debug("[marketplace][usecase] discovery joined", zap.String("key", key), zap.Bool("shared", res.Shared))
		return buildBoard(mode, material, dctx.location, scan, slices.Clone(quotes)), nil
	}
}

// discover runs one directory lookup shared by every caller with the same
// discovery context and stores its outcome in the session. It is detached
// from the caller so one caller giving up does not fail the others.
func (u *MarketplaceUseCase) discover(ctx context.Context, dctx discoveryContext, material string) ([]entities.BuyerQuote, error) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), discoveryTimeout)
	defer cancel()

	listings, err := u.directory.FindBuyers(cctx, dctx.location, material)

	s := u.session
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isCurrentLocked(dctx) {
		zap.L().Info("[marketplace][usecase] discovery result discarded", zap.String("profile_id", dctx.profileID))
		return nil, ErrStaleDiscovery
	}
	if err != nil {
		s.quotes = nil
		s.quotesCtx = nil
		zap.L().Warn("[marketplace][usecase] discovery failed", zap.String("material", material), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrDiscoveryFailed, err)
	}

	quotes := u.toQuotes(listings, material)
	s.quotes = quotes
	s.quotesCtx = &dctx

	zap.L().Info("[marketplace][usecase] discovery success",
		zap.String("material", material),
		zap.Int("quotes", len(quotes)),
	)
	return slices.Clone(quotes), nil
}

// isCurrentLocked reports whether dctx still describes the session. Caller holds mu.
func (s *Session) isCurrentLocked(dctx discoveryContext) bool {
	return s.profile != nil &&
		s.profile.ID == dctx.profileID &&
		s.profile.Location != nil &&
		*s.profile.Location == dctx.location &&
		s.scanSeq == dctx.scanSeq
}

func (u *MarketplaceUseCase) toQuotes(listings []entities.BuyerListing, material string) []entities.BuyerQuote {
	out := make([]entities.BuyerQuote, 0, len(listings))
	for i, l := range listings {
		q := entities.BuyerQuote{
			ID:            l.ID,
			BuyerName:     l.BuyerName,
			Material:      l.Material,
			Location:      l.Location,
			ContactNumber: l.ContactNumber,
			URI:           l.URI,
		}
		if q.ID == "" {
			q.ID = fmt.Sprintf("listing-%d", i)
		}
		if q.Material == "" {
			q.Material = material
			if q.Material == "" {
				q.Material = entities.MixedWasteMaterial
			}
		}
		if l.Coords != nil {
			c := *l.Coords
			q.Coords = &c
		}
		if l.RatePerKg != nil && !math.IsNaN(*l.RatePerKg) && !math.IsInf(*l.RatePerKg, 0) && *l.RatePerKg >= 0 {
			q.RatePerKg = *l.RatePerKg
		} else {
			q.RatePerKg = SimulatedRate(material, u.rate())
		}
		out = append(out, q)
	}
	return out
}

func buildBoard(mode ranking.Mode, material string, ref entities.Coordinates, scan *entities.ScanResult, quotes []entities.BuyerQuote) BuyerBoard {
	ranked := ranking.Rank(quotes, mode, &ref)
	views := make([]QuoteView, 0, len(ranked))
	for _, q := range ranked {
		v := QuoteView{BuyerQuote: q}
		if d, ok := ranking.DistanceFrom(&ref, q); ok {
			v.DistanceKm = &d
		}
		if scan != nil {
			w := scan.ComponentWeightFor(q.Material)
			payout := w * q.RatePerKg
			v.EstimatedWeightKg = &w
			v.EstimatedPayout = &payout
		}
		views = append(views, v)
	}
	return BuyerBoard{Mode: mode, Material: material, Reference: ref, Quotes: views}
}
