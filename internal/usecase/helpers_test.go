package usecase

import (
	"fmt"
	"sync"
	"time"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/resilience"

	"go.uber.org/zap"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time { return c.now }

// stubIDs returns id-1, id-2, ...
type stubIDs struct {
	mu sync.Mutex
	n  int
}

func (g *stubIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func fastRetry(attempts int) resilience.RetryConfig {
	return resilience.RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
	}
}

func testProfile() entities.UserProfile {
	return entities.UserProfile{
		ID:            "user-1",
		FullName:      "Ana Souza",
		ContactNumber: "+1 555 0100",
		EntityType:    entities.EntityTypeShop,
		Location:      &entities.Coordinates{Lat: 37.7749, Lng: -122.4194},
	}
}

func copperScan() entities.ScanResult {
	return entities.ScanResult{
		Components: []entities.MaterialComponent{
			{Name: "Copper", WeightKg: 3.0},
			{Name: "Plastic", WeightKg: 0.5},
		},
		UpcyclingIdeas: []string{"wire art", "planter", "coasters"},
	}
}

func metalWorksQuote() entities.BuyerQuote {
	return entities.BuyerQuote{
		ID:        "b2",
		BuyerName: "MetalWorks Ltd",
		Material:  "Copper",
		RatePerKg: 5.2,
		Location:  "Industrial Park North",
		Coords:    &entities.Coordinates{Lat: 37.7858, Lng: -122.4064},
	}
}

// signedIn returns a session with testProfile installed.
func signedIn() *Session {
	s := NewSession()
	p := testProfile()
	s.profile = &p
	return s
}

// withScanAndQuotes installs copperScan and the given quotes as if a scan
// and a discovery had completed.
func withScanAndQuotes(s *Session, quotes ...entities.BuyerQuote) *Session {
	sc := copperScan()
	s.scanSeq++
	s.scan = &sc
	s.quotes = quotes
	return s
}
