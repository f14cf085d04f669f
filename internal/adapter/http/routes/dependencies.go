package routes

import (
	"context"
	"math/rand/v2"

	"nexus_recycle/internal/adapter/persistence/repository"
	"nexus_recycle/internal/config"
	"nexus_recycle/internal/infrastructure/events"
	"nexus_recycle/internal/infrastructure/payments"
	"nexus_recycle/internal/infrastructure/places"
	"nexus_recycle/internal/infrastructure/vision"
	"nexus_recycle/internal/resilience"
	"nexus_recycle/internal/usecase"
	"nexus_recycle/internal/usecase/interfaces"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Dependencies are the usecases served over HTTP.
type Dependencies struct {
	Session     usecase.ISessionUseCase
	Scan        usecase.IScanUseCase
	Marketplace usecase.IMarketplaceUseCase
	Trade       usecase.ITradeUseCase
	Ledger      usecase.ILedgerUseCase
}

// NewDependencies opens and migrates the configured store, builds every
// collaborator and restores the persisted session. The returned func releases
// the store and the event connection.
func NewDependencies(ctx context.Context, cfg *config.Config) (Dependencies, func(), error) {
	store, err := repository.NewStateRepositoryFromConfig(ctx, cfg.Store)
	if err != nil {
		return Dependencies{}, nil, err
	}
	// Every driver creates its table idempotently, so a fresh store is usable
	// without running migrate first.
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return Dependencies{}, nil, eris.Wrap(err, "migrate store")
	}

	publisher, closePublisher, err := events.NewTradeEventPublisher(cfg.Events)
	if err != nil {
		_ = store.Close()
		return Dependencies{}, nil, err
	}
	cleanup := func() {
		closePublisher()
		if err := store.Close(); err != nil {
			zap.L().Warn("[app][wiring] store close failed", zap.Error(err))
		}
	}

	gateway, err := payments.NewMercadoPagoGateway(cfg.Settlement)
	if err != nil {
		cleanup()
		return Dependencies{}, nil, eris.Wrap(err, "settlement gateway")
	}

	if cfg.Anthropic.Key == "" {
		zap.L().Warn("[app][wiring] anthropic key not set, scans will fail")
	}

	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = cfg.Persistence.RetryAttempts
	retry.InitialBackoff = cfg.Persistence.RetryBackoff

	session := usecase.NewSession()
	sessionUC := usecase.NewSessionUseCase(session, store, store, usecase.UUIDGenerator{}, retry)
	ledgerUC := usecase.NewLedgerUseCase(session, store, retry)

	deps := Dependencies{
		Session:     sessionUC,
		Scan:        usecase.NewScanUseCase(session, vision.NewAnthropicAnalyzer(cfg.Anthropic)),
		Marketplace: usecase.NewMarketplaceUseCase(session, buyerDirectory(cfg.Places), rand.Float64),
		Trade:       usecase.NewTradeUseCase(session, ledgerUC, gateway, publisher, usecase.RealClock{}, usecase.UUIDGenerator{}),
		Ledger:      ledgerUC,
	}

	if err := sessionUC.Restore(ctx); err != nil {
		cleanup()
		return Dependencies{}, nil, eris.Wrap(err, "restore session")
	}
	return deps, cleanup, nil
}

func buyerDirectory(cfg config.PlacesConfig) interfaces.IBuyerDirectory {
	if cfg.Provider == "google" {
		zap.L().Info("[app][wiring] buyer discovery via google places")
		return places.NewGoogleDirectory(cfg.Key, places.WithBaseURL(cfg.BaseURL), places.WithSearchArea(cfg.MaxResults, cfg.RadiusM))
	}
	zap.L().Info("[app][wiring] buyer discovery via static catalog")
	return places.NewStaticDirectory(nil)
}
