package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase/interfaces"
	mock_interfaces "nexus_recycle/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type tradeFixture struct {
	uc      *TradeUseCase
	repo    *mock_interfaces.MockILedgerRepository
	gateway *mock_interfaces.MockISettlementGateway
	events  *mock_interfaces.MockITradeEventPublisher
}

func newTradeFixture(t *testing.T, s *Session) tradeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockILedgerRepository(ctrl)
	gateway := mock_interfaces.NewMockISettlementGateway(ctrl)
	events := mock_interfaces.NewMockITradeEventPublisher(ctrl)
	ledger := NewLedgerUseCase(s, repo, fastRetry(2))
	uc := NewTradeUseCase(s, ledger, gateway, events, stubClock{now: fixedNow}, &stubIDs{})
	return tradeFixture{uc: uc, repo: repo, gateway: gateway, events: events}
}

func selected(s *Session, q entities.BuyerQuote) *Session {
	s.negotiation = entities.Negotiation{State: entities.NegotiationQuoteSelected, Quote: &q}
	return s
}

func TestTradeUseCase_SelectQuote(t *testing.T) {
	t.Run("requires active scan", func(t *testing.T) {
		s := signedIn()
		s.quotes = []entities.BuyerQuote{metalWorksQuote()}
		f := newTradeFixture(t, s)

		if _, err := f.uc.SelectQuote(context.Background(), "b2"); !errors.Is(err, ErrNoActiveScan) {
			t.Fatalf("expected ErrNoActiveScan, got %v", err)
		}
		if s.negotiation.State != entities.NegotiationIdle {
			t.Fatalf("state must stay idle, got %s", s.negotiation.State)
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		f := newTradeFixture(t, withScanAndQuotes(signedIn(), metalWorksQuote()))
		if _, err := f.uc.SelectQuote(context.Background(), "b9"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("selects and replaces", func(t *testing.T) {
		other := metalWorksQuote()
		other.ID = "b5"
		other.BuyerName = "Tech Salvage"
		s := withScanAndQuotes(signedIn(), metalWorksQuote(), other)
		f := newTradeFixture(t, s)

		n, err := f.uc.SelectQuote(context.Background(), " b2 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.State != entities.NegotiationQuoteSelected || n.Quote.ID != "b2" {
			t.Fatalf("unexpected negotiation %+v", n)
		}
		n, err = f.uc.SelectQuote(context.Background(), "b5")
		if err != nil || n.Quote.BuyerName != "Tech Salvage" {
			t.Fatalf("expected replaced selection, got %+v err=%v", n, err)
		}
	})

	t.Run("rejected while confirming", func(t *testing.T) {
		s := withScanAndQuotes(signedIn(), metalWorksQuote())
		s.negotiation = entities.Negotiation{State: entities.NegotiationConfirming}
		f := newTradeFixture(t, s)
		if _, err := f.uc.SelectQuote(context.Background(), "b2"); !errors.Is(err, ErrTradeInProgress) {
			t.Fatalf("expected ErrTradeInProgress, got %v", err)
		}
	})
}

func TestTradeUseCase_CancelSelection(t *testing.T) {
	t.Run("quote selected returns to idle", func(t *testing.T) {
		s := selected(withScanAndQuotes(signedIn(), metalWorksQuote()), metalWorksQuote())
		f := newTradeFixture(t, s)

		n, err := f.uc.CancelSelection(context.Background())
		if err != nil || n.State != entities.NegotiationIdle || n.Quote != nil {
			t.Fatalf("expected idle, got %+v err=%v", n, err)
		}
		if s.scan == nil {
			t.Fatalf("cancelling keeps the active scan")
		}
	})

	t.Run("idle is a no-op", func(t *testing.T) {
		f := newTradeFixture(t, signedIn())
		n, err := f.uc.CancelSelection(context.Background())
		if err != nil || n.State != entities.NegotiationIdle {
			t.Fatalf("expected idle, got %+v err=%v", n, err)
		}
	})

	t.Run("not allowed while confirming", func(t *testing.T) {
		s := signedIn()
		s.negotiation = entities.Negotiation{State: entities.NegotiationConfirming}
		f := newTradeFixture(t, s)
		if _, err := f.uc.CancelSelection(context.Background()); !errors.Is(err, ErrCancelNotAllowed) {
			t.Fatalf("expected ErrCancelNotAllowed, got %v", err)
		}
	})
}

func TestTradeUseCase_Confirm(t *testing.T) {
	t.Run("no selection", func(t *testing.T) {
		f := newTradeFixture(t, withScanAndQuotes(signedIn(), metalWorksQuote()))
		if _, err := f.uc.Confirm(context.Background()); !errors.Is(err, ErrNoQuoteSelected) {
			t.Fatalf("expected ErrNoQuoteSelected, got %v", err)
		}
	})

	t.Run("success records transaction and clears scan", func(t *testing.T) {
		s := selected(withScanAndQuotes(signedIn(), metalWorksQuote()), metalWorksQuote())
		s.ledger = []entities.Transaction{{ID: "old"}}
		f := newTradeFixture(t, s)

		f.gateway.EXPECT().Settle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req interfaces.SettlementRequest) (interfaces.SettlementReceipt, error) {
			if req.Reference != "id-1" || math.Abs(req.Amount-15.6) > 1e-9 || req.BuyerName != "MetalWorks Ltd" {
				t.Fatalf("unexpected settlement request %+v", req)
			}
			if s.negotiation.State != entities.NegotiationConfirming {
				t.Fatalf("expected confirming during settlement, got %s", s.negotiation.State)
			}
			return interfaces.SettlementReceipt{ProviderID: "mock-1", Status: "approved"}, nil
		})
		f.repo.EXPECT().SaveLedger(gomock.Any(), gomock.Len(2)).Return(nil)
		f.events.EXPECT().PublishTradeCompleted(gomock.Any(), gomock.Any()).Return(nil)

		tx, err := f.uc.Confirm(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.ID != "id-1" || tx.Weight != 3.0 || tx.Rate != 5.2 || tx.SellerName != "Ana Souza" {
			t.Fatalf("unexpected transaction %+v", tx)
		}
		if math.Abs(tx.Total-15.6) > 1e-9 || math.Abs(tx.CO2Saved-10.5) > 1e-9 {
			t.Fatalf("unexpected totals %+v", tx)
		}
		if !tx.Timestamp.Equal(fixedNow) {
			t.Fatalf("unexpected timestamp %s", tx.Timestamp)
		}
		if s.ledger[0].ID != "id-1" || s.ledger[1].ID != "old" {
			t.Fatalf("expected new transaction first, got %+v", s.ledger)
		}
		if s.scan != nil || s.quotes != nil {
			t.Fatalf("expected scan and quotes cleared")
		}
		if s.negotiation.State != entities.NegotiationCompleted || s.negotiation.Transaction.ID != "id-1" {
			t.Fatalf("expected completed negotiation, got %+v", s.negotiation)
		}
	})

	t.Run("unmatched material falls back to default weight", func(t *testing.T) {
		q := metalWorksQuote()
		q.Material = "Glass"
		q.RatePerKg = 0.3
		s := selected(withScanAndQuotes(signedIn(), q), q)
		f := newTradeFixture(t, s)

		f.gateway.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(interfaces.SettlementReceipt{}, nil)
		f.repo.EXPECT().SaveLedger(gomock.Any(), gomock.Any()).Return(nil)
		f.events.EXPECT().PublishTradeCompleted(gomock.Any(), gomock.Any()).Return(nil)

		tx, err := f.uc.Confirm(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.Weight != entities.DefaultComponentWeightKg || math.Abs(tx.CO2Saved-0.7) > 1e-9 {
			t.Fatalf("unexpected transaction %+v", tx)
		}
	})

	t.Run("settlement failure returns to quote selected", func(t *testing.T) {
		s := selected(withScanAndQuotes(signedIn(), metalWorksQuote()), metalWorksQuote())
		f := newTradeFixture(t, s)
		f.gateway.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(interfaces.SettlementReceipt{}, errors.New("declined"))

		if _, err := f.uc.Confirm(context.Background()); !errors.Is(err, ErrSettlementFailed) {
			t.Fatalf("expected ErrSettlementFailed, got %v", err)
		}
		if s.negotiation.State != entities.NegotiationQuoteSelected || s.negotiation.Quote.ID != "b2" {
			t.Fatalf("expected quote_selected, got %+v", s.negotiation)
		}
		if len(s.ledger) != 0 || s.scan == nil {
			t.Fatalf("ledger and scan must be untouched")
		}
	})

	t.Run("deferred persistence still completes", func(t *testing.T) {
		s := selected(withScanAndQuotes(signedIn(), metalWorksQuote()), metalWorksQuote())
		f := newTradeFixture(t, s)
		f.gateway.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(interfaces.SettlementReceipt{}, nil)
		f.repo.EXPECT().SaveLedger(gomock.Any(), gomock.Any()).Return(errors.New("disk")).Times(2)
		f.events.EXPECT().PublishTradeCompleted(gomock.Any(), gomock.Any()).Return(nil)

		tx, err := f.uc.Confirm(context.Background())
		if !errors.Is(err, ErrPersistenceDeferred) {
			t.Fatalf("expected ErrPersistenceDeferred, got %v", err)
		}
		if tx.ID != "id-1" || len(s.ledger) != 1 || !s.ledgerDirty {
			t.Fatalf("expected transaction kept in a dirty ledger")
		}
		if s.negotiation.State != entities.NegotiationCompleted {
			t.Fatalf("expected completed, got %s", s.negotiation.State)
		}
	})

	t.Run("event publish failure is not fatal", func(t *testing.T) {
		s := selected(withScanAndQuotes(signedIn(), metalWorksQuote()), metalWorksQuote())
		f := newTradeFixture(t, s)
		f.gateway.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(interfaces.SettlementReceipt{}, nil)
		f.repo.EXPECT().SaveLedger(gomock.Any(), gomock.Any()).Return(nil)
		f.events.EXPECT().PublishTradeCompleted(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

		if _, err := f.uc.Confirm(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancelled request still completes", func(t *testing.T) {
		s := selected(withScanAndQuotes(signedIn(), metalWorksQuote()), metalWorksQuote())
		f := newTradeFixture(t, s)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f.gateway.EXPECT().Settle(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ interfaces.SettlementRequest) (interfaces.SettlementReceipt, error) {
			if ctx.Err() != nil {
				t.Fatalf("settlement context must not be cancelled")
			}
			return interfaces.SettlementReceipt{}, nil
		})
		f.repo.EXPECT().SaveLedger(gomock.Any(), gomock.Any()).Return(nil)
		f.events.EXPECT().PublishTradeCompleted(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := f.uc.Confirm(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("second confirm while confirming", func(t *testing.T) {
		s := withScanAndQuotes(signedIn(), metalWorksQuote())
		q := metalWorksQuote()
		s.negotiation = entities.Negotiation{State: entities.NegotiationConfirming, Quote: &q}
		f := newTradeFixture(t, s)
		if _, err := f.uc.Confirm(context.Background()); !errors.Is(err, ErrTradeInProgress) {
			t.Fatalf("expected ErrTradeInProgress, got %v", err)
		}
	})
}
