package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrNoQuoteSelected  = errors.New("no quote selected")
	ErrCancelNotAllowed = errors.New("cancellation not allowed while confirming")
	ErrSettlementFailed = errors.New("settlement failed")
)

// ITradeUseCase drives the negotiation for the active scan:
//
//	idle -> quote_selected -> confirming -> completed
//
// Cancelling returns quote_selected to idle. A settlement failure returns
// confirming to quote_selected.
type ITradeUseCase interface {
	Current(ctx context.Context) (entities.Negotiation, error)
	SelectQuote(ctx context.Context, quoteID string) (entities.Negotiation, error)
	CancelSelection(ctx context.Context) (entities.Negotiation, error)
	Confirm(ctx context.Context) (entities.Transaction, error)
}

type TradeUseCase struct {
	session *Session
	ledger  ILedgerUseCase
	gateway interfaces.ISettlementGateway
	events  interfaces.ITradeEventPublisher
	clock   Clock
	ids     IDGenerator
}

var _ ITradeUseCase = (*TradeUseCase)(nil)

func NewTradeUseCase(
	session *Session,
	ledger ILedgerUseCase,
	gateway interfaces.ISettlementGateway,
	events interfaces.ITradeEventPublisher,
	clock Clock,
	ids IDGenerator,
) *TradeUseCase {
	return &TradeUseCase{session: session, ledger: ledger, gateway: gateway, events: events, clock: clock, ids: ids}
}

func (u *TradeUseCase) Current(_ context.Context) (entities.Negotiation, error) {
	s := u.session
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.requireProfileLocked(); err != nil {
		return entities.Negotiation{}, err
	}
	return copyNegotiation(s.negotiation), nil
}

// SelectQuote picks a quote from the latest buyer list. Selecting again
// before confirming replaces the previous choice.
func (u *TradeUseCase) SelectQuote(_ context.Context, quoteID string) (entities.Negotiation, error) {
	quoteID = strings.TrimSpace(quoteID)

	s := u.session
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.requireProfileLocked(); err != nil {
		return entities.Negotiation{}, err
	}
	if s.negotiation.State == entities.NegotiationConfirming {
		return entities.Negotiation{}, ErrTradeInProgress
	}
	if s.scan == nil {
		return entities.Negotiation{}, ErrNoActiveScan
	}

	for _, q := range s.quotes {
		if q.ID == quoteID {
			selected := q
			s.negotiation = entities.Negotiation{State: entities.NegotiationQuoteSelected, Quote: &selected}
			return copyNegotiation(s.negotiation), nil
		}
	}
	return entities.Negotiation{}, ErrQuoteNotFound
}

func (u *TradeUseCase) CancelSelection(_ context.Context) (entities.Negotiation, error) {
	s := u.session
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.requireProfileLocked(); err != nil {
		return entities.Negotiation{}, err
	}

	switch s.negotiation.State {
	case entities.NegotiationConfirming:
		return entities.Negotiation{}, ErrCancelNotAllowed
	case entities.NegotiationQuoteSelected:
		s.negotiation = idleNegotiation()
	}
	return copyNegotiation(s.negotiation), nil
}

// Confirm settles the selected quote and records the trade.
//
// Once confirming, the trade runs to completion even if ctx is cancelled.
// A returned error wrapping ErrPersistenceDeferred comes with a valid
// transaction that is in the ledger but not yet stored.
func (u *TradeUseCase) Confirm(ctx context.Context) (entities.Transaction, error) {
	s := u.session
	s.mu.Lock()
	p, err := s.requireProfileLocked()
	if err != nil {
		s.mu.Unlock()
		return entities.Transaction{}, err
	}
	switch s.negotiation.State {
	case entities.NegotiationConfirming:
		s.mu.Unlock()
		return entities.Transaction{}, ErrTradeInProgress
	case entities.NegotiationQuoteSelected:
	default:
		s.mu.Unlock()
		return entities.Transaction{}, ErrNoQuoteSelected
	}
	if s.scan == nil {
		s.mu.Unlock()
		return entities.Transaction{}, ErrNoActiveScan
	}

	quote := *s.negotiation.Quote
	weight := s.scan.ComponentWeightFor(quote.Material)
	co2 := weight * entities.EmissionFactor(quote.Material)
	token := s.scanSeq
	confirming := quote
	s.negotiation = entities.Negotiation{State: entities.NegotiationConfirming, Quote: &confirming}
	s.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	txID := u.ids.NewID()
	total := weight * quote.RatePerKg

	zap.L().Info("[trade][usecase] confirm start",
		zap.String("tx_id", txID),
		zap.String("buyer", quote.BuyerName),
		zap.String("material", quote.Material),
		zap.Float64("weight_kg", weight),
		zap.Float64("total", total),
	)

	receipt, err := u.gateway.Settle(ctx, interfaces.SettlementRequest{
		Reference:   txID,
		Amount:      total,
		Description: fmt.Sprintf("%g kg of %s sold to %s", weight, quote.Material, quote.BuyerName),
		BuyerName:   quote.BuyerName,
		Material:    quote.Material,
	})
	if err != nil {
		u.revert(token, quote)
		zap.L().Warn("[trade][usecase] settlement failed", zap.String("tx_id", txID), zap.Error(err))
		return entities.Transaction{}, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	tx := entities.NewTransaction(txID, quote, weight, co2, p.FullName, u.clock.Now())
	appendErr := u.ledger.Append(ctx, tx)
	if appendErr != nil && !errors.Is(appendErr, ErrPersistenceDeferred) {
		u.revert(token, quote)
		return entities.Transaction{}, appendErr
	}

	s.mu.Lock()
	if s.scanSeq == token {
		s.resetScanLocked()
		done := tx
		s.negotiation = entities.Negotiation{State: entities.NegotiationCompleted, Transaction: &done}
	}
	s.mu.Unlock()

	zap.L().Info("[trade][usecase] confirm success",
		zap.String("tx_id", tx.ID),
		zap.String("provider_id", receipt.ProviderID),
		zap.String("provider_status", receipt.Status),
		zap.Float64("co2_saved", tx.CO2Saved),
	)

	if u.events != nil {
		if err := u.events.PublishTradeCompleted(ctx, tx); err != nil {
			zap.L().Warn("[trade][usecase] trade event not published", zap.String("tx_id", tx.ID), zap.Error(err))
		}
	}
	return tx, appendErr
}

// revert moves a confirming trade back to quote_selected unless the scan
// was replaced in the meantime.
func (u *TradeUseCase) revert(token uint64, quote entities.BuyerQuote) {
	s := u.session
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scanSeq == token && s.negotiation.State == entities.NegotiationConfirming {
		q := quote
		s.negotiation = entities.Negotiation{State: entities.NegotiationQuoteSelected, Quote: &q}
	}
}

func copyNegotiation(n entities.Negotiation) entities.Negotiation {
	out := entities.Negotiation{State: n.State}
	if n.Quote != nil {
		q := *n.Quote
		if q.Coords != nil {
			c := *q.Coords
			q.Coords = &c
		}
		out.Quote = &q
	}
	if n.Transaction != nil {
		tx := *n.Transaction
		out.Transaction = &tx
	}
	return out
}
