package interfaces

import "context"

// SettlementRequest describes the payout for a confirmed trade.
type SettlementRequest struct {
	Reference   string
	Amount      float64
	Description string
	BuyerName   string
	Material    string
}

type SettlementReceipt struct {
	ProviderID string
	Status     string
}

// ISettlementGateway abstracts the payment provider (e.g. Mercado Pago) that
// settles a trade. Implementations may take noticeable time to answer.
type ISettlementGateway interface {
	Settle(ctx context.Context, req SettlementRequest) (SettlementReceipt, error)
}
