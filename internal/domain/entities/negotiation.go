package entities

// NegotiationState is the trade state for the active scan.
type NegotiationState string

const (
	NegotiationIdle          NegotiationState = "idle"
	NegotiationQuoteSelected NegotiationState = "quote_selected"
	NegotiationConfirming    NegotiationState = "confirming"
	NegotiationCompleted     NegotiationState = "completed"
)

// Negotiation is a snapshot of the trade state machine.
//
//   - Quote is set in QuoteSelected and Confirming.
//   - Transaction is set in Completed.
type Negotiation struct {
	State       NegotiationState `json:"state"`
	Quote       *BuyerQuote      `json:"quote,omitempty"`
	Transaction *Transaction     `json:"transaction,omitempty"`
}
