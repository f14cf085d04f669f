package response

import (
	"time"

	"nexus_recycle/internal/domain/entities"
)

type TransactionResponse struct {
	ID         string    `json:"id"`
	Material   string    `json:"material"`
	Weight     float64   `json:"weight"`
	Rate       float64   `json:"rate"`
	Total      float64   `json:"total"`
	BuyerName  string    `json:"buyer_name"`
	SellerName string    `json:"seller_name"`
	Timestamp  time.Time `json:"timestamp"`
	CO2Saved   float64   `json:"co2_saved"`
}

type NegotiationResponse struct {
	State       string               `json:"state"`
	Quote       *QuoteResponse       `json:"quote,omitempty"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

type ConfirmResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Warning     string              `json:"warning,omitempty"`
}

func FromTransaction(tx entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         tx.ID,
		Material:   tx.Material,
		Weight:     tx.Weight,
		Rate:       tx.Rate,
		Total:      tx.Total,
		BuyerName:  tx.BuyerName,
		SellerName: tx.SellerName,
		Timestamp:  tx.Timestamp,
		CO2Saved:   tx.CO2Saved,
	}
}

func FromTransactions(txs []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromTransaction(tx))
	}
	return out
}

func FromNegotiation(n entities.Negotiation) NegotiationResponse {
	res := NegotiationResponse{State: string(n.State)}
	if n.Quote != nil {
		q := FromQuote(*n.Quote)
		res.Quote = &q
	}
	if n.Transaction != nil {
		tx := FromTransaction(*n.Transaction)
		res.Transaction = &tx
	}
	return res
}
