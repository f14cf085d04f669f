package entities

import "time"

// Transaction is a completed trade. It is immutable once created.
type Transaction struct {
	ID         string    `json:"id"`
	Material   string    `json:"material"`
	Weight     float64   `json:"weight"`
	Rate       float64   `json:"rate"`
	Total      float64   `json:"total"`
	BuyerName  string    `json:"buyerName"`
	SellerName string    `json:"sellerName"`
	Timestamp  time.Time `json:"timestamp"`
	CO2Saved   float64   `json:"co2Saved"`
}

// NewTransaction builds a Transaction for a confirmed quote. Total is
// computed here and never recomputed.
func NewTransaction(id string, quote BuyerQuote, weight, co2Saved float64, sellerName string, at time.Time) Transaction {
	return Transaction{
		ID:         id,
		Material:   quote.Material,
		Weight:     weight,
		Rate:       quote.RatePerKg,
		Total:      weight * quote.RatePerKg,
		BuyerName:  quote.BuyerName,
		SellerName: sellerName,
		Timestamp:  at.UTC(),
		CO2Saved:   co2Saved,
	}
}
