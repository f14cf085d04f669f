package request

type SelectQuoteRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}
