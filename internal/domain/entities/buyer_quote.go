package entities

// MixedWasteMaterial labels quotes discovered without a material filter.
const MixedWasteMaterial = "Mixed Waste"

// BuyerQuote is a buyer's offer to purchase a material at a per-kg rate.
//
// Quotes are never persisted; they are rediscovered whenever the user's
// location or the scanned material changes.
type BuyerQuote struct {
	ID            string       `json:"id"`
	BuyerName     string       `json:"buyerName"`
	Material      string       `json:"material"`
	RatePerKg     float64      `json:"ratePerKg"`
	Location      string       `json:"location"`
	Coords        *Coordinates `json:"coords,omitempty"`
	ContactNumber string       `json:"contactNumber,omitempty"`
	URI           string       `json:"uri,omitempty"`
}

// BuyerListing is a raw record returned by a buyer directory.
// RatePerKg is nil when the directory does not publish a price.
type BuyerListing struct {
	ID            string
	BuyerName     string
	Material      string
	RatePerKg     *float64
	Location      string
	Coords        *Coordinates
	ContactNumber string
	URI           string
}
