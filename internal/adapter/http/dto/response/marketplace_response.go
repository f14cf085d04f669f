package response

import (
	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase"
)

type QuoteResponse struct {
	ID                string               `json:"id"`
	BuyerName         string               `json:"buyer_name"`
	Material          string               `json:"material"`
	RatePerKg         float64              `json:"rate_per_kg"`
	Location          string               `json:"location"`
	Coords            *CoordinatesResponse `json:"coords,omitempty"`
	ContactNumber     string               `json:"contact_number,omitempty"`
	URI               string               `json:"uri,omitempty"`
	DistanceKm        *float64             `json:"distance_km,omitempty"`
	EstimatedWeightKg *float64             `json:"estimated_weight_kg,omitempty"`
	EstimatedPayout   *float64             `json:"estimated_payout,omitempty"`
}

type BuyerBoardResponse struct {
	Sort      string              `json:"sort"`
	Material  string              `json:"material"`
	Reference CoordinatesResponse `json:"reference"`
	Quotes    []QuoteResponse     `json:"quotes"`
}

func FromQuote(q entities.BuyerQuote) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		BuyerName:     q.BuyerName,
		Material:      q.Material,
		RatePerKg:     q.RatePerKg,
		Location:      q.Location,
		Coords:        fromCoordinates(q.Coords),
		ContactNumber: q.ContactNumber,
		URI:           q.URI,
	}
}

func FromBuyerBoard(b usecase.BuyerBoard) BuyerBoardResponse {
	res := BuyerBoardResponse{
		Sort:      string(b.Mode),
		Material:  b.Material,
		Reference: CoordinatesResponse{Lat: b.Reference.Lat, Lng: b.Reference.Lng},
		Quotes:    make([]QuoteResponse, 0, len(b.Quotes)),
	}
	if res.Material == "" {
		res.Material = entities.MixedWasteMaterial
	}
	for _, v := range b.Quotes {
		q := FromQuote(v.BuyerQuote)
		q.DistanceKm = v.DistanceKm
		q.EstimatedWeightKg = v.EstimatedWeightKg
		q.EstimatedPayout = v.EstimatedPayout
		res.Quotes = append(res.Quotes, q)
	}
	return res
}
