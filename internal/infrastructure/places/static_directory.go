package places

import (
	"context"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase/interfaces"

	"golang.org/x/text/cases"
)

func rate(v float64) *float64 { return &v }

// DemoBuyers is the built-in buyer catalog used when no Places key is configured.
var DemoBuyers = []entities.BuyerListing{
	{ID: "b1", BuyerName: "EcoRecycle Corp", Material: "Plastic", RatePerKg: rate(0.5), Location: "Downtown Hub", ContactNumber: "+1 (555) 123-4567", Coords: &entities.Coordinates{Lat: 37.7749, Lng: -122.4194}},
	{ID: "b2", BuyerName: "MetalWorks Ltd", Material: "Copper", RatePerKg: rate(5.2), Location: "Industrial Zone", ContactNumber: "+1 (555) 987-6543", Coords: &entities.Coordinates{Lat: 37.7858, Lng: -122.4064}},
	{ID: "b3", BuyerName: "Green Fiber NGO", Material: "Paper", RatePerKg: rate(0.15), Location: "Community Center", ContactNumber: "+1 (555) 444-3322", Coords: &entities.Coordinates{Lat: 37.7649, Lng: -122.4294}},
	{ID: "b4", BuyerName: "Urban Glass Solutions", Material: "Glass", RatePerKg: rate(0.3), Location: "North District", ContactNumber: "+1 (555) 111-9988", Coords: &entities.Coordinates{Lat: 37.8049, Lng: -122.4094}},
	{ID: "b5", BuyerName: "Tech Salvage", Material: "Electronic", RatePerKg: rate(2.5), Location: "East Tech Park", ContactNumber: "+1 (555) 222-3333", Coords: &entities.Coordinates{Lat: 37.7749, Lng: -122.3894}},
	{ID: "b6", BuyerName: "Scrap Kings", Material: "Aluminium", RatePerKg: rate(1.8), Location: "West Yard", ContactNumber: "+1 (555) 777-0000", Coords: &entities.Coordinates{Lat: 37.7549, Lng: -122.4494}},
}

// StaticDirectory serves a fixed catalog. Buyers for the requested material
// come back when there are any; otherwise the whole catalog does.
type StaticDirectory struct {
	buyers []entities.BuyerListing
}

var _ interfaces.IBuyerDirectory = (*StaticDirectory)(nil)

// NewStaticDirectory serves buyers, or DemoBuyers when buyers is nil.
func NewStaticDirectory(buyers []entities.BuyerListing) *StaticDirectory {
	if buyers == nil {
		buyers = DemoBuyers
	}
	return &StaticDirectory{buyers: buyers}
}

func (d *StaticDirectory) FindBuyers(ctx context.Context, _ entities.Coordinates, material string) ([]entities.BuyerListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fold := cases.Fold()
	want := fold.String(material)
	var matched []entities.BuyerListing
	if material != "" {
		for _, b := range d.buyers {
			if fold.String(b.Material) == want {
				matched = append(matched, cloneListing(b))
			}
		}
	}
	if len(matched) > 0 {
		return matched, nil
	}

	out := make([]entities.BuyerListing, 0, len(d.buyers))
	for _, b := range d.buyers {
		out = append(out, cloneListing(b))
	}
	return out, nil
}

func cloneListing(b entities.BuyerListing) entities.BuyerListing {
	if b.RatePerKg != nil {
		b.RatePerKg = rate(*b.RatePerKg)
	}
	if b.Coords != nil {
		c := *b.Coords
		b.Coords = &c
	}
	return b
}
