package entities

import (
	"math"

	"github.com/twpayne/go-geom"
)

// EntityType classifies who is selling the material.
type EntityType string

const (
	EntityTypeHome     EntityType = "Home"
	EntityTypeShop     EntityType = "Shop"
	EntityTypeIndustry EntityType = "Industry"
	EntityTypeNGO      EntityType = "NGO"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityTypeHome, EntityTypeShop, EntityTypeIndustry, EntityTypeNGO:
		return true
	}
	return false
}

// Coordinates is a WGS84 position in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Coord returns the position as an XY go-geom coordinate (X = lng, Y = lat).
func (c Coordinates) Coord() geom.Coord {
	return geom.Coord{c.Lng, c.Lat}
}

// UserProfile is the single signed-in seller.
//
// Location is nil until the user grants geolocation consent.
type UserProfile struct {
	ID            string       `json:"id"`
	FullName      string       `json:"fullName"`
	ContactNumber string       `json:"contactNumber"`
	EntityType    EntityType   `json:"entityType"`
	Location      *Coordinates `json:"location,omitempty"`
}

func (p UserProfile) HasLocation() bool {
	return p.Location != nil
}
