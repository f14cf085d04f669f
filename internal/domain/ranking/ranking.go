// Package ranking orders buyer quotes for display.
package ranking

import (
	"errors"
	"slices"
	"strings"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/domain/geo"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Mode string

const (
	ModeHighest  Mode = "highest"
	ModeClosest  Mode = "closest"
	ModeMaterial Mode = "material"
)

var ErrUnknownMode = errors.New("unknown ranking mode")

// ParseMode maps a query value to a Mode. Empty means ModeHighest.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeHighest:
		return ModeHighest, nil
	case ModeClosest:
		return ModeClosest, nil
	case ModeMaterial:
		return ModeMaterial, nil
	}
	return "", ErrUnknownMode
}

// Rank returns a new slice with quotes ordered by mode. The input is not modified.
//
// All orderings are stable. ModeClosest puts quotes without coordinates last
// and keeps input order when reference is nil.
func Rank(quotes []entities.BuyerQuote, mode Mode, reference *entities.Coordinates) []entities.BuyerQuote {
	out := slices.Clone(quotes)
	if out == nil {
		out = []entities.BuyerQuote{}
	}

	switch mode {
	case ModeHighest:
		slices.SortStableFunc(out, func(a, b entities.BuyerQuote) int {
			switch {
			case a.RatePerKg > b.RatePerKg:
				return -1
			case a.RatePerKg < b.RatePerKg:
				return 1
			}
			return 0
		})
	case ModeClosest:
		if reference == nil {
			return out
		}
		ref := reference.Coord()
		dist := func(q entities.BuyerQuote) float64 {
			return geo.Between(ref, q.Coords.Coord())
		}
		slices.SortStableFunc(out, func(a, b entities.BuyerQuote) int {
			switch {
			case a.Coords == nil && b.Coords == nil:
				return 0
			case a.Coords == nil:
				return 1
			case b.Coords == nil:
				return -1
			}
			da, db := dist(a), dist(b)
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			}
			return 0
		})
	case ModeMaterial:
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b entities.BuyerQuote) int {
			return col.CompareString(a.Material, b.Material)
		})
	}
	return out
}

// DistanceFrom returns the distance from reference to the quote's buyer,
// and false when either side has no coordinates.
func DistanceFrom(reference *entities.Coordinates, q entities.BuyerQuote) (float64, bool) {
	if reference == nil || q.Coords == nil {
		return 0, false
	}
	return geo.Between(reference.Coord(), q.Coords.Coord()), true
}
