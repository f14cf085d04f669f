// Package geo computes great-circle distances.
package geo

import (
	"math"

	"github.com/twpayne/go-geom"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine distance in kilometres between two
// points given in degrees.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Rounding can push a just outside [0, 1] for near-antipodal points.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// Between is DistanceKm for XY coordinates where X is longitude and Y latitude.
func Between(a, b geom.Coord) float64 {
	return DistanceKm(a.Y(), a.X(), b.Y(), b.X())
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
