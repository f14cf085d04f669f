package request

import (
	"errors"
	"strings"

	"nexus_recycle/internal/domain/entities"
)

var (
	ErrMissingCoordinates = errors.New("lat and lng are required")
)

type CoordinatesRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

func (r CoordinatesRequest) Resolve() (entities.Coordinates, error) {
	if r.Lat == nil || r.Lng == nil {
		return entities.Coordinates{}, ErrMissingCoordinates
	}
	return entities.Coordinates{Lat: *r.Lat, Lng: *r.Lng}, nil
}

// ProfileRequest is the signup payload (identity, entity type and an
// optional location consented during signup).
type ProfileRequest struct {
	FullName      string              `json:"full_name" binding:"required"`
	ContactNumber string              `json:"contact_number"`
	EntityType    string              `json:"entity_type" binding:"required"`
	Location      *CoordinatesRequest `json:"location"`
}

func (r ProfileRequest) ToEntity() (entities.UserProfile, error) {
	p := entities.UserProfile{
		FullName:      strings.TrimSpace(r.FullName),
		ContactNumber: strings.TrimSpace(r.ContactNumber),
		EntityType:    entities.EntityType(strings.TrimSpace(r.EntityType)),
	}
	if r.Location != nil {
		loc, err := r.Location.Resolve()
		if err != nil {
			return entities.UserProfile{}, err
		}
		p.Location = &loc
	}
	return p, nil
}

// LocationRequest carries a geolocation fix. ProfileID, when set, names the
// profile the fix was taken for.
type LocationRequest struct {
	ProfileID string `json:"profile_id"`
	CoordinatesRequest
}
