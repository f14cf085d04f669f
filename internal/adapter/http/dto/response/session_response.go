package response

import "nexus_recycle/internal/domain/entities"

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ProfileResponse struct {
	ID            string               `json:"id"`
	FullName      string               `json:"full_name"`
	ContactNumber string               `json:"contact_number"`
	EntityType    string               `json:"entity_type"`
	Location      *CoordinatesResponse `json:"location"`
}

// LocationUpdateResponse reports whether a geolocation fix was applied.
// Fixes for an ended or different session are acknowledged but dropped.
type LocationUpdateResponse struct {
	Applied bool             `json:"applied"`
	Profile *ProfileResponse `json:"profile,omitempty"`
	Warning string           `json:"warning,omitempty"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Warning string `json:"warning,omitempty"`
}

func fromCoordinates(c *entities.Coordinates) *CoordinatesResponse {
	if c == nil {
		return nil
	}
	return &CoordinatesResponse{Lat: c.Lat, Lng: c.Lng}
}

func FromProfile(p entities.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:            p.ID,
		FullName:      p.FullName,
		ContactNumber: p.ContactNumber,
		EntityType:    string(p.EntityType),
		Location:      fromCoordinates(p.Location),
	}
}
