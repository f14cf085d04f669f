package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nexus_recycle/internal/domain/entities"
	"nexus_recycle/internal/usecase/interfaces"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const (
	defaultBaseURL    = "https://places.googleapis.com/v1"
	defaultMaxResults = 5
	defaultRadiusM    = 10000.0

	fieldMask = "places.id,places.displayName,places.formattedAddress,places.location,places.googleMapsUri,places.nationalPhoneNumber"
)

type textSearchRequest struct {
	TextQuery      string        `json:"textQuery"`
	MaxResultCount int           `json:"maxResultCount,omitempty"`
	LocationBias   *locationBias `json:"locationBias,omitempty"`
}

type locationBias struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type textSearchResponse struct {
	Places []place `json:"places"`
}

type place struct {
	ID                  string      `json:"id"`
	DisplayName         displayName `json:"displayName"`
	FormattedAddress    string      `json:"formattedAddress"`
	Location            *latLng     `json:"location"`
	GoogleMapsURI       string      `json:"googleMapsUri"`
	NationalPhoneNumber string      `json:"nationalPhoneNumber"`
}

type displayName struct {
	Text string `json:"text"`
}

// Option configures the directory.
type Option func(*GoogleDirectory)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(d *GoogleDirectory) {
		if url != "" {
			d.baseURL = url
		}
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(d *GoogleDirectory) {
		d.http = hc
	}
}

// WithSearchArea sets how many places are requested and the bias radius in meters.
func WithSearchArea(maxResults int, radiusM float64) Option {
	return func(d *GoogleDirectory) {
		if maxResults > 0 {
			d.maxResults = maxResults
		}
		if radiusM > 0 {
			d.radiusM = radiusM
		}
	}
}

// GoogleDirectory finds recyclers near a point with Places API Text Search.
// Places never carry prices, so every listing has a nil rate.
type GoogleDirectory struct {
	apiKey     string
	baseURL    string
	http       *http.Client
	maxResults int
	radiusM    float64
}

var _ interfaces.IBuyerDirectory = (*GoogleDirectory)(nil)

func NewGoogleDirectory(apiKey string, opts ...Option) *GoogleDirectory {
	d := &GoogleDirectory{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		maxResults: defaultMaxResults,
		radiusM:    defaultRadiusM,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

func searchQuery(material string) string {
	if material == "" {
		return "waste management center or authorized recycler"
	}
	return fmt.Sprintf("authorized %s recycling center or scrap dealer", material)
}

func (d *GoogleDirectory) FindBuyers(ctx context.Context, near entities.Coordinates, material string) ([]entities.BuyerListing, error) {
	body, err := json.Marshal(textSearchRequest{
		TextQuery:      searchQuery(material),
		MaxResultCount: d.maxResults,
		LocationBias: &locationBias{Circle: circle{
			Center: latLng{Latitude: near.Lat, Longitude: near.Lng},
			Radius: d.radiusM,
		}},
	})
	if err != nil {
		return nil, eris.Wrap(err, "places: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/places:searchText", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "places: create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", d.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := d.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "places: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "places: read response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("places: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result textSearchResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "places: unmarshal response")
	}

	zap.L().Info("[places][google] text search done",
		zap.String("material", material),
		zap.Int("places", len(result.Places)),
	)
	return toListings(result.Places, material), nil
}

func toListings(places []place, material string) []entities.BuyerListing {
	out := make([]entities.BuyerListing, 0, len(places))
	for i, p := range places {
		l := entities.BuyerListing{
			ID:            fmt.Sprintf("govt-auth-%d", i),
			BuyerName:     p.DisplayName.Text,
			Material:      material,
			Location:      p.FormattedAddress,
			ContactNumber: p.NationalPhoneNumber,
			URI:           p.GoogleMapsURI,
		}
		if l.BuyerName == "" {
			l.BuyerName = fmt.Sprintf("Authorized Recycler %d", i+1)
		}
		if l.Location == "" {
			l.Location = p.DisplayName.Text
		}
		if l.Location == "" {
			l.Location = "Local Collection Hub"
		}
		if p.Location != nil {
			l.Coords = &entities.Coordinates{Lat: p.Location.Latitude, Lng: p.Location.Longitude}
		}
		out = append(out, l)
	}
	return out
}
