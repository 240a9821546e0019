package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/i474232898/city-explorer-api/internal/explore"
)

// GeocodeResult is one raw result from the Google Geocoding API.
type GeocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// Geocoder is the provider client for the Google Geocoding API.
type Geocoder struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewGeocoder(client *http.Client, apiKey string) *Geocoder {
	return &Geocoder{
		name:    "geocode",
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/geocode/json",
		client:  client,
		circuit: newBreaker("geocode"),
	}
}

// Fetch geocodes a free-text address and returns the raw result list.
func (g *Geocoder) Fetch(ctx context.Context, query string) ([]GeocodeResult, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("address", query)
		values.Set("key", g.apiKey)

		u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Results []GeocodeResult `json:"results"`
	}
	if err := fetchJSON(ctx, g.name, g.client, g.circuit, buildRequest, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// NormalizeLocation maps the first geocode result into a Location for the
// submitted query. Zero results is a malformed-shape fault.
func NormalizeLocation(query string, results []GeocodeResult) (explore.Location, error) {
	if len(results) == 0 {
		return explore.Location{}, &explore.NormalizationError{
			Kind: "location",
			Err:  fmt.Errorf("no geocode results for %q", query),
		}
	}
	first := results[0]
	if first.FormattedAddress == "" {
		return explore.Location{}, &explore.NormalizationError{
			Kind: "location",
			Err:  errors.New("geocode result missing formatted_address"),
		}
	}
	return explore.Location{
		SearchQuery:    query,
		FormattedQuery: first.FormattedAddress,
		Latitude:       first.Geometry.Location.Lat,
		Longitude:      first.Geometry.Location.Lng,
	}, nil
}

// GeocodeFunc composes Fetch and NormalizeLocation into the resolver's
// contract.
func (g *Geocoder) GeocodeFunc() explore.GeocodeFunc {
	return func(ctx context.Context, query string) (explore.Location, error) {
		results, err := g.Fetch(ctx, query)
		if err != nil {
			return explore.Location{}, err
		}
		return NormalizeLocation(query, results)
	}
}
