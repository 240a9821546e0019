package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/i474232898/city-explorer-api/internal/explore"
)

func TestGeocoderFetchAndNormalize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("address"); got != "Seattle" {
			t.Errorf("address = %q, want Seattle", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q, want test-key", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [{
				"formatted_address": "Seattle, WA, USA",
				"geometry": {"location": {"lat": 47.6062, "lng": -122.3321}}
			}]
		}`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.Client(), "test-key")
	g.baseURL = srv.URL

	results, err := g.Fetch(context.Background(), "Seattle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	loc, err := NormalizeLocation("Seattle", results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.SearchQuery != "Seattle" {
		t.Errorf("SearchQuery = %q", loc.SearchQuery)
	}
	if loc.FormattedQuery != "Seattle, WA, USA" {
		t.Errorf("FormattedQuery = %q", loc.FormattedQuery)
	}
	if loc.Latitude != 47.6062 || loc.Longitude != -122.3321 {
		t.Errorf("coordinates = %f,%f", loc.Latitude, loc.Longitude)
	}
}

func TestNormalizeLocationZeroResults(t *testing.T) {
	_, err := NormalizeLocation("Atlantis", nil)
	var ne *explore.NormalizationError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NormalizationError, got %v", err)
	}
}

func TestGeocoderServerErrorIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGeocoder(srv.Client(), "test-key")
	g.baseURL = srv.URL

	_, err := g.Fetch(context.Background(), "Seattle")
	var te *explore.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}
