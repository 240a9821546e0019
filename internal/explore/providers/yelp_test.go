package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/i474232898/city-explorer-api/internal/explore"
)

func TestYelpFetchSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer yelp-key" {
			t.Errorf("Authorization = %q, want Bearer yelp-key", got)
		}
		if got := r.URL.Query().Get("term"); got != "restaurants" {
			t.Errorf("term = %q, want restaurants", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"businesses": [{
				"name": "Pike Place Chowder",
				"url": "https://yelp.com/biz/pike-place-chowder",
				"rating": 4.5,
				"price": "$$",
				"image_url": "https://img.yelp.com/chowder.jpg"
			}]
		}`))
	}))
	defer srv.Close()

	y := NewYelp(srv.Client(), "yelp-key")
	y.baseURL = srv.URL

	results, err := y.Fetch(context.Background(), explore.Location{Latitude: 47.6062, Longitude: -122.3321})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 business, got %d", len(results))
	}

	b, err := NormalizeBusiness(results[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Name != "Pike Place Chowder" || b.Rating != 4.5 || b.Price != "$$" {
		t.Fatalf("unexpected business: %+v", b)
	}
	if b.ImageURL != "https://img.yelp.com/chowder.jpg" {
		t.Fatalf("unexpected image url: %q", b.ImageURL)
	}
}

func TestYelpEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"businesses": []}`))
	}))
	defer srv.Close()

	y := NewYelp(srv.Client(), "yelp-key")
	y.baseURL = srv.URL

	results, err := y.Fetch(context.Background(), explore.Location{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result set, got %d", len(results))
	}
}
