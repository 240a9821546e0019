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

// BusinessResult is one raw business from the Yelp search API.
type BusinessResult struct {
	Name     string  `json:"name"`
	URL      string  `json:"url"`
	Rating   float64 `json:"rating"`
	Price    string  `json:"price"`
	ImageURL string  `json:"image_url"`
}

// Yelp is the provider client for the Yelp business search API. Unlike the
// other providers it authenticates with a bearer token header.
type Yelp struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewYelp(client *http.Client, apiKey string) *Yelp {
	return &Yelp{
		name:    "yelp",
		apiKey:  apiKey,
		baseURL: "https://api.yelp.com/v3/businesses/search",
		client:  client,
		circuit: newBreaker("yelp"),
	}
}

// Fetch returns raw restaurant results near the location.
func (y *Yelp) Fetch(ctx context.Context, loc explore.Location) ([]BusinessResult, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("term", "restaurants")
		values.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
		values.Set("longitude", fmt.Sprintf("%f", loc.Longitude))

		u := fmt.Sprintf("%s?%s", y.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+y.apiKey)
		return req, nil
	}

	var payload struct {
		Businesses []BusinessResult `json:"businesses"`
	}
	if err := fetchJSON(ctx, y.name, y.client, y.circuit, buildRequest, &payload); err != nil {
		return nil, err
	}
	return payload.Businesses, nil
}

// NormalizeBusiness maps one raw business into a Business record.
func NormalizeBusiness(b BusinessResult) (explore.Business, error) {
	if b.Name == "" {
		return explore.Business{}, &explore.NormalizationError{
			Kind: "business",
			Err:  errors.New("business missing name"),
		}
	}
	return explore.Business{
		Name:     b.Name,
		URL:      b.URL,
		Rating:   b.Rating,
		Price:    b.Price,
		ImageURL: b.ImageURL,
	}, nil
}
