package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/city-explorer-api/internal/explore"
)

// TrailResult is one raw trail from the Hiking Project API.
type TrailResult struct {
	Name             string  `json:"name"`
	URL              string  `json:"url"`
	Location         string  `json:"location"`
	Length           float64 `json:"length"`
	Stars            float64 `json:"stars"`
	StarVotes        int64   `json:"starVotes"`
	Summary          string  `json:"summary"`
	ConditionDetails string  `json:"conditionDetails"`
	ConditionDate    string  `json:"conditionDate"`
}

// HikingProject is the provider client for the Hiking Project trails API.
type HikingProject struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewHikingProject(client *http.Client, apiKey string) *HikingProject {
	return &HikingProject{
		name:    "hikingproject",
		apiKey:  apiKey,
		baseURL: "https://www.hikingproject.com/data/get-trails",
		client:  client,
		circuit: newBreaker("hikingproject"),
	}
}

// Fetch returns raw trails near the location.
func (h *HikingProject) Fetch(ctx context.Context, loc explore.Location) ([]TrailResult, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", fmt.Sprintf("%f", loc.Latitude))
		values.Set("lon", fmt.Sprintf("%f", loc.Longitude))
		values.Set("key", h.apiKey)

		u := fmt.Sprintf("%s?%s", h.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Trails []TrailResult `json:"trails"`
	}
	if err := fetchJSON(ctx, h.name, h.client, h.circuit, buildRequest, &payload); err != nil {
		return nil, err
	}
	return payload.Trails, nil
}

// NormalizeTrail maps one raw trail into a Trail record. The provider's
// conditionDate carries "YYYY-MM-DD HH:MM:SS"; the two halves are exposed as
// separate fields.
func NormalizeTrail(t TrailResult) (explore.Trail, error) {
	if t.Name == "" {
		return explore.Trail{}, &explore.NormalizationError{
			Kind: "trail",
			Err:  errors.New("trail missing name"),
		}
	}

	var condDate, condTime string
	if t.ConditionDate != "" {
		parts := strings.SplitN(t.ConditionDate, " ", 2)
		condDate = parts[0]
		if len(parts) == 2 {
			condTime = parts[1]
		}
	}

	return explore.Trail{
		Name:          t.Name,
		TrailURL:      t.URL,
		Location:      t.Location,
		Length:        t.Length,
		Stars:         t.Stars,
		StarVotes:     t.StarVotes,
		Summary:       t.Summary,
		Conditions:    t.ConditionDetails,
		ConditionDate: condDate,
		ConditionTime: condTime,
	}, nil
}
