package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/city-explorer-api/internal/explore"
)

// ForecastDay is one raw daily entry from the Dark Sky forecast API.
type ForecastDay struct {
	Summary string `json:"summary"`
	Time    int64  `json:"time"`
}

// DarkSky is the provider client for the Dark Sky forecast API.
type DarkSky struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewDarkSky(client *http.Client, apiKey string) *DarkSky {
	return &DarkSky{
		name:    "darksky",
		apiKey:  apiKey,
		baseURL: "https://api.darksky.net/forecast",
		client:  client,
		circuit: newBreaker("darksky"),
	}
}

// Fetch returns the raw daily forecast entries for the location.
func (d *DarkSky) Fetch(ctx context.Context, loc explore.Location) ([]ForecastDay, error) {
	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s/%s/%f,%f", d.baseURL, d.apiKey, loc.Latitude, loc.Longitude)
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Daily struct {
			Data []ForecastDay `json:"data"`
		} `json:"daily"`
	}
	if err := fetchJSON(ctx, d.name, d.client, d.circuit, buildRequest, &payload); err != nil {
		return nil, err
	}
	return payload.Daily.Data, nil
}

// NormalizeWeatherDay maps one raw daily entry into a WeatherDay. The time
// field is the Unix timestamp truncated to the legacy "Mon Jan 02 2006" form.
func NormalizeWeatherDay(day ForecastDay) (explore.WeatherDay, error) {
	if day.Time == 0 {
		return explore.WeatherDay{}, &explore.NormalizationError{
			Kind: "weather",
			Err:  errors.New("forecast day missing time"),
		}
	}
	return explore.WeatherDay{
		Forecast: day.Summary,
		Time:     time.Unix(day.Time, 0).UTC().Format("Mon Jan 02 2006"),
	}, nil
}
