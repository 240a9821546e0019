package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/city-explorer-api/internal/explore"
)

// EventResult is one raw upcoming event from the Meetup API. Created is in
// Unix milliseconds.
type EventResult struct {
	Link    string `json:"link"`
	Name    string `json:"name"`
	Created int64  `json:"created"`
	Group   struct {
		Name string `json:"name"`
	} `json:"group"`
}

// Meetup is the provider client for the Meetup upcoming-events API.
type Meetup struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewMeetup(client *http.Client, apiKey string) *Meetup {
	return &Meetup{
		name:    "meetup",
		apiKey:  apiKey,
		baseURL: "https://api.meetup.com/find/upcoming_events",
		client:  client,
		circuit: newBreaker("meetup"),
	}
}

// Fetch returns raw upcoming events near the location.
func (m *Meetup) Fetch(ctx context.Context, loc explore.Location) ([]EventResult, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", fmt.Sprintf("%f", loc.Latitude))
		values.Set("lon", fmt.Sprintf("%f", loc.Longitude))
		values.Set("page", "20")
		values.Set("key", m.apiKey)

		u := fmt.Sprintf("%s?%s", m.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Events []EventResult `json:"events"`
	}
	if err := fetchJSON(ctx, m.name, m.client, m.circuit, buildRequest, &payload); err != nil {
		return nil, err
	}
	return payload.Events, nil
}

// NormalizeEvent maps one raw event into an Event record with the same
// truncated date form the other kinds use.
func NormalizeEvent(e EventResult) (explore.Event, error) {
	if e.Name == "" {
		return explore.Event{}, &explore.NormalizationError{
			Kind: "event",
			Err:  errors.New("event missing name"),
		}
	}
	return explore.Event{
		Link:         e.Link,
		Name:         e.Name,
		Host:         e.Group.Name,
		CreationDate: time.UnixMilli(e.Created).UTC().Format("Mon Jan 02 2006"),
	}, nil
}
