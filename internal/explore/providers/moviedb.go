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

// posterBaseURL is the fixed TheMovieDB image host the poster path fragment
// is interpolated into.
const posterBaseURL = "http://image.tmdb.org/t/p/w185"

// MovieResult is one raw result from the TheMovieDB search API.
type MovieResult struct {
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
	PosterPath  string  `json:"poster_path"`
	Overview    string  `json:"overview"`
}

// MovieDB is the provider client for the TheMovieDB search API.
type MovieDB struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewMovieDB(client *http.Client, apiKey string) *MovieDB {
	return &MovieDB{
		name:    "moviedb",
		apiKey:  apiKey,
		baseURL: "https://api.themoviedb.org/3/search/movie",
		client:  client,
		circuit: newBreaker("moviedb"),
	}
}

// Fetch searches movies by the location's original search text.
func (m *MovieDB) Fetch(ctx context.Context, loc explore.Location) ([]MovieResult, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("query", loc.SearchQuery)
		values.Set("api_key", m.apiKey)

		u := fmt.Sprintf("%s?%s", m.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Results []MovieResult `json:"results"`
	}
	if err := fetchJSON(ctx, m.name, m.client, m.circuit, buildRequest, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// NormalizeMovie maps one raw search result into a MovieSummary, building the
// poster URL from the path fragment. Movies without a poster get an empty
// image URL.
func NormalizeMovie(m MovieResult) (explore.MovieSummary, error) {
	if m.Title == "" {
		return explore.MovieSummary{}, &explore.NormalizationError{
			Kind: "movie",
			Err:  errors.New("movie missing title"),
		}
	}

	imageURL := ""
	if m.PosterPath != "" {
		imageURL = posterBaseURL + "/" + strings.TrimPrefix(m.PosterPath, "/")
	}

	return explore.MovieSummary{
		Title:        m.Title,
		ReleasedOn:   m.ReleaseDate,
		AverageVotes: m.VoteAverage,
		TotalVotes:   m.VoteCount,
		Popularity:   m.Popularity,
		ImageURL:     imageURL,
		Overview:     m.Overview,
	}, nil
}
