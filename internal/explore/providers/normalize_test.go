package providers

import (
	"errors"
	"testing"

	"github.com/i474232898/city-explorer-api/internal/explore"
)

func TestNormalizeWeatherDayTruncatesDate(t *testing.T) {
	day, err := NormalizeWeatherDay(ForecastDay{
		Summary: "Partly cloudy throughout the day.",
		Time:    1546300800, // 2019-01-01T00:00:00Z
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.Forecast != "Partly cloudy throughout the day." {
		t.Errorf("Forecast = %q", day.Forecast)
	}
	if day.Time != "Tue Jan 01 2019" {
		t.Errorf("Time = %q, want Tue Jan 01 2019", day.Time)
	}
}

func TestNormalizeWeatherDayMissingTime(t *testing.T) {
	_, err := NormalizeWeatherDay(ForecastDay{Summary: "Clear"})
	var ne *explore.NormalizationError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NormalizationError, got %v", err)
	}
}

func TestNormalizeMovieBuildsPosterURL(t *testing.T) {
	m, err := NormalizeMovie(MovieResult{
		Title:       "Sleepless in Seattle",
		ReleaseDate: "1993-06-24",
		VoteAverage: 6.7,
		VoteCount:   1571,
		Popularity:  13.9,
		PosterPath:  "/afkYP1KUctZfQxEEe6fwAnF2GKs.jpg",
		Overview:    "A widower's son calls a radio show.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "http://image.tmdb.org/t/p/w185/afkYP1KUctZfQxEEe6fwAnF2GKs.jpg"
	if m.ImageURL != want {
		t.Errorf("ImageURL = %q, want %q", m.ImageURL, want)
	}
	if m.ReleasedOn != "1993-06-24" || m.TotalVotes != 1571 {
		t.Errorf("unexpected movie: %+v", m)
	}
}

func TestNormalizeMovieWithoutPoster(t *testing.T) {
	m, err := NormalizeMovie(MovieResult{Title: "Obscure Film"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ImageURL != "" {
		t.Errorf("ImageURL = %q, want empty", m.ImageURL)
	}
}

func TestNormalizeMovieMissingTitle(t *testing.T) {
	_, err := NormalizeMovie(MovieResult{})
	var ne *explore.NormalizationError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NormalizationError, got %v", err)
	}
}

func TestNormalizeTrailSplitsConditionDate(t *testing.T) {
	tr, err := NormalizeTrail(TrailResult{
		Name:             "Rattlesnake Ledge",
		URL:              "https://www.hikingproject.com/trail/7021679",
		Location:         "North Bend, Washington",
		Length:           4.3,
		Stars:            4.4,
		StarVotes:        84,
		Summary:          "An extremely popular out-and-back hike.",
		ConditionDetails: "Dry",
		ConditionDate:    "2019-07-21 14:12:01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.ConditionDate != "2019-07-21" {
		t.Errorf("ConditionDate = %q", tr.ConditionDate)
	}
	if tr.ConditionTime != "14:12:01" {
		t.Errorf("ConditionTime = %q", tr.ConditionTime)
	}
}

func TestNormalizeTrailEmptyConditionDate(t *testing.T) {
	tr, err := NormalizeTrail(TrailResult{Name: "Unnamed Spur"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.ConditionDate != "" || tr.ConditionTime != "" {
		t.Errorf("expected empty condition fields, got %q / %q", tr.ConditionDate, tr.ConditionTime)
	}
}

func TestNormalizeEventFormatsCreationDate(t *testing.T) {
	e, err := NormalizeEvent(EventResult{
		Link:    "https://www.meetup.com/seattle-go/events/1",
		Name:    "Go Meetup",
		Created: 1546300800000, // milliseconds
		Group: struct {
			Name string `json:"name"`
		}{Name: "Seattle Go"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Host != "Seattle Go" {
		t.Errorf("Host = %q", e.Host)
	}
	if e.CreationDate != "Tue Jan 01 2019" {
		t.Errorf("CreationDate = %q, want Tue Jan 01 2019", e.CreationDate)
	}
}
