package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// Third-party provider credentials.
	GeocodeAPIKey string
	DarkSkyAPIKey string
	YelpAPIKey    string
	MovieDBAPIKey string
	TrailsAPIKey  string
	MeetupAPIKey  string

	// Shared outbound HTTP client timeout.
	HTTPTimeout time.Duration

	// JanitorInterval controls how often expired cache generations are swept.
	JanitorInterval time.Duration

	// Relational store connection.
	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.GeocodeAPIKey = os.Getenv("GEOCODE_API_KEY")
	cfg.DarkSkyAPIKey = os.Getenv("DARKSKY_API_KEY")
	cfg.YelpAPIKey = os.Getenv("YELP_API_KEY")
	cfg.MovieDBAPIKey = os.Getenv("MOVIEDB_API_KEY")
	cfg.TrailsAPIKey = os.Getenv("TRAILS_API_KEY")
	cfg.MeetupAPIKey = os.Getenv("MEETUP_API_KEY")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// Janitor interval: default 1 hour.
	intervalStr := getenvDefault("JANITOR_INTERVAL", "1h")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JANITOR_INTERVAL: %w", err)
	}
	cfg.JanitorInterval = interval

	cfg.DBUser = getenvDefault("DB_USER", "root")
	cfg.DBPass = os.Getenv("DB_PASS")
	cfg.DBHost = getenvDefault("DB_HOST", "127.0.0.1")
	cfg.DBPort = getenvDefault("DB_PORT", "3306")
	cfg.DBName = getenvDefault("DB_NAME", "city_explorer")

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
