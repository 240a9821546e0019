package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "github.com/i474232898/city-explorer-api/internal/api/http"
	"github.com/i474232898/city-explorer-api/internal/config"
	"github.com/i474232898/city-explorer-api/internal/database"
	"github.com/i474232898/city-explorer-api/internal/explore"
	"github.com/i474232898/city-explorer-api/internal/explore/providers"
	"github.com/i474232898/city-explorer-api/internal/janitor"
	"github.com/i474232898/city-explorer-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Relational cache store.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(schemaCtx, db); err != nil {
		cancelSchema()
		log.Fatalf("failed to ensure schema: %v", err)
	}
	cancelSchema()

	locationRepo := store.NewLocationRepo(db)
	weatherRepo := store.NewWeatherRepo(db)
	businessRepo := store.NewBusinessRepo(db)
	movieRepo := store.NewMovieRepo(db)

	// Provider clients, each behind its own circuit breaker.
	geocoder := providers.NewGeocoder(httpClient, cfg.GeocodeAPIKey)
	darksky := providers.NewDarkSky(httpClient, cfg.DarkSkyAPIKey)
	yelp := providers.NewYelp(httpClient, cfg.YelpAPIKey)
	moviedb := providers.NewMovieDB(httpClient, cfg.MovieDBAPIKey)
	hiking := providers.NewHikingProject(httpClient, cfg.TrailsAPIKey)
	meetup := providers.NewMeetup(httpClient, cfg.MeetupAPIKey)

	// One lookup-or-fetch cache per persisted resource kind; trails and
	// meetups stay transient.
	weatherCache := explore.NewCache(explore.Resource[providers.ForecastDay, explore.WeatherDay]{
		Kind:      "weather",
		Freshness: explore.WeatherFreshness,
		Fetch:     darksky.Fetch,
		Normalize: providers.NormalizeWeatherDay,
	}, weatherRepo)

	yelpCache := explore.NewCache(explore.Resource[providers.BusinessResult, explore.Business]{
		Kind:      "yelp",
		Freshness: explore.BusinessFreshness,
		Fetch:     yelp.Fetch,
		Normalize: providers.NormalizeBusiness,
	}, businessRepo)

	movieCache := explore.NewCache(explore.Resource[providers.MovieResult, explore.MovieSummary]{
		Kind:      "movies",
		Freshness: explore.MovieFreshness,
		Fetch:     moviedb.Fetch,
		Normalize: providers.NormalizeMovie,
	}, movieRepo)

	trails := explore.Transient[providers.TrailResult, explore.Trail]{
		Kind:      "trails",
		Fetch:     hiking.Fetch,
		Normalize: providers.NormalizeTrail,
	}

	events := explore.Transient[providers.EventResult, explore.Event]{
		Kind:      "meetups",
		Fetch:     meetup.Fetch,
		Normalize: providers.NormalizeEvent,
	}

	resolver := explore.NewResolver(locationRepo, geocoder.GeocodeFunc())
	service := explore.NewService(resolver, weatherCache, yelpCache, movieCache, trails, events)

	// Janitor sweeping expired cache generations in the background.
	sweeper := janitor.New([]janitor.Task{
		{Kind: "weather", TTL: explore.WeatherFreshness, Purge: weatherRepo.DeleteOlderThan},
		{Kind: "businesses", TTL: explore.BusinessFreshness, Purge: businessRepo.DeleteOlderThan},
		{Kind: "movies", TTL: explore.MovieFreshness, Purge: movieRepo.DeleteOlderThan},
	}, cfg.JanitorInterval)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("failed to start janitor: %v", err)
	}
	defer sweeper.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "city-explorer-api",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "city-explorer-api",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	// Start server with graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
