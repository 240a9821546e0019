package httpapi

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/city-explorer-api/internal/explore"
)

var validate = validator.New()

// failureMessage is the fixed body any core failure maps to; callers never
// see partial or kind-specific errors.
const failureMessage = "Sorry, something went wrong"

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *explore.Service) {
	app.Get("/location", func(c *fiber.Ctx) error {
		query := c.Query("data")
		if query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "data query parameter is required")
		}

		loc, err := service.ResolveLocation(c.Context(), query)
		if err != nil {
			return failure("location", err)
		}
		return c.JSON(loc)
	})

	app.Get("/weather", func(c *fiber.Ctx) error {
		loc, err := parseResolvedQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		days, err := service.Weather(c.Context(), loc)
		if err != nil {
			return failure("weather", err)
		}
		return c.JSON(days)
	})

	app.Get("/yelp", func(c *fiber.Ctx) error {
		loc, err := parseResolvedQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		businesses, err := service.Yelp(c.Context(), loc)
		if err != nil {
			return failure("yelp", err)
		}
		return c.JSON(businesses)
	})

	app.Get("/movies", func(c *fiber.Ctx) error {
		loc, err := parseResolvedQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		movies, err := service.Movies(c.Context(), loc)
		if err != nil {
			return failure("movies", err)
		}
		return c.JSON(movies)
	})

	app.Get("/trails", func(c *fiber.Ctx) error {
		loc, err := parseResolvedQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		trails, err := service.Trails(c.Context(), loc)
		if err != nil {
			return failure("trails", err)
		}
		return c.JSON(trails)
	})

	app.Get("/meetups", func(c *fiber.Ctx) error {
		loc, err := parseResolvedQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		events, err := service.Events(c.Context(), loc)
		if err != nil {
			return failure("meetups", err)
		}
		return c.JSON(events)
	})
}

// failure logs the real error and hides it behind the fixed 500 message.
func failure(route string, err error) error {
	log.Printf("%s: %v", route, err)
	return fiber.NewError(fiber.StatusInternalServerError, failureMessage)
}

// resolvedQuery holds the previously resolved location every dependent route
// receives.
type resolvedQuery struct {
	ID          int64   `validate:"required,gt=0"`
	Latitude    float64 `validate:"min=-90,max=90"`
	Longitude   float64 `validate:"min=-180,max=180"`
	SearchQuery string
}

func (q resolvedQuery) toLocation() explore.Location {
	return explore.Location{
		ID:          q.ID,
		Latitude:    q.Latitude,
		Longitude:   q.Longitude,
		SearchQuery: q.SearchQuery,
	}
}

func parseResolvedQuery(c *fiber.Ctx) (explore.Location, error) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		return explore.Location{}, errors.New("id query parameter is required")
	}
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return explore.Location{}, errors.New("latitude query parameter is required")
	}
	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return explore.Location{}, errors.New("longitude query parameter is required")
	}

	q := resolvedQuery{
		ID:          id,
		Latitude:    lat,
		Longitude:   lng,
		SearchQuery: c.Query("search_query"),
	}
	if err := validate.Struct(q); err != nil {
		return explore.Location{}, err
	}
	return q.toLocation(), nil
}
