package explore

import "context"

// Lookuper serves the normalized records of one resource kind for a resolved
// location. Cached kinds are backed by a Cache, transient kinds by a
// Transient.
type Lookuper[T any] interface {
	Lookup(ctx context.Context, loc Location) ([]T, error)
}

// Transient serves kinds that are fetched and normalized per request but
// never persisted (trails, events).
type Transient[R, T any] struct {
	Kind      string
	Fetch     func(ctx context.Context, loc Location) ([]R, error)
	Normalize func(raw R) (T, error)
}

// Lookup fetches and normalizes without touching any store.
func (t Transient[R, T]) Lookup(ctx context.Context, loc Location) ([]T, error) {
	raws, err := t.Fetch(ctx, loc)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		rec, err := t.Normalize(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Service is the facade the HTTP layer talks to: one resolver plus one
// lookuper per resource kind.
type Service struct {
	resolver *Resolver
	weather  Lookuper[WeatherDay]
	yelp     Lookuper[Business]
	movies   Lookuper[MovieSummary]
	trails   Lookuper[Trail]
	events   Lookuper[Event]
}

// NewService wires the resolver and per-kind lookupers into a Service.
func NewService(
	resolver *Resolver,
	weather Lookuper[WeatherDay],
	yelp Lookuper[Business],
	movies Lookuper[MovieSummary],
	trails Lookuper[Trail],
	events Lookuper[Event],
) *Service {
	return &Service{
		resolver: resolver,
		weather:  weather,
		yelp:     yelp,
		movies:   movies,
		trails:   trails,
		events:   events,
	}
}

// ResolveLocation resolves a free-text query into a stored Location.
func (s *Service) ResolveLocation(ctx context.Context, query string) (Location, error) {
	return s.resolver.Resolve(ctx, query)
}

// Weather returns the forecast for a resolved location.
func (s *Service) Weather(ctx context.Context, loc Location) ([]WeatherDay, error) {
	return s.weather.Lookup(ctx, loc)
}

// Yelp returns businesses near a resolved location.
func (s *Service) Yelp(ctx context.Context, loc Location) ([]Business, error) {
	return s.yelp.Lookup(ctx, loc)
}

// Movies returns movies matching the location's search query.
func (s *Service) Movies(ctx context.Context, loc Location) ([]MovieSummary, error) {
	return s.movies.Lookup(ctx, loc)
}

// Trails returns trails near a resolved location.
func (s *Service) Trails(ctx context.Context, loc Location) ([]Trail, error) {
	return s.trails.Lookup(ctx, loc)
}

// Events returns upcoming events near a resolved location.
func (s *Service) Events(ctx context.Context, loc Location) ([]Event, error) {
	return s.events.Lookup(ctx, loc)
}
