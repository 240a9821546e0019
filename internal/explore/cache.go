package explore

import (
	"context"
	"log"
	"time"
)

// Freshness windows per cached resource kind. Real-world volatility differs:
// weather changes in minutes, restaurant listings in weeks, movie popularity
// in a month.
const (
	WeatherFreshness  = 30 * time.Minute
	BusinessFreshness = 14 * 24 * time.Hour
	MovieFreshness    = 30 * 24 * time.Hour
)

// Resource describes one cached resource kind declaratively: how long a
// generation stays fresh, how to fetch the raw provider items, and how to map
// one raw item into its normalized record.
type Resource[R, T any] struct {
	Kind      string
	Freshness time.Duration
	Fetch     func(ctx context.Context, loc Location) ([]R, error)
	Normalize func(raw R) (T, error)
}

// Cache runs the shared lookup-or-fetch protocol for one resource kind:
//
//	CHECK_CACHE -> HIT_FRESH -> respond stored rows
//	            -> HIT_STALE -> delete generation, then as MISS
//	            -> MISS      -> fetch, normalize, persist, respond
type Cache[R, T any] struct {
	resource Resource[R, T]
	store    GenerationStore[T]
	now      func() time.Time
}

// NewCache builds a Cache for one resource descriptor backed by the given
// generation store.
func NewCache[R, T any](resource Resource[R, T], store GenerationStore[T]) *Cache[R, T] {
	return &Cache[R, T]{
		resource: resource,
		store:    store,
		now:      time.Now,
	}
}

// Lookup serves the location's cached generation when fresh, otherwise
// invalidates it and refreshes from the provider. A provider or
// normalization failure aborts without touching the store; a persist failure
// after a successful fetch is logged and the fetched batch is still returned.
func (c *Cache[R, T]) Lookup(ctx context.Context, loc Location) ([]T, error) {
	rows, createdAt, err := c.store.FindByLocation(ctx, loc.ID)
	if err != nil {
		return nil, &StoreError{Op: c.resource.Kind + " find", Err: err}
	}

	if len(rows) > 0 {
		if c.now().Sub(createdAt) <= c.resource.Freshness {
			return rows, nil
		}
		// Stale: the whole generation goes at once.
		if err := c.store.DeleteByLocation(ctx, loc.ID); err != nil {
			return nil, &StoreError{Op: c.resource.Kind + " delete", Err: err}
		}
	}

	raws, err := c.resource.Fetch(ctx, loc)
	if err != nil {
		return nil, err
	}

	fresh := make([]T, 0, len(raws))
	for _, raw := range raws {
		rec, err := c.resource.Normalize(raw)
		if err != nil {
			return nil, err
		}
		fresh = append(fresh, rec)
	}

	if err := c.store.InsertMany(ctx, loc.ID, fresh); err != nil {
		// The fetch already succeeded; serve the batch and accept that this
		// generation was not persisted.
		log.Printf("cache %s: persist failed for location %d: %v", c.resource.Kind, loc.ID, err)
	}

	return fresh, nil
}
