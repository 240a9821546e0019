package explore

import (
	"context"
	"errors"
)

// GeocodeFunc resolves a free-text search into a normalized Location.
// Implementations compose the geocode provider fetch with its normalizer.
type GeocodeFunc func(ctx context.Context, query string) (Location, error)

// Resolver specializes the lookup-or-fetch protocol for Location, the entity
// every other cached resource hangs off. The lookup key is the raw search
// text, and stored rows never expire: a geocoded address does not change.
type Resolver struct {
	store   LocationStore
	geocode GeocodeFunc
}

// NewResolver builds a Resolver over the location store and geocoder.
func NewResolver(store LocationStore, geocode GeocodeFunc) *Resolver {
	return &Resolver{store: store, geocode: geocode}
}

// Resolve returns the stored location for the query, geocoding and persisting
// it first when unseen. The returned location always carries its row id,
// which keys all dependent lookups; for that reason an upsert failure fails
// the whole resolution rather than being swallowed.
func (r *Resolver) Resolve(ctx context.Context, query string) (Location, error) {
	loc, err := r.store.FindByQuery(ctx, query)
	if err == nil {
		return loc, nil
	}
	if !errors.Is(err, ErrLocationNotFound) {
		return Location{}, &StoreError{Op: "location find", Err: err}
	}

	loc, err = r.geocode(ctx, query)
	if err != nil {
		return Location{}, err
	}
	loc.SearchQuery = query

	id, err := r.store.Upsert(ctx, loc)
	if err != nil {
		return Location{}, &StoreError{Op: "location upsert", Err: err}
	}
	loc.ID = id

	return loc, nil
}
