package explore

import (
	"context"
	"time"
)

// LocationStore persists Location rows keyed by their raw search query.
type LocationStore interface {
	// FindByQuery returns the stored location for an exact search query,
	// or ErrLocationNotFound.
	FindByQuery(ctx context.Context, query string) (Location, error)

	// Upsert inserts the location with ignore-on-conflict semantics
	// (conflict = identical search query) and returns the existing-or-new
	// row id. An existing row is never overwritten.
	Upsert(ctx context.Context, loc Location) (int64, error)
}

// GenerationStore persists one cache generation per location: the full row
// set for a (resource kind, location id) pair, always written and invalidated
// as a unit.
type GenerationStore[T any] interface {
	// FindByLocation returns all rows for the location plus the generation's
	// creation timestamp. The whole generation shares a single timestamp,
	// assigned at insert time; implementations report that one value rather
	// than per-row times. An empty result returns a zero time and no error.
	FindByLocation(ctx context.Context, locationID int64) ([]T, time.Time, error)

	// InsertMany appends the batch against the location id with one shared
	// creation timestamp. An empty batch is a no-op.
	InsertMany(ctx context.Context, locationID int64, rows []T) error

	// DeleteByLocation removes every row of this kind for the location.
	DeleteByLocation(ctx context.Context, locationID int64) error

	// DeleteOlderThan removes all generations created before cutoff,
	// regardless of location. Used by the background janitor.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
