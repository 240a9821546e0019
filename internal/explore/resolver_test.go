package explore

import (
	"context"
	"errors"
	"testing"
)

// fakeLocationStore keeps locations keyed by search query and assigns
// sequential ids with insert-or-ignore semantics.
type fakeLocationStore struct {
	byQuery map[string]Location
	nextID  int64

	findCalls   int
	upsertCalls int
	upsertErr   error
}

func newFakeLocationStore() *fakeLocationStore {
	return &fakeLocationStore{byQuery: make(map[string]Location), nextID: 1}
}

func (s *fakeLocationStore) FindByQuery(ctx context.Context, query string) (Location, error) {
	s.findCalls++
	loc, ok := s.byQuery[query]
	if !ok {
		return Location{}, ErrLocationNotFound
	}
	return loc, nil
}

func (s *fakeLocationStore) Upsert(ctx context.Context, loc Location) (int64, error) {
	s.upsertCalls++
	if s.upsertErr != nil {
		return 0, s.upsertErr
	}
	if existing, ok := s.byQuery[loc.SearchQuery]; ok {
		return existing.ID, nil
	}
	loc.ID = s.nextID
	s.nextID++
	s.byQuery[loc.SearchQuery] = loc
	return loc.ID, nil
}

func TestResolveUnseenQueryGeocodesAndPersists(t *testing.T) {
	store := newFakeLocationStore()
	geocodeCalls := 0
	resolver := NewResolver(store, func(ctx context.Context, query string) (Location, error) {
		geocodeCalls++
		return Location{
			FormattedQuery: "Seattle, WA, USA",
			Latitude:       47.6062,
			Longitude:      -122.3321,
		}, nil
	})

	loc, err := resolver.Resolve(context.Background(), "Seattle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if geocodeCalls != 1 {
		t.Fatalf("expected 1 geocode call, got %d", geocodeCalls)
	}
	if loc.ID != 1 {
		t.Fatalf("expected assigned id 1, got %d", loc.ID)
	}
	if loc.SearchQuery != "Seattle" || loc.FormattedQuery != "Seattle, WA, USA" {
		t.Fatalf("unexpected location: %+v", loc)
	}
	if loc.Latitude != 47.6062 || loc.Longitude != -122.3321 {
		t.Fatalf("unexpected coordinates: %+v", loc)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	store := newFakeLocationStore()
	geocodeCalls := 0
	resolver := NewResolver(store, func(ctx context.Context, query string) (Location, error) {
		geocodeCalls++
		return Location{FormattedQuery: "Seattle, WA, USA"}, nil
	})

	first, err := resolver.Resolve(context.Background(), "Seattle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := resolver.Resolve(context.Background(), "Seattle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if geocodeCalls != 1 {
		t.Fatalf("second resolve must not geocode again, got %d calls", geocodeCalls)
	}
	if first.ID != second.ID {
		t.Fatalf("ids differ: %d vs %d", first.ID, second.ID)
	}
	if first.FormattedQuery != second.FormattedQuery {
		t.Fatalf("formatted queries differ: %q vs %q", first.FormattedQuery, second.FormattedQuery)
	}
}

func TestResolveGeocodeFailurePersistsNothing(t *testing.T) {
	store := newFakeLocationStore()
	resolver := NewResolver(store, func(ctx context.Context, query string) (Location, error) {
		return Location{}, &TransportError{Provider: "geocode", Err: errors.New("unreachable")}
	})

	_, err := resolver.Resolve(context.Background(), "Nowhere")
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if store.upsertCalls != 0 {
		t.Fatalf("expected no upserts, got %d", store.upsertCalls)
	}
}

func TestResolveUpsertFailureFailsResolution(t *testing.T) {
	store := newFakeLocationStore()
	store.upsertErr = errors.New("constraint violation")
	resolver := NewResolver(store, func(ctx context.Context, query string) (Location, error) {
		return Location{FormattedQuery: "Somewhere"}, nil
	})

	_, err := resolver.Resolve(context.Background(), "Somewhere")
	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatalf("expected StoreError, got %v", err)
	}
}
