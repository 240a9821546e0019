// Package store contains the relational cache repositories, one per table.
// Repositories hold a shared *sql.DB pool injected at construction and issue
// single-statement round trips only; no transaction spans two operations.
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/i474232898/city-explorer-api/internal/explore"
)

// LocationRepo persists Location rows. The search_query column carries a
// unique key, so concurrent inserts of the same query collapse to one row.
type LocationRepo struct {
	db *sql.DB
}

func NewLocationRepo(db *sql.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

// FindByQuery returns the stored location for an exact search query.
func (r *LocationRepo) FindByQuery(ctx context.Context, query string) (explore.Location, error) {
	const q = `SELECT id, search_query, formatted_query, latitude, longitude
	           FROM locations WHERE search_query = ?`
	var loc explore.Location
	err := r.db.QueryRowContext(ctx, q, query).Scan(
		&loc.ID, &loc.SearchQuery, &loc.FormattedQuery, &loc.Latitude, &loc.Longitude,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return explore.Location{}, explore.ErrLocationNotFound
		}
		return explore.Location{}, err
	}
	return loc, nil
}

// Upsert inserts the location with INSERT IGNORE and returns the
// existing-or-new id. An existing row for the same search query is never
// overwritten.
func (r *LocationRepo) Upsert(ctx context.Context, loc explore.Location) (int64, error) {
	const qInsert = `INSERT IGNORE INTO locations
	                 (search_query, formatted_query, latitude, longitude, created_at)
	                 VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		loc.SearchQuery, loc.FormattedQuery, loc.Latitude, loc.Longitude, time.Now().UTC(),
	)
	if err != nil {
		return 0, err
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return res.LastInsertId()
	}

	// Conflict: another insert won; read back its id.
	const qSelect = `SELECT id FROM locations WHERE search_query = ?`
	var id int64
	if err := r.db.QueryRowContext(ctx, qSelect, loc.SearchQuery).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
