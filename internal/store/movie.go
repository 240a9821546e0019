package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/i474232898/city-explorer-api/internal/explore"
)

// MovieRepo persists movies generations.
type MovieRepo struct {
	db *sql.DB
}

func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// FindByLocation returns the location's movie rows plus the generation
// timestamp (first row's created_at, shared by the whole set).
func (r *MovieRepo) FindByLocation(ctx context.Context, locationID int64) ([]explore.MovieSummary, time.Time, error) {
	const q = `SELECT title, released_on, average_votes, total_votes, popularity, image_url, overview, created_at
	           FROM movies WHERE location_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, locationID)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer rows.Close()

	var out []explore.MovieSummary
	var createdAt time.Time
	for rows.Next() {
		var m explore.MovieSummary
		var rowCreated time.Time
		if err := rows.Scan(
			&m.Title, &m.ReleasedOn, &m.AverageVotes, &m.TotalVotes,
			&m.Popularity, &m.ImageURL, &m.Overview, &rowCreated,
		); err != nil {
			return nil, time.Time{}, err
		}
		if createdAt.IsZero() {
			createdAt = rowCreated
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, err
	}
	return out, createdAt, nil
}

// InsertMany writes the batch as one generation with a single shared
// created_at.
func (r *MovieRepo) InsertMany(ctx context.Context, locationID int64, movies []explore.MovieSummary) error {
	if len(movies) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO movies
	(title, released_on, average_votes, total_votes, popularity, image_url, overview, location_id, created_at) VALUES `)
	args := make([]interface{}, 0, len(movies)*9)
	createdAt := time.Now().UTC()
	for i, m := range movies {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args,
			m.Title, m.ReleasedOn, m.AverageVotes, m.TotalVotes,
			m.Popularity, m.ImageURL, m.Overview, locationID, createdAt,
		)
	}

	_, err := r.db.ExecContext(ctx, sb.String(), args...)
	return err
}

// DeleteByLocation drops the location's whole generation.
func (r *MovieRepo) DeleteByLocation(ctx context.Context, locationID int64) error {
	const q = `DELETE FROM movies WHERE location_id = ?`
	_, err := r.db.ExecContext(ctx, q, locationID)
	return err
}

// DeleteOlderThan drops every generation created before cutoff.
func (r *MovieRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `DELETE FROM movies WHERE created_at < ?`
	res, err := r.db.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
