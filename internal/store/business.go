package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/i474232898/city-explorer-api/internal/explore"
)

// BusinessRepo persists businesses generations.
type BusinessRepo struct {
	db *sql.DB
}

func NewBusinessRepo(db *sql.DB) *BusinessRepo {
	return &BusinessRepo{db: db}
}

// FindByLocation returns the location's business rows plus the generation
// timestamp (first row's created_at, shared by the whole set).
func (r *BusinessRepo) FindByLocation(ctx context.Context, locationID int64) ([]explore.Business, time.Time, error) {
	const q = `SELECT name, url, rating, price, image_url, created_at
	           FROM businesses WHERE location_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, locationID)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer rows.Close()

	var out []explore.Business
	var createdAt time.Time
	for rows.Next() {
		var b explore.Business
		var rowCreated time.Time
		if err := rows.Scan(&b.Name, &b.URL, &b.Rating, &b.Price, &b.ImageURL, &rowCreated); err != nil {
			return nil, time.Time{}, err
		}
		if createdAt.IsZero() {
			createdAt = rowCreated
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, err
	}
	return out, createdAt, nil
}

// InsertMany writes the batch as one generation with a single shared
// created_at.
func (r *BusinessRepo) InsertMany(ctx context.Context, locationID int64, businesses []explore.Business) error {
	if len(businesses) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO businesses (name, url, rating, price, image_url, location_id, created_at) VALUES `)
	args := make([]interface{}, 0, len(businesses)*7)
	createdAt := time.Now().UTC()
	for i, b := range businesses {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?)")
		args = append(args, b.Name, b.URL, b.Rating, b.Price, b.ImageURL, locationID, createdAt)
	}

	_, err := r.db.ExecContext(ctx, sb.String(), args...)
	return err
}

// DeleteByLocation drops the location's whole generation.
func (r *BusinessRepo) DeleteByLocation(ctx context.Context, locationID int64) error {
	const q = `DELETE FROM businesses WHERE location_id = ?`
	_, err := r.db.ExecContext(ctx, q, locationID)
	return err
}

// DeleteOlderThan drops every generation created before cutoff.
func (r *BusinessRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `DELETE FROM businesses WHERE created_at < ?`
	res, err := r.db.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
