package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/i474232898/city-explorer-api/internal/explore"
)

// WeatherRepo persists weather_days generations.
type WeatherRepo struct {
	db *sql.DB
}

func NewWeatherRepo(db *sql.DB) *WeatherRepo {
	return &WeatherRepo{db: db}
}

// FindByLocation returns the location's forecast rows plus the generation
// timestamp. All rows of a generation are written with one created_at, so the
// first row's value stands for the whole set.
func (r *WeatherRepo) FindByLocation(ctx context.Context, locationID int64) ([]explore.WeatherDay, time.Time, error) {
	const q = `SELECT forecast, time, created_at
	           FROM weather_days WHERE location_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, locationID)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer rows.Close()

	var out []explore.WeatherDay
	var createdAt time.Time
	for rows.Next() {
		var day explore.WeatherDay
		var rowCreated time.Time
		if err := rows.Scan(&day.Forecast, &day.Time, &rowCreated); err != nil {
			return nil, time.Time{}, err
		}
		if createdAt.IsZero() {
			createdAt = rowCreated
		}
		out = append(out, day)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, err
	}
	return out, createdAt, nil
}

// InsertMany writes the batch as one generation with a single shared
// created_at.
func (r *WeatherRepo) InsertMany(ctx context.Context, locationID int64, days []explore.WeatherDay) error {
	if len(days) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO weather_days (forecast, time, location_id, created_at) VALUES `)
	args := make([]interface{}, 0, len(days)*4)
	createdAt := time.Now().UTC()
	for i, day := range days {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?)")
		args = append(args, day.Forecast, day.Time, locationID, createdAt)
	}

	_, err := r.db.ExecContext(ctx, sb.String(), args...)
	return err
}

// DeleteByLocation drops the location's whole generation.
func (r *WeatherRepo) DeleteByLocation(ctx context.Context, locationID int64) error {
	const q = `DELETE FROM weather_days WHERE location_id = ?`
	_, err := r.db.ExecContext(ctx, q, locationID)
	return err
}

// DeleteOlderThan drops every generation created before cutoff.
func (r *WeatherRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `DELETE FROM weather_days WHERE created_at < ?`
	res, err := r.db.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
