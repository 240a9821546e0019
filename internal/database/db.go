package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// schema holds the cache tables: one locations table anchoring everything,
// plus one table per cached resource kind. Dependent rows reference their
// owning location and carry the generation's created_at.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS locations (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		search_query VARCHAR(255) NOT NULL,
		formatted_query VARCHAR(255) NOT NULL,
		latitude DOUBLE NOT NULL,
		longitude DOUBLE NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE KEY uq_locations_search_query (search_query)
	)`,
	`CREATE TABLE IF NOT EXISTS weather_days (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		forecast TEXT NOT NULL,
		time VARCHAR(32) NOT NULL,
		location_id BIGINT NOT NULL,
		created_at DATETIME NOT NULL,
		KEY idx_weather_days_location (location_id)
	)`,
	`CREATE TABLE IF NOT EXISTS businesses (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		url VARCHAR(1024) NOT NULL,
		rating DOUBLE NOT NULL,
		price VARCHAR(16) NOT NULL,
		image_url VARCHAR(1024) NOT NULL,
		location_id BIGINT NOT NULL,
		created_at DATETIME NOT NULL,
		KEY idx_businesses_location (location_id)
	)`,
	`CREATE TABLE IF NOT EXISTS movies (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		released_on VARCHAR(32) NOT NULL,
		average_votes DOUBLE NOT NULL,
		total_votes BIGINT NOT NULL,
		popularity DOUBLE NOT NULL,
		image_url VARCHAR(1024) NOT NULL,
		overview TEXT NOT NULL,
		location_id BIGINT NOT NULL,
		created_at DATETIME NOT NULL,
		KEY idx_movies_location (location_id)
	)`,
}

// EnsureSchema creates the cache tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
