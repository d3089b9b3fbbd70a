package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"food-analyzer-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the gazetteer and analysis history tables.
const Schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS places (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		name_tsvector TSVECTOR GENERATED ALWAYS AS (to_tsvector('simple', name)) STORED,
		geom GEOGRAPHY(POINT, 4326) NOT NULL
	);
	CREATE INDEX IF NOT EXISTS places_geom_idx ON places USING GIST (geom);
	CREATE INDEX IF NOT EXISTS places_name_tsvector_idx ON places USING GIN (name_tsvector);

	CREATE TABLE IF NOT EXISTS analyses (
		id UUID PRIMARY KEY,
		food_name TEXT NOT NULL,
		food_weight TEXT NOT NULL,
		identified_name TEXT NOT NULL,
		filename TEXT NOT NULL,
		report JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS analyses_created_at_idx ON analyses (created_at DESC);
`

// Repository implements the gazetteer and history stores for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Migrate creates the tables when they do not exist yet.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to apply schema: %w", err)
	}
	return nil
}

// FindPlace looks an address up in the gazetteer. An exact name match wins
// over a full-text match. It returns nil when nothing matches.
func (r *Repository) FindPlace(ctx context.Context, query string) (*models.Coordinates, error) {
	sql := `
		SELECT
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude
		FROM places
		WHERE lower(name) = lower($1)
			OR name_tsvector @@ plainto_tsquery('simple', $1)
		ORDER BY lower(name) = lower($1) DESC,
			ts_rank(name_tsvector, plainto_tsquery('simple', $1)) DESC
		LIMIT 1
	`

	var lat, lon float64
	err := r.db.QueryRow(ctx, sql, query).Scan(&lat, &lon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to execute place query: %w", err)
	}

	return &models.Coordinates{
		Lat: strconv.FormatFloat(lat, 'f', -1, 64),
		Lon: strconv.FormatFloat(lon, 'f', -1, 64),
	}, nil
}

// SavePlace stores a resolved address. Existing names are left untouched.
func (r *Repository) SavePlace(ctx context.Context, name string, coords models.Coordinates) error {
	lat, err := strconv.ParseFloat(coords.Lat, 64)
	if err != nil {
		return fmt.Errorf("repository: invalid latitude %q: %w", coords.Lat, err)
	}
	lon, err := strconv.ParseFloat(coords.Lon, 64)
	if err != nil {
		return fmt.Errorf("repository: invalid longitude %q: %w", coords.Lon, err)
	}

	sql := `
		INSERT INTO places (name, geom)
		VALUES ($1, ST_SetSRID(ST_MakePoint($3, $2), 4326))
		ON CONFLICT (name) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, sql, name, lat, lon); err != nil {
		return fmt.Errorf("repository: failed to save place: %w", err)
	}
	return nil
}

// ImportPlaces bulk loads gazetteer entries with COPY.
func (r *Repository) ImportPlaces(ctx context.Context, places []models.Place) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"places"},
		[]string{"name", "geom"},
		pgx.CopyFromSlice(len(places), func(i int) ([]any, error) {
			p := places[i]
			geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", p.Lon, p.Lat) // PostGIS format: lon lat
			return []any{p.Name, geom}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy places: %w", err)
	}
	return n, nil
}

// CountPlaces returns the number of gazetteer entries.
func (r *Repository) CountPlaces(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM places").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count places: %w", err)
	}
	return count, nil
}

// SaveAnalysis appends a report to the history.
func (r *Repository) SaveAnalysis(ctx context.Context, rec *models.AnalysisRecord) error {
	report, err := json.Marshal(rec.Report)
	if err != nil {
		return fmt.Errorf("repository: failed to encode report: %w", err)
	}

	sql := `
		INSERT INTO analyses (id, food_name, food_weight, identified_name, filename, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.Exec(ctx, sql, rec.ID, rec.FoodName, rec.FoodWeight, rec.Identified, rec.Filename, report, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to save analysis: %w", err)
	}
	return nil
}

// ListAnalyses returns the most recent reports, newest first.
func (r *Repository) ListAnalyses(ctx context.Context, limit int) ([]models.AnalysisRecord, error) {
	sql := `
		SELECT id, food_name, food_weight, identified_name, filename, report, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute history query: %w", err)
	}
	defer rows.Close()

	records := []models.AnalysisRecord{}
	for rows.Next() {
		var rec models.AnalysisRecord
		var report []byte
		err := rows.Scan(
			&rec.ID,
			&rec.FoodName,
			&rec.FoodWeight,
			&rec.Identified,
			&rec.Filename,
			&report,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan analysis: %w", err)
		}
		if err := json.Unmarshal(report, &rec.Report); err != nil {
			return nil, fmt.Errorf("repository: failed to decode report: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return records, nil
}
