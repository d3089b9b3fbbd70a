package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"food-analyzer-api/internal/config"
	"food-analyzer-api/internal/models"
	"food-analyzer-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	file := flag.String("file", "", "Path to the gazetteer CSV file (name,lat,lon)")
	configPath := flag.String("config", "configs", "Directory holding app.env")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	f, err := os.Open(*file)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	places, err := parseCSV(f)
	f.Close()
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d places\n", len(places))

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if !cfg.HasDatabase() {
		fmt.Println("Error: DB_SOURCE is not set")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)
	if err := repo.Migrate(ctx); err != nil {
		fmt.Printf("Error creating tables: %v\n", err)
		os.Exit(1)
	}

	before, err := repo.CountPlaces(ctx)
	if err != nil {
		fmt.Printf("Error counting places: %v\n", err)
		os.Exit(1)
	}

	n, err := repo.ImportPlaces(ctx, places)
	if err != nil {
		fmt.Printf("Error inserting places: %v\n", err)
		os.Exit(1)
	}

	after, err := repo.CountPlaces(ctx)
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}
	if after-before != int(n) {
		fmt.Printf("Error verifying import: expected %d new places, got %d\n", n, after-before)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d places\n", n)
}

// parseCSV reads "name,lat,lon" rows after a header line.
func parseCSV(r io.Reader) ([]models.Place, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var places []models.Place
	seen := make(map[string]struct{})
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 3 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 3 columns", len(record))
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, errors.New("empty place name")
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil || lat < -90 || lat > 90 {
			return nil, fmt.Errorf("invalid latitude: %s", record[1])
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil || lon < -180 || lon > 180 {
			return nil, fmt.Errorf("invalid longitude: %s", record[2])
		}

		// the places table keeps names unique, COPY would abort on a duplicate
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		places = append(places, models.Place{Name: name, Lat: lat, Lon: lon})
	}

	return places, nil
}
