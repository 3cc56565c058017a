package config

import (
	"os"
	"strconv"
)

// Config holds the server settings, read from the environment
type Config struct {
	Port           string
	DBPath         string
	DatasetPath    string  // imported on startup while the venue table is empty
	BucketCapacity int     // points per quadtree node before it splits
	CellPixels     float64 // cluster cell width in screen pixels
	TileSize       float64 // map tile width in pixels
	FixedBounds    bool    // index over the US box instead of the data's own bounds
}

// Load reads the configuration, falling back to defaults for unset or invalid values
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/venues.db"
	}

	return &Config{
		Port:           port,
		DBPath:         dbPath,
		DatasetPath:    os.Getenv("DATASET_PATH"),
		BucketCapacity: envInt("BUCKET_CAPACITY", 4),
		CellPixels:     envFloat("CELL_PIXELS", 88),
		TileSize:       envFloat("TILE_SIZE", 256),
		FixedBounds:    envBool("FIXED_BOUNDS", false),
	}
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && v > 0 {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
