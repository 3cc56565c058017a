package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bmharper/quadtree-go"
	"github.com/bmharper/quadtree-go/cluster"
	"github.com/bmharper/quadtree-go/internal/venue"
)

// VenueStore is the storage the cluster service reads venues from
type VenueStore interface {
	All(ctx context.Context) ([]*venue.Venue, error)
	Count(ctx context.Context) (int, error)
	ReplaceAll(ctx context.Context, venues []*venue.Venue) error
}

// Options tune the index built by the cluster service
type Options struct {
	BucketCapacity int
	Grid           cluster.Grid
	FixedBounds    bool // use venue.USBounds instead of the bounds of the data
}

// Stats describes the index currently being served
type Stats struct {
	Venues   int        `json:"venues"`
	Dropped  int        `json:"dropped"`
	Nodes    int        `json:"nodes"`
	Depth    int        `json:"depth"`
	Bounds   [4]float64 `json:"bounds"`
	BuiltAt  time.Time  `json:"built_at"`
	Duration string     `json:"build_duration"`
}

// ClusterService keeps a venue quadtree in memory and answers cluster queries against it
type ClusterService struct {
	store   VenueStore
	index   *cluster.Index[*venue.Venue]
	options Options

	mu      sync.Mutex // serializes reloads
	stats   Stats
	statsMu sync.RWMutex
}

// NewClusterService creates a cluster service. Call Reload before serving queries.
func NewClusterService(store VenueStore, options Options) *ClusterService {
	index := cluster.NewIndex[*venue.Venue](options.Grid)
	if options.BucketCapacity > 0 {
		index.BucketCapacity = options.BucketCapacity
	}
	return &ClusterService{
		store:   store,
		index:   index,
		options: options,
	}
}

// Reload rebuilds the index from the store and swaps it in
func (s *ClusterService) Reload(ctx context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	venues, err := s.store.All(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load venues: %w", err)
	}

	box := venue.USBounds
	if !s.options.FixedBounds {
		box = venue.Bounds(venues)
	}

	start := time.Now()
	built := s.index.Rebuild(venue.Points(venues), box)
	elapsed := time.Since(start)

	stats := Stats{
		Venues:   built.Inserted,
		Dropped:  built.Dropped,
		Nodes:    built.Nodes,
		Depth:    built.Depth,
		Bounds:   [4]float64{box.X0, box.Y0, box.XF, box.YF},
		BuiltAt:  start,
		Duration: elapsed.String(),
	}
	s.statsMu.Lock()
	s.stats = stats
	s.statsMu.Unlock()

	log.Printf("Venue index rebuilt: %d venues, %d dropped, %d nodes, depth %d, %v",
		stats.Venues, stats.Dropped, stats.Nodes, stats.Depth, elapsed)
	return stats, nil
}

// Import replaces the stored venues with a dataset file and reloads the index
func (s *ClusterService) Import(ctx context.Context, path string) (Stats, error) {
	venues, err := venue.LoadFile(path)
	if err != nil {
		return Stats{}, err
	}
	if err := s.store.ReplaceAll(ctx, venues); err != nil {
		return Stats{}, fmt.Errorf("failed to store venues: %w", err)
	}
	log.Printf("Imported %d venues from %s", len(venues), path)
	return s.Reload(ctx)
}

// ImportIfEmpty imports the dataset only when the store holds no venues yet
func (s *ClusterService) ImportIfEmpty(ctx context.Context, path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	n, err := s.store.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count venues: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if _, err := s.Import(ctx, path); err != nil {
		return false, err
	}
	return true, nil
}

// Clusters returns the annotations for the latitude/longitude box at a map zoom level
func (s *ClusterService) Clusters(box quadtree.BoundingBox, zoom float64) []cluster.Annotation[*venue.Venue] {
	return s.index.Clusters(box, zoom)
}

// Stats returns the figures of the last rebuild
func (s *ClusterService) Stats() Stats {
	s.statsMu.RLock()
	defer s.statsMu.RUnlock()
	return s.stats
}
