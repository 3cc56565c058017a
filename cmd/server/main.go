package main

import (
	"context"
	"log"

	"github.com/bmharper/quadtree-go/cluster"
	"github.com/bmharper/quadtree-go/internal/api"
	"github.com/bmharper/quadtree-go/internal/config"
	"github.com/bmharper/quadtree-go/internal/database"
	"github.com/bmharper/quadtree-go/internal/repository"
	"github.com/bmharper/quadtree-go/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	clusters := service.NewClusterService(repository.NewVenueRepository(db), service.Options{
		BucketCapacity: cfg.BucketCapacity,
		Grid:           cluster.MapGrid(cfg.CellPixels, cfg.TileSize),
		FixedBounds:    cfg.FixedBounds,
	})

	ctx := context.Background()
	imported, err := clusters.ImportIfEmpty(ctx, cfg.DatasetPath)
	if err != nil {
		log.Fatal("Failed to import dataset:", err)
	}
	if !imported {
		if _, err := clusters.Reload(ctx); err != nil {
			log.Fatal("Failed to build venue index:", err)
		}
	}

	router := api.SetupRouter(clusters)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
