package main

import (
	"log"

	"github.com/Manishrdy/SimCricketX-sub000/config"
	"github.com/Manishrdy/SimCricketX-sub000/internal/engine"
	"github.com/Manishrdy/SimCricketX-sub000/internal/live"
	"github.com/Manishrdy/SimCricketX-sub000/internal/match"
	"github.com/Manishrdy/SimCricketX-sub000/routes"
)

func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	tables, err := engine.LoadTables(cfg.App.DataDir)
	if err != nil {
		log.Fatalf("Failed to load probability tables: %v", err)
	}
	log.Printf("Probability tables loaded (%d pitch profiles)\n", len(tables.Pitches))

	var forcedSeed *uint64
	if cfg.Sim.Seeded {
		forcedSeed = &cfg.Sim.Seed
	}

	manager := match.NewManager(tables, forcedSeed)
	hub := live.NewHub()

	r := routes.SetupRoutes(manager, hub)

	// Use port from loaded configuration
	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
