package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Env         string // APP_ENV
		Port        string // PORT
		FrontendURL string // FRONTEND_URL, for CORS
		DataDir     string // DATA_DIR, probability table overrides live here
	}
	Sim struct {
		// Seed, when Seeded is true, makes every match deterministic. Meant
		// for demo environments and replay debugging; live runs leave it off.
		Seed   uint64
		Seeded bool
	}
}

// Global AppConfig instance, accessible after Initialize() is called.
var appConfig *Config
var once sync.Once

// LoadConfig loads configuration from environment variables into the Config
// struct. It's designed to be called once.
func LoadConfig() (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")
	cfg.App.DataDir = getEnv("DATA_DIR", "./data")

	if seedStr := getEnv("SIM_SEED", ""); seedStr != "" {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SIM_SEED: %w", err)
		}
		cfg.Sim.Seed = seed
		cfg.Sim.Seeded = true
		if cfg.App.Env == "production" {
			log.Println("WARNING: SIM_SEED is set in production; every match will replay the same deliveries.")
		}
	}

	appConfig = cfg
	return cfg, nil
}

// Initialize loads all configuration. This should be called once at the start
// of the application (e.g., in main.go).
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It panics if the configuration has not been loaded yet,
// ensuring that configuration is always available when requested after Initialize().
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
