package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/nutresa-radar/backend/config"
	httpDelivery "github.com/nutresa-radar/backend/internal/delivery/http"
	"github.com/nutresa-radar/backend/internal/domain"
	"github.com/nutresa-radar/backend/internal/infrastructure/cache"
	"github.com/nutresa-radar/backend/internal/infrastructure/kv"
	"github.com/nutresa-radar/backend/internal/infrastructure/scraper"
	"github.com/nutresa-radar/backend/internal/usecase"
)

func main() {
	// Local development keeps secrets in .env; missing file is fine.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Nutresa Radar Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Health storage: %s", cfg.Health.Storage)

	// Health registry persistence
	var healthStore domain.KeyValueStore
	if cfg.Health.Storage == "redis" {
		redisStore, err := kv.NewRedis(cfg.Health.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		healthStore = redisStore
	} else {
		healthStore = kv.NewMemory()
	}

	healthService := usecase.NewHealthService(healthStore, usecase.HealthServiceConfig{
		StorageKey:     cfg.Health.StorageKey,
		ErrorThreshold: cfg.Health.ErrorThreshold,
	})

	// Infrastructure
	resultCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	scraperClient := scraper.NewClient(cfg.Scraper.APIKey, cfg.Scraper.BaseURL, cfg.Scraper.Timeout, cfg.Scraper.MaxRetries)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		scraperClient.SetDebug(true)
		log.Printf("Scraper client debug mode enabled")
	}
	log.Printf("Scraper backend: %s", cfg.Scraper.BaseURL)

	// Usecase layer
	comparisonService := usecase.NewComparisonService(
		resultCache,
		scraperClient,
		healthService,
		usecase.ComparisonServiceConfig{
			CacheTTL:            cfg.Cache.TTL,
			EnableFuzzyMatching: cfg.Matching.EnableFuzzyMatching,
			EnableDebugLogging:  cfg.Matching.EnableDebugLogging,
		},
	)
	paretoService := usecase.NewParetoService(comparisonService, usecase.ParetoServiceConfig{
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	log.Printf("Matching: fuzzy=%v, debug=%v",
		cfg.Matching.EnableFuzzyMatching,
		cfg.Matching.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(comparisonService, paretoService, healthService, cfg.Export.Category)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
