package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labelforge/backend/config"
	httpDelivery "github.com/labelforge/backend/internal/delivery/http"
	"github.com/labelforge/backend/internal/infrastructure/cache"
	"github.com/labelforge/backend/internal/infrastructure/snapshot"
	"github.com/labelforge/backend/internal/infrastructure/usda"
	"github.com/labelforge/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting LabelForge Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	profileCache := cache.NewMemoryCache()
	snapshotStore := snapshot.NewMemoryStore()

	usdaClient := usda.NewClient(cfg.USDA.APIKey, cfg.USDA.BaseURL, cfg.RateLimit.USDA)
	if cfg.Server.Environment == "development" {
		usdaClient.SetDebug(true)
	}
	if cfg.USDA.APIKey != "" {
		log.Printf("USDA API configured: %s", cfg.USDA.BaseURL)
	} else {
		log.Printf("WARNING: USDA API key not configured - profile enrichment will fail")
	}

	// Initialize usecase layer
	labelService := usecase.NewLabelService(snapshotStore)
	profileService := usecase.NewProfileService(profileCache, usdaClient, usecase.ProfileServiceConfig{
		CacheTTL:               cfg.Cache.TTL,
		MinConfidenceThreshold: cfg.Profile.MinConfidenceThreshold,
	})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(labelService, profileService)

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
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
