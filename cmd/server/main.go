package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/stylefinder/backend/config"
	httpDelivery "github.com/stylefinder/backend/internal/delivery/http"
	"github.com/stylefinder/backend/internal/infrastructure/cse"
	"github.com/stylefinder/backend/internal/infrastructure/session"
	"github.com/stylefinder/backend/internal/usecase"
)

func main() {
	// Load .env file if present (local development convenience)
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting StyleFinder Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Market profile: %s", cfg.Market.Profile)

	// Initialize infrastructure dependencies
	profile := usecase.ProfileByName(cfg.Market.Profile)

	sessionStore := session.NewMemoryStore(cfg.Session.TTL, cfg.Session.HistoryLimit)
	log.Printf("Session TTL: %s (history limit %d)", cfg.Session.TTL, cfg.Session.HistoryLimit)

	searchClient := cse.NewClient(cfg.Search.APIKey, cfg.Search.EngineID, cfg.Search.BaseURL, cse.Options{
		QuerySuffix:      profile.QuerySuffix,
		GeoLocation:      profile.GeoLocation,
		CountryRestrict:  profile.CountryRestrict,
		LanguageRestrict: profile.LanguageRestrict,
		Timeout:          cfg.Search.Timeout,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		searchClient.SetDebug(true)
		log.Printf("Search client debug mode enabled")
	}

	if searchClient.Configured() {
		log.Printf("Search provider configured: %s", cfg.Search.BaseURL)
	} else {
		log.Printf("WARNING: search credentials missing - search requests will return 'not configured'")
	}

	// Initialize usecase layer
	searchService := usecase.NewSearchService(
		searchClient,
		sessionStore,
		profile,
		usecase.SearchServiceConfig{
			DefaultMaxResults:  15,
			EnableDebugLogging: cfg.Market.EnableDebugLogging,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService)

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
