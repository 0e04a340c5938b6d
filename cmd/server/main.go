package main

import (
	"fmt"
	"log"
	"os"

	"github.com/listingcraft/backend/config"
	httpDelivery "github.com/listingcraft/backend/internal/delivery/http"
	"github.com/listingcraft/backend/internal/domain"
	"github.com/listingcraft/backend/internal/infrastructure/paapi"
	"github.com/listingcraft/backend/internal/infrastructure/spapi"
	"github.com/listingcraft/backend/internal/infrastructure/store"
	"github.com/listingcraft/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ListingCraft Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Persistence is best-effort: a missing or unreachable store never
	// blocks listing generation.
	var listingStore domain.ListingStore
	if cfg.Database.DSN != "" {
		pg, err := store.NewPostgresStore(cfg.Database.DSN)
		if err != nil {
			log.Printf("WARNING: listing store unavailable, persistence disabled: %v", err)
		} else {
			listingStore = pg
			defer pg.Close()
			log.Printf("Listing store connected")
		}
	} else {
		log.Printf("No database DSN configured, persistence disabled")
	}

	// Marketplace collaborators
	var catalog domain.ProductCatalog
	if cfg.PAAPI.AccessKey != "" {
		paapiClient := paapi.NewClient(
			cfg.PAAPI.AccessKey,
			cfg.PAAPI.SecretKey,
			cfg.PAAPI.PartnerTag,
			cfg.PAAPI.Host,
			cfg.PAAPI.Marketplace,
		)
		if cfg.Server.Environment == "development" {
			paapiClient.SetDebug(true)
			log.Printf("PAAPI client debug mode enabled")
		}
		catalog = paapiClient
		log.Printf("PAAPI configured: %s (key: %s...)", cfg.PAAPI.Host, cfg.PAAPI.AccessKey[:min(8, len(cfg.PAAPI.AccessKey))])
	} else {
		log.Printf("WARNING: PAAPI not configured - product lookups will be unavailable")
	}

	submitter := spapi.NewClient(cfg.SPAPI.Endpoint, cfg.SPAPI.SellerID, cfg.SPAPI.AccessToken)
	if cfg.SPAPI.AccessToken == "" {
		log.Printf("WARNING: SP-API access token not configured - listing updates will not reach the marketplace")
	}

	// Initialize usecase layer
	listingService := usecase.NewListingService(listingStore)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(listingService, catalog, submitter)

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
