package app

import (
	"fmt"

	"style-atelier/app/controller"
	"style-atelier/app/router"
	"style-atelier/db"
	"style-atelier/repository"
	"style-atelier/service"
	"style-atelier/trends"
)

// Initialize initializes the application
func Initialize() error {
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	catalogRepo := repository.NewCatalogRepository()
	profileRepo := repository.NewProfileRepository()
	historyRepo := repository.NewOutfitHistoryRepository()

	// Trend briefs come from the curated seasonal tables; a live
	// provider can be slotted in behind the same interface.
	trendProvider := trends.NewStaticProvider()

	curationService := service.NewCurationService(catalogRepo, profileRepo, historyRepo, trendProvider)
	swatchService := service.NewSwatchService()

	controllers := &router.Controllers{
		Curation: controller.NewCurationController(curationService, swatchService),
	}

	router.SetupRoutes(controllers)
	return nil
}
