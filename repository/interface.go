package repository

import (
	"context"

	"style-atelier/models"
)

// CatalogRepositoryInterface defines the contract for catalog read operations.
// The engine never writes to the catalog.
type CatalogRepositoryInterface interface {
	Query(ctx context.Context, q models.CatalogQuery) ([]models.CatalogItem, error)
}

// ProfileRepositoryInterface defines the contract for persona aggregation.
type ProfileRepositoryInterface interface {
	GetStyleProfile(ctx context.Context, userID string) (*models.StyleProfile, error)
}

// OutfitHistoryRepositoryInterface defines the contract for the curation audit log.
type OutfitHistoryRepositoryInterface interface {
	Insert(ctx context.Context, entry *models.OutfitHistoryEntry) error
	GetByUser(ctx context.Context, userID string, limit int) ([]models.OutfitHistoryEntry, error)
}
