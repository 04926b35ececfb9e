package repository

import (
	"context"
	"fmt"
	"strings"

	"style-atelier/db"
	"style-atelier/models"
)

// OutfitHistoryRepository persists the curation audit log.
type OutfitHistoryRepository struct{}

// NewOutfitHistoryRepository creates a new OutfitHistoryRepository
func NewOutfitHistoryRepository() *OutfitHistoryRepository {
	return &OutfitHistoryRepository{}
}

var _ OutfitHistoryRepositoryInterface = (*OutfitHistoryRepository)(nil)

// Insert records one curated bundle. Lists are stored comma-joined; the
// log is write-only from the engine's point of view.
func (r *OutfitHistoryRepository) Insert(ctx context.Context, entry *models.OutfitHistoryEntry) error {
	err := db.DB.QueryRowContext(ctx, `
		INSERT INTO outfit_history
			(user_id, occasion, budget, total_cost, skus, palette_colours,
			 confidence, trend_alignment, iteration, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, created_at`,
		entry.UserID, entry.Occasion, entry.Budget, entry.TotalCost,
		strings.Join(entry.SKUs, ","), strings.Join(entry.PaletteColours, ","),
		entry.Confidence, entry.TrendAlignment, entry.Iteration, entry.Status,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert outfit history: %w", err)
	}
	return nil
}

// GetByUser returns the most recent curation log rows for a user.
func (r *OutfitHistoryRepository) GetByUser(ctx context.Context, userID string, limit int) ([]models.OutfitHistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.DB.QueryContext(ctx, `
		SELECT id, user_id, occasion, budget, total_cost, skus, palette_colours,
		       confidence, trend_alignment, iteration, status, created_at
		FROM outfit_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query outfit history: %w", err)
	}
	defer rows.Close()

	var entries []models.OutfitHistoryEntry
	for rows.Next() {
		var e models.OutfitHistoryEntry
		var skus, colours string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Occasion, &e.Budget, &e.TotalCost,
			&skus, &colours, &e.Confidence, &e.TrendAlignment, &e.Iteration,
			&e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan outfit history row: %w", err)
		}
		if skus != "" {
			e.SKUs = strings.Split(skus, ",")
		}
		if colours != "" {
			e.PaletteColours = strings.Split(colours, ",")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
