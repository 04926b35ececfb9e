package repository

import (
	"context"
	"fmt"
	"log"

	"style-atelier/db"
	"style-atelier/kb"
	"style-atelier/models"
)

// ProfileRepository aggregates a user's purchase history into a style
// profile. Sparse or absent history resolves to the default persona, so
// curation never fails for a new user.
type ProfileRepository struct{}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

var _ ProfileRepositoryInterface = (*ProfileRepository)(nil)

// Aggregation window: the top-N signals retained per dimension.
const (
	maxDominantColours = 5
	maxFabrics         = 4
	maxSilhouettes     = 3
)

// GetStyleProfile builds the persona for a user from purchase history
// frequencies. Missing users and users with no purchases both get the
// safe default profile.
func (r *ProfileRepository) GetStyleProfile(ctx context.Context, userID string) (*models.StyleProfile, error) {
	profile := models.DefaultProfile(userID)

	var undertone, size string
	err := db.DB.QueryRowContext(ctx,
		`SELECT COALESCE(undertone, 'neutral'), COALESCE(size, 'M') FROM user_preferences WHERE user_id = $1`,
		userID).Scan(&undertone, &size)
	if err == nil {
		profile.Undertone = undertone
		profile.Size = size
	}

	colours, pcts, err := r.topColours(ctx, userID, "purchase_history")
	if err != nil {
		return nil, err
	}
	if len(colours) == 0 {
		// No purchases yet: browsing history is a weaker but usable signal.
		colours, pcts, err = r.topColours(ctx, userID, "browsing_logs")
		if err != nil {
			return nil, err
		}
	}
	if len(colours) == 0 {
		log.Printf("ℹ️ No purchase or browsing history for user %s, using default persona", userID)
		return profile, nil
	}
	profile.DominantColours = colours
	profile.DominantColourPcts = pcts

	fabrics, silhouettes, err := r.topFabricsAndCuts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(fabrics) > 0 {
		profile.Fabrics = fabrics
	}
	if len(silhouettes) > 0 {
		profile.Silhouettes = silhouettes
	}

	if min, max, ok := r.budgetBand(ctx, userID); ok {
		profile.BudgetMin = min
		profile.BudgetMax = max
	}

	profile.Archetype = kb.ArchetypeFor(append(append([]string{}, fabrics...), silhouettes...)).Name
	log.Printf("✅ Persona for %s: archetype=%s colours=%v", userID, profile.Archetype, colours)
	return profile, nil
}

// topColours aggregates colour-family shares from one of the history
// tables. Both purchase_history and browsing_logs carry user_id and
// colour_family columns.
func (r *ProfileRepository) topColours(ctx context.Context, userID, table string) ([]string, map[string]float64, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT colour_family, COUNT(*)::float / SUM(COUNT(*)) OVER () AS share
		FROM `+table+`
		WHERE user_id = $1 AND colour_family <> ''
		GROUP BY colour_family
		ORDER BY COUNT(*) DESC, colour_family ASC
		LIMIT $2`, userID, maxDominantColours)
	if err != nil {
		return nil, nil, fmt.Errorf("persona colour aggregation failed: %w", err)
	}
	defer rows.Close()

	var colours []string
	pcts := make(map[string]float64)
	for rows.Next() {
		var name string
		var share float64
		if err := rows.Scan(&name, &share); err != nil {
			return nil, nil, fmt.Errorf("failed to scan colour share: %w", err)
		}
		colours = append(colours, name)
		pcts[name] = share
	}
	return colours, pcts, rows.Err()
}

func (r *ProfileRepository) topFabricsAndCuts(ctx context.Context, userID string) (fabrics, silhouettes []string, err error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT fabric, cut, COUNT(*)
		FROM purchase_history
		WHERE user_id = $1
		GROUP BY fabric, cut
		ORDER BY COUNT(*) DESC, fabric ASC`, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("persona fabric aggregation failed: %w", err)
	}
	defer rows.Close()

	seenFabric := map[string]bool{}
	seenCut := map[string]bool{}
	for rows.Next() {
		var fabric, cut string
		var count int
		if err := rows.Scan(&fabric, &cut, &count); err != nil {
			return nil, nil, fmt.Errorf("failed to scan fabric row: %w", err)
		}
		if fabric != "" && !seenFabric[fabric] && len(fabrics) < maxFabrics {
			seenFabric[fabric] = true
			fabrics = append(fabrics, fabric)
		}
		if cut != "" && !seenCut[cut] && len(silhouettes) < maxSilhouettes {
			seenCut[cut] = true
			silhouettes = append(silhouettes, cut)
		}
	}
	return fabrics, silhouettes, rows.Err()
}

// budgetBand derives the spend band from the 25th and 90th price
// percentiles of past purchases.
func (r *ProfileRepository) budgetBand(ctx context.Context, userID string) (min, max float64, ok bool) {
	err := db.DB.QueryRowContext(ctx, `
		SELECT
			PERCENTILE_CONT(0.25) WITHIN GROUP (ORDER BY price),
			PERCENTILE_CONT(0.90) WITHIN GROUP (ORDER BY price)
		FROM purchase_history
		WHERE user_id = $1`, userID).Scan(&min, &max)
	if err != nil || max <= 0 {
		return 0, 0, false
	}
	return min, max, true
}
