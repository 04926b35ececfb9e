package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"style-atelier/models"
)

// MemoryCatalogRepository is a fixture-backed catalog store with the
// same query semantics as the SQL repository. Used by tests and by the
// demo mode when no database is configured.
type MemoryCatalogRepository struct {
	mu    sync.RWMutex
	items []models.CatalogItem
}

// NewMemoryCatalogRepository creates an in-memory catalog seeded with
// the given items. Invalid items are silently dropped at load.
func NewMemoryCatalogRepository(items []models.CatalogItem) *MemoryCatalogRepository {
	repo := &MemoryCatalogRepository{}
	for _, item := range items {
		if err := item.Validate(); err == nil {
			repo.items = append(repo.items, item)
		}
	}
	return repo
}

var _ CatalogRepositoryInterface = (*MemoryCatalogRepository)(nil)

// Add appends items after validation.
func (r *MemoryCatalogRepository) Add(items ...models.CatalogItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		if err := item.Validate(); err == nil {
			r.items = append(r.items, item)
		}
	}
}

// Query filters the fixture set with the same predicates and ordering
// as the SQL store: price descending, sku ascending on ties, capped at
// the query limit.
func (r *MemoryCatalogRepository) Query(_ context.Context, q models.CatalogQuery) ([]models.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := q.Limit
	if limit <= 0 {
		limit = 5
	}
	excluded := make(map[string]bool, len(q.ExcludeSKUs))
	for _, sku := range q.ExcludeSKUs {
		excluded[sku] = true
	}

	var matched []models.CatalogItem
	for _, item := range r.items {
		if item.StockStatus != models.StockInStock || excluded[item.SKU] {
			continue
		}
		if len(q.Categories) > 0 && !containsFold(q.Categories, item.Category) {
			continue
		}
		if !item.MatchesOccasion(q.Occasion) {
			continue
		}
		if q.Gender != "" && !strings.EqualFold(item.Gender, q.Gender) && !strings.EqualFold(item.Gender, "unisex") {
			continue
		}
		if q.PriceCeiling > 0 && item.Price > q.PriceCeiling {
			continue
		}
		if len(q.ColourFamilies) > 0 && !containsFold(q.ColourFamilies, item.ColourFamily) {
			continue
		}
		if q.Vibe != "" && !strings.EqualFold(item.Vibe, q.Vibe) {
			continue
		}
		if q.Metal != "" && !containsSubstringFold(item.Fabric, q.Metal) && !containsSubstringFold(item.ColourFamily, q.Metal) {
			continue
		}
		if q.NameLike != "" && !containsSubstringFold(item.Name, q.NameLike) {
			continue
		}
		matched = append(matched, item)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Price != matched[j].Price {
			return matched[i].Price > matched[j].Price
		}
		return matched[i].SKU < matched[j].SKU
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func containsSubstringFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
