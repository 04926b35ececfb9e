package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"style-atelier/db"
	"style-atelier/models"
	"style-atelier/utils"
)

// CatalogRepository reads curated items from the current_inventory table.
type CatalogRepository struct{}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// Query runs the single catalog read the engine issues per relaxation
// tier. Results come back price-descending with sku ascending on ties,
// capped at q.Limit rows. Only in-stock items are considered.
func (r *CatalogRepository) Query(ctx context.Context, q models.CatalogQuery) ([]models.CatalogItem, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 5
	}

	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	where = append(where, "stock_status = "+arg(models.StockInStock))

	if len(q.Categories) > 0 {
		ph := make([]string, len(q.Categories))
		for i, c := range q.Categories {
			ph[i] = arg(c)
		}
		where = append(where, "category IN ("+strings.Join(ph, ", ")+")")
	}
	if q.Occasion != "" {
		where = append(where, "occasion_tags ILIKE "+arg("%"+q.Occasion+"%"))
	}
	if q.Gender != "" {
		where = append(where, "gender IN ("+arg(strings.ToLower(q.Gender))+", 'unisex')")
	}
	if q.PriceCeiling > 0 {
		where = append(where, "price <= "+arg(q.PriceCeiling))
	}
	if len(q.ColourFamilies) > 0 {
		ph := make([]string, len(q.ColourFamilies))
		for i, c := range q.ColourFamilies {
			ph[i] = arg(c)
		}
		where = append(where, "colour_family IN ("+strings.Join(ph, ", ")+")")
	}
	if q.Vibe != "" {
		where = append(where, "LOWER(vibe) = "+arg(strings.ToLower(q.Vibe)))
	}
	if q.Metal != "" {
		// Jewellery metal lives in either the fabric column ("Gold Plated")
		// or the colour family, depending on how the item was ingested.
		p := arg("%" + q.Metal + "%")
		where = append(where, "(fabric ILIKE "+p+" OR colour_family ILIKE "+p+")")
	}
	if q.NameLike != "" {
		where = append(where, "name ILIKE "+arg("%"+q.NameLike+"%"))
	}
	for _, sku := range q.ExcludeSKUs {
		where = append(where, "sku <> "+arg(sku))
	}

	query := `
		SELECT
			sku, name, category, COALESCE(brand, ''), price,
			colour_family, COALESCE(colour_hex, ''), COALESCE(fabric, ''),
			COALESCE(cut, ''), COALESCE(fit, ''), COALESCE(vibe, ''),
			occasion_tags, gender, COALESCE(region, ''), stock_status,
			COALESCE(image_url, ''), COALESCE(product_url, '')
		FROM current_inventory
		WHERE ` + strings.Join(where, "\n		  AND ") + `
		ORDER BY price DESC, sku ASC
		LIMIT ` + arg(limit)

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}
	defer rows.Close()

	var items []models.CatalogItem
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(
			&item.SKU, &item.Name, &item.Category, &item.Brand, &item.Price,
			&item.ColourFamily, &item.ColourHex, &item.Fabric,
			&item.Cut, &item.Fit, &item.Vibe,
			&item.OccasionTags, &item.Gender, &item.Region, &item.StockStatus,
			&item.ImageURL, &item.ProductURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		if err := item.Validate(); err != nil {
			// Malformed rows are skipped at the boundary so the engine
			// internals can assume well-typed data.
			log.Printf("❌ Skipping invalid catalog row: %v", err)
			continue
		}
		// Colour families arrive lowercased from some ingestion paths;
		// canonicalise so they match the vocabulary names.
		item.ColourFamily = utils.CapitalizeWords(item.ColourFamily)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog row iteration failed: %w", err)
	}

	log.Printf("🔍 Catalog query: categories=%v occasion=%s ceiling=%.0f -> %d items",
		q.Categories, q.Occasion, q.PriceCeiling, len(items))
	return items, nil
}
