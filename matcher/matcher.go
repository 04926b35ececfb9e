// Package matcher fills bundle slots from the catalog through a fixed
// ladder of relaxation tiers, deducting each selection from the running
// budget before the next slot is attempted.
package matcher

import (
	"context"
	"fmt"
	"log"
	"strings"

	"style-atelier/models"
	"style-atelier/repository"
)

// Constraints carries the per-slot query inputs: occasion context, the
// palette and history colour sets, the running budget ceiling and the
// rejected-item blacklist.
type Constraints struct {
	Occasion        string
	Gender          string
	RemainingBudget float64
	PaletteColours  []string // primary target set (tiers 1-2)
	HistoryColours  []string // widening set (tier 3)
	Vibe            string   // preferred vibe, e.g. "Ethnic"
	NameLike        string   // type preference, e.g. "Saree"
	Metal           string   // jewellery slots only
	RejectedSKUs    []string
}

// Matcher is the tiered catalog matching engine.
type Matcher struct {
	catalog repository.CatalogRepositoryInterface
}

// New creates a Matcher over a catalog store.
func New(catalog repository.CatalogRepositoryInterface) *Matcher {
	return &Matcher{catalog: catalog}
}

// tier is one step of the relaxation ladder: it shapes the base query,
// or reports false to skip itself for these constraints.
type tier struct {
	number int
	build  func(q *models.CatalogQuery, c Constraints) bool
}

// The ladder, loosest last. New tiers are rows here, not new call sites.
// The metal filter is a colour constraint too, so the last tier sheds it
// along with the families.
var tiers = []tier{
	{1, func(q *models.CatalogQuery, c Constraints) bool {
		if c.Vibe == "" {
			return false
		}
		q.ColourFamilies = c.PaletteColours
		q.Vibe = c.Vibe
		q.Metal = c.Metal
		return len(q.ColourFamilies) > 0
	}},
	{2, func(q *models.CatalogQuery, c Constraints) bool {
		q.ColourFamilies = c.PaletteColours
		q.Metal = c.Metal
		return len(q.ColourFamilies) > 0
	}},
	{3, func(q *models.CatalogQuery, c Constraints) bool {
		q.ColourFamilies = union(c.PaletteColours, c.HistoryColours)
		q.Metal = c.Metal
		return len(q.ColourFamilies) > len(c.PaletteColours)
	}},
	{4, func(q *models.CatalogQuery, c Constraints) bool {
		return true // colour and metal unconstrained, the tier of last resort
	}},
}

// FillSlot walks the relaxation ladder and selects the first tier's top
// candidate: highest price wins, sku ascending breaks ties, so a given
// catalog always yields the same pick. Returns the item, the tier that
// produced it and whether it matched the preferred vibe. A nil item with
// a nil error means the slot stays unfilled.
func (m *Matcher) FillSlot(ctx context.Context, slot *models.SelectionSlot, c Constraints) (*models.CatalogItem, int, bool, error) {
	if c.RemainingBudget <= 0 {
		return nil, 0, false, nil
	}

	base := models.CatalogQuery{
		Categories:   slot.Categories,
		Occasion:     c.Occasion,
		Gender:       c.Gender,
		PriceCeiling: c.RemainingBudget,
		NameLike:     c.NameLike,
		ExcludeSKUs:  c.RejectedSKUs,
	}

	for _, t := range tiers {
		q := base
		if !t.build(&q, c) {
			continue
		}
		items, err := m.catalog.Query(ctx, q)
		if err != nil {
			// A store failure is a per-slot miss, never a run failure.
			return nil, 0, false, fmt.Errorf("%w: %s tier %d: %v",
				models.ErrDataUnavailable, slot.Role, t.number, err)
		}
		if len(items) == 0 {
			continue
		}
		item := items[0]
		vibeMatched := c.Vibe != "" && strings.EqualFold(item.Vibe, c.Vibe)
		log.Printf("✅ %s: %s (₹%.0f) at tier %d", slot.Role, item.Name, item.Price, t.number)
		return &item, t.number, vibeMatched, nil
	}
	return nil, 0, false, nil
}

// HasAnyStock reports whether the catalog holds anything in-stock for
// the slot's category/occasion/gender, ignoring price and colour.
// Distinguishes a genuinely unavailable mandatory slot from one that is
// merely priced out.
func (m *Matcher) HasAnyStock(ctx context.Context, slot *models.SelectionSlot, c Constraints) bool {
	items, err := m.catalog.Query(ctx, models.CatalogQuery{
		Categories: slot.Categories,
		Occasion:   c.Occasion,
		Gender:     c.Gender,
		Limit:      1,
	})
	return err == nil && len(items) > 0
}

// FillAll fills every slot in priority order, deducting each selection
// from the running budget before the next slot sees its ceiling. The
// complementary slot resolves its categories against the main piece.
// Returns the remaining budget and the per-slot errors that degraded
// slots (never a hard failure).
func (m *Matcher) FillAll(ctx context.Context, slots []models.SelectionSlot, budget float64, constraintsFor func(slot *models.SelectionSlot) Constraints) (float64, []error) {
	remaining := budget
	var degraded []error
	var mainCategory string

	for i := range slots {
		slot := &slots[i]

		if slot.Role == models.RoleComplementary {
			slot.Categories = complementaryCategories(mainCategory)
			if slot.Categories == nil {
				slot.Status = models.SlotUnfilled
				continue
			}
		}

		c := constraintsFor(slot)
		c.RemainingBudget = remaining

		item, tierNum, vibeMatched, err := m.FillSlot(ctx, slot, c)
		if err != nil {
			degraded = append(degraded, err)
			log.Printf("❌ %v", err)
		}
		if item == nil {
			if slot.Mandatory && !m.HasAnyStock(ctx, slot, c) {
				slot.Status = models.SlotUnavailable
			} else {
				slot.Status = models.SlotUnfilled
			}
			continue
		}

		slot.Item = item
		slot.MatchTier = tierNum
		slot.VibeMatched = vibeMatched
		slot.Status = models.SlotFilled
		remaining -= item.Price
		if slot.Role == models.RoleMainGarment {
			mainCategory = item.Category
		}
	}
	return remaining, degraded
}

// complementaryCategories pairs the main piece with its counterpart. A
// one-piece main (Full) needs no complementary garment.
func complementaryCategories(mainCategory string) []string {
	switch mainCategory {
	case "Top":
		return []string{"Bottom"}
	case "Bottom":
		return []string{"Top"}
	default:
		return nil
	}
}

func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, v := range list {
			if v == "" || seen[strings.ToLower(v)] {
				continue
			}
			seen[strings.ToLower(v)] = true
			out = append(out, v)
		}
	}
	return out
}
