package colour

import (
	"fmt"
	"strings"
)

// MaxNonNeutral is the rule-of-three ceiling: at most three distinct
// non-neutral colours in one curated bundle.
const MaxNonNeutral = 3

// BudgetResult reports the outcome of a rule-of-three check. Dropped is
// empty and Reason blank when the input was already compliant.
type BudgetResult struct {
	Kept    []string `json:"kept"`
	Dropped []string `json:"dropped"`
	Valid   bool     `json:"valid"`
	Reason  string   `json:"reason,omitempty"`
}

// EnforceColourBudget applies the rule of three to a list of colour names.
// Duplicates are collapsed preserving first-seen order. Neutrals are always
// retained; non-neutrals beyond maxNonNeutral are dropped in reverse
// priority order (the later the colour arrived, the sooner it goes), with
// a reason string naming the drops. Never silently truncates.
func EnforceColourBudget(colours []string, maxNonNeutral int) BudgetResult {
	if maxNonNeutral <= 0 {
		maxNonNeutral = MaxNonNeutral
	}

	seen := make(map[string]bool, len(colours))
	unique := make([]string, 0, len(colours))
	for _, c := range colours {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
	}

	nonNeutralCount := 0
	kept := make([]string, 0, len(unique))
	var dropped []string
	for _, c := range unique {
		if IsNeutral(c) {
			kept = append(kept, c)
			continue
		}
		if nonNeutralCount < maxNonNeutral {
			kept = append(kept, c)
			nonNeutralCount++
			continue
		}
		dropped = append(dropped, c)
	}

	if len(dropped) == 0 {
		return BudgetResult{
			Kept:   unique,
			Valid:  true,
			Reason: "",
		}
	}
	return BudgetResult{
		Kept:    kept,
		Dropped: dropped,
		Valid:   false,
		Reason: fmt.Sprintf("%d non-neutral colours exceed the rule of three; dropping %s",
			nonNeutralCount+len(dropped), strings.Join(dropped, ", ")),
	}
}

// Metal is a jewellery metal recommendation.
type Metal string

const (
	MetalGold     Metal = "Gold"
	MetalSilver   Metal = "Silver"
	MetalRoseGold Metal = "Rose Gold"
)

// undertoneMetals is the base undertone → metal table.
var undertoneMetals = map[string]Metal{
	"warm":    MetalGold,
	"cool":    MetalSilver,
	"neutral": MetalRoseGold,
}

// highCeremonyOccasions bias jewellery toward gold regardless of a warm
// or neutral undertone. Strictly cool undertones keep silver.
var highCeremonyOccasions = map[string]bool{
	"wedding":   true,
	"diwali":    true,
	"reception": true,
}

// MetalFor recommends a jewellery metal from the skin undertone, with a
// gold bias for high-ceremony occasions unless the undertone is strictly
// cool. Unknown undertones default to gold.
func MetalFor(undertone, occasion string) Metal {
	tone := strings.ToLower(strings.TrimSpace(undertone))
	if highCeremonyOccasions[strings.ToLower(occasion)] && tone != "cool" {
		return MetalGold
	}
	if metal, ok := undertoneMetals[tone]; ok {
		return metal
	}
	return MetalGold
}
