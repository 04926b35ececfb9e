package models

import (
	"errors"
	"fmt"
)

// Engine error taxonomy. Configuration errors are fatal caller bugs and
// surface immediately; the rest are runtime conditions the engine
// recovers from with documented fallbacks.
var (
	// ErrConfiguration marks malformed caller input (bad seed colour,
	// empty slot list). Wrapped errors always name the invalid field.
	ErrConfiguration = errors.New("configuration error")

	// ErrDataUnavailable marks a catalog miss for one slot. Recoverable:
	// the slot goes unfilled and the bundle status degrades to partial.
	ErrDataUnavailable = errors.New("catalog data unavailable")

	// ErrSignalMissing marks an absent trend brief or style profile.
	// Recovered locally by substituting documented defaults.
	ErrSignalMissing = errors.New("upstream signal missing")

	// ErrFeedbackUnrecognised marks free-text feedback that matched no
	// known intent. Degrades to a full rebuild rather than failing.
	ErrFeedbackUnrecognised = errors.New("feedback not recognised")
)

// ConfigurationErrorf builds a fatal configuration error naming the
// offending field so the calling layer can correct its input.
func ConfigurationErrorf(field, format string, args ...any) error {
	return fmt.Errorf("%w: field %q: %s", ErrConfiguration, field, fmt.Sprintf(format, args...))
}
