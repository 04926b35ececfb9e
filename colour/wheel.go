package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The colour wheel works in HSL space: hue in degrees [0, 360),
// saturation and lightness in [0, 1]. All harmony operations rotate
// the hue and convert back to a canonical #RRGGBB string, so the
// rest of the engine only ever passes hex codes around.

// NormalizeHex validates a hex colour string and returns its canonical
// uppercase #RRGGBB form. Accepts input with or without the leading '#'.
func NormalizeHex(hex string) (string, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return "", fmt.Errorf("invalid hex colour %q: want 6 hex digits", hex)
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return "", fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	return "#" + strings.ToUpper(s), nil
}

// HexToHSL converts a #RRGGBB string to hue (degrees, [0,360)),
// saturation and lightness (both [0,1]).
func HexToHSL(hex string) (h, s, l float64, err error) {
	canonical, err := NormalizeHex(hex)
	if err != nil {
		return 0, 0, 0, err
	}
	r64, _ := strconv.ParseUint(canonical[1:3], 16, 8)
	g64, _ := strconv.ParseUint(canonical[3:5], 16, 8)
	b64, _ := strconv.ParseUint(canonical[5:7], 16, 8)

	r := float64(r64) / 255.0
	g := float64(g64) / 255.0
	b := float64(b64) / 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l = (maxC + minC) / 2

	if maxC == minC {
		// Achromatic: hue and saturation are zero.
		return 0, 0, l, nil
	}

	delta := maxC - minC
	if l > 0.5 {
		s = delta / (2 - maxC - minC)
	} else {
		s = delta / (maxC + minC)
	}

	switch maxC {
	case r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	case b:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, l, nil
}

// HSLToHex converts HSL values back to a canonical #RRGGBB string.
// The hue is wrapped onto [0, 360) after any rotation, so negative
// intermediate values normalise correctly (-20° becomes 340°).
func HSLToHex(h, s, l float64) string {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	l = clamp01(l)

	if s == 0 {
		v := int(math.Round(l * 255))
		return fmt.Sprintf("#%02X%02X%02X", v, v, v)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360.0

	r := hueToChannel(p, q, hk+1.0/3.0)
	g := hueToChannel(p, q, hk)
	b := hueToChannel(p, q, hk-1.0/3.0)

	return fmt.Sprintf("#%02X%02X%02X",
		int(math.Round(r*255)),
		int(math.Round(g*255)),
		int(math.Round(b*255)))
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// clampLightness keeps monochromatic shades away from pure black/white.
func clampLightness(l float64) float64 {
	return math.Max(0.10, math.Min(0.90, l))
}

// Complementary returns the colour directly opposite on the wheel
// (hue +180°), holding saturation and lightness fixed.
func Complementary(seedHex string) (string, error) {
	h, s, l, err := HexToHSL(seedHex)
	if err != nil {
		return "", err
	}
	return HSLToHex(h+180, s, l), nil
}

// Analogous returns the two neighbours sitting 30° either side of the seed.
func Analogous(seedHex string) (left, right string, err error) {
	h, s, l, err := HexToHSL(seedHex)
	if err != nil {
		return "", "", err
	}
	return HSLToHex(h-30, s, l), HSLToHex(h+30, s, l), nil
}

// Triadic returns the two colours forming a triangle with the seed
// (hue +120° and +240°).
func Triadic(seedHex string) (first, second string, err error) {
	h, s, l, err := HexToHSL(seedHex)
	if err != nil {
		return "", "", err
	}
	return HSLToHex(h+120, s, l), HSLToHex(h+240, s, l), nil
}

// SplitComplementary returns the two colours flanking the seed's
// complement (hue +150° and +210°). Softer than pure complementary.
func SplitComplementary(seedHex string) (first, second string, err error) {
	h, s, l, err := HexToHSL(seedHex)
	if err != nil {
		return "", "", err
	}
	return HSLToHex(h+150, s, l), HSLToHex(h+210, s, l), nil
}

// Monochromatic returns four tints and shades of the seed: lightness
// shifted by +0.25, +0.12, -0.12 and -0.25, each clamped to [0.10, 0.90].
func Monochromatic(seedHex string) ([4]string, error) {
	var out [4]string
	h, s, l, err := HexToHSL(seedHex)
	if err != nil {
		return out, err
	}
	out[0] = HSLToHex(h, s, clampLightness(l+0.25))
	out[1] = HSLToHex(h, s, clampLightness(l+0.12))
	out[2] = HSLToHex(h, s, clampLightness(l-0.12))
	out[3] = HSLToHex(h, s, clampLightness(l-0.25))
	return out, nil
}
