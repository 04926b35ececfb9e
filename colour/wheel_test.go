package colour

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hueDistance is the shortest angular distance between two hues.
func hueDistance(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b+360, 360))
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestComplementaryHueWrapAround(t *testing.T) {
	for _, seedHue := range []float64{0, 10, 90, 179, 180, 200, 300, 359} {
		seed := HSLToHex(seedHue, 0.6, 0.5)
		comp, err := Complementary(seed)
		require.NoError(t, err)

		h, _, _, err := HexToHSL(comp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 360.0)
		// Allow a small tolerance for the round trip through 8-bit RGB.
		assert.InDelta(t, 0, hueDistance(h, math.Mod(seedHue+180, 360)), 1.5,
			"seed hue %v", seedHue)
	}
}

func TestAnalogousSymmetry(t *testing.T) {
	seed := HSLToHex(200, 0.55, 0.45)
	left, right, err := Analogous(seed)
	require.NoError(t, err)

	lh, _, _, err := HexToHSL(left)
	require.NoError(t, err)
	rh, _, _, err := HexToHSL(right)
	require.NoError(t, err)

	assert.InDelta(t, 30, hueDistance(lh, 200), 1.5)
	assert.InDelta(t, 30, hueDistance(rh, 200), 1.5)
	assert.InDelta(t, 60, hueDistance(lh, rh), 2.0)
}

func TestAnalogousNegativeWrap(t *testing.T) {
	// -30° on a 10° seed must land at 340°, not -20°.
	seed := HSLToHex(10, 0.6, 0.5)
	left, _, err := Analogous(seed)
	require.NoError(t, err)

	lh, _, _, err := HexToHSL(left)
	require.NoError(t, err)
	assert.InDelta(t, 0, hueDistance(lh, 340), 1.5)
}

func TestTriadicGeometry(t *testing.T) {
	seed := HSLToHex(45, 0.7, 0.5)
	first, second, err := Triadic(seed)
	require.NoError(t, err)

	fh, _, _, err := HexToHSL(first)
	require.NoError(t, err)
	sh, _, _, err := HexToHSL(second)
	require.NoError(t, err)

	assert.InDelta(t, 120, hueDistance(fh, 45), 1.5)
	assert.InDelta(t, 120, hueDistance(sh, 45), 1.5)
	assert.InDelta(t, 120, hueDistance(fh, sh), 2.0)
}

func TestSplitComplementaryFlanksComplement(t *testing.T) {
	seed := HSLToHex(100, 0.5, 0.5)
	first, second, err := SplitComplementary(seed)
	require.NoError(t, err)

	fh, _, _, err := HexToHSL(first)
	require.NoError(t, err)
	sh, _, _, err := HexToHSL(second)
	require.NoError(t, err)

	assert.InDelta(t, 30, hueDistance(fh, 280), 1.5)
	assert.InDelta(t, 30, hueDistance(sh, 280), 1.5)
}

func TestMonochromaticLightnessClamp(t *testing.T) {
	for _, l := range []float64{0.0, 0.05, 0.2, 0.5, 0.85, 1.0} {
		seed := HSLToHex(320, 0.6, l)
		shades, err := Monochromatic(seed)
		require.NoError(t, err)
		for i, shade := range shades {
			_, _, sl, err := HexToHSL(shade)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, sl, 0.10-0.01, "seed l=%v shade %d", l, i)
			assert.LessOrEqual(t, sl, 0.90+0.01, "seed l=%v shade %d", l, i)
		}
	}
}

func TestTerracottaSeedScenario(t *testing.T) {
	// Terracotta #C67C5A sits around hue 19-21°; its complement lands
	// near 199-201° at the same saturation and lightness.
	h, s, l, err := HexToHSL("#C67C5A")
	require.NoError(t, err)
	assert.InDelta(t, 21, h, 3)

	comp, err := Complementary("#C67C5A")
	require.NoError(t, err)
	ch, cs, cl, err := HexToHSL(comp)
	require.NoError(t, err)

	assert.InDelta(t, 0, hueDistance(ch, h+180), 1.5)
	assert.InDelta(t, s, cs, 0.02)
	assert.InDelta(t, l, cl, 0.02)
}

func TestNormalizeHexRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "#12", "#GGGGGG", "12345", "#1234567"} {
		t.Run(fmt.Sprintf("%q", bad), func(t *testing.T) {
			_, err := NormalizeHex(bad)
			assert.Error(t, err)
		})
	}

	got, err := NormalizeHex("c67c5a")
	require.NoError(t, err)
	assert.Equal(t, "#C67C5A", got)
}

func TestHexHSLRoundTrip(t *testing.T) {
	for _, hex := range []string{"#046307", "#0047AB", "#FFD1DC", "#36454F", "#D4AF37"} {
		h, s, l, err := HexToHSL(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, HSLToHex(h, s, l))
	}
}
