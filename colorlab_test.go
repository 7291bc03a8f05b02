package colorlab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/colorlab/space"
)

func TestConvertReferenceLab(t *testing.T) {
	lab, sat, err := ConvertNamed(Triple{255, 0, 0}, "rgb", "lab")
	require.NoError(t, err)
	assert.False(t, sat)
	assert.InDelta(t, 53.2408, lab[0], 0.1)
	assert.InDelta(t, 80.0925, lab[1], 0.1)
	assert.InDelta(t, 67.2032, lab[2], 0.1)

	white, _, err := ConvertNamed(Triple{255, 255, 255}, "rgb", "lab")
	require.NoError(t, err)
	assert.InDelta(t, 100, white[0], 1e-9)
	assert.InDelta(t, 0, white[1], 1e-9)
	assert.InDelta(t, 0, white[2], 1e-9)
}

func TestConvertSameSpaceIsIdentity(t *testing.T) {
	in := Triple{0.3, 0.5, 0.7}
	for s := range spaceNames {
		out, sat, err := Convert(in, s, s)
		require.NoError(t, err)
		assert.False(t, sat)
		assert.Equal(t, in, out, "space %v", s)
	}
}

func TestConvertShortcutsSkipTheHub(t *testing.T) {
	// rgb -> lrgb must equal the direct gamma expansion, with no
	// round trip through XYZ.
	in := Triple{64, 128, 192}
	viaConvert, _, err := Convert(in, RGB, LinearRGB)
	require.NoError(t, err)
	direct := space.SRGBToLinear(in)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, direct[i], viaConvert[i], 1e-12)
	}

	// pccs -> munsell stays in the Munsell plane; the chain must not
	// touch the renotation table, so the value component survives
	// exactly.
	hls := Triple{8, 5.5, 6}
	hvc, sat, err := Convert(hls, PCCS, Munsell)
	require.NoError(t, err)
	assert.False(t, sat)
	assert.InDelta(t, 5.5, hvc[1], 1e-12)
}

func TestConvertAllPairs(t *testing.T) {
	// a moderate in-gamut color survives every from/to pairing
	rgb := Triple{178, 115, 76}
	for from := range spaceNames {
		seed, _, err := Convert(rgb, RGB, from)
		require.NoError(t, err)
		for to := range spaceNames {
			out, _, err := Convert(seed, from, to)
			require.NoError(t, err, "%v -> %v", from, to)
			for i := 0; i < 3; i++ {
				assert.False(t, out[i] != out[i], "%v -> %v produced NaN", from, to)
			}
		}
	}
}

func TestConvertUnknownSpace(t *testing.T) {
	_, _, err := Convert(Triple{0, 0, 0}, Space(99), RGB)
	assert.ErrorIs(t, err, ErrUnsupportedConversion)

	_, _, err = Convert(Triple{0, 0, 0}, RGB, Space(99))
	assert.ErrorIs(t, err, ErrUnsupportedConversion)

	_, _, err = ConvertNamed(Triple{0, 0, 0}, "rgb", "hsl")
	assert.ErrorIs(t, err, ErrUnsupportedConversion)
}

func TestConvertReportsSaturation(t *testing.T) {
	// Lab values far outside any display gamut clip on the way to sRGB.
	_, sat, err := Convert(Triple{50, 120, -120}, Lab, RGB)
	require.NoError(t, err)
	assert.True(t, sat)

	// in-gamut conversions stay clean
	_, sat, err = Convert(Triple{128, 128, 128}, RGB, Lab)
	require.NoError(t, err)
	assert.False(t, sat)
}

func TestParseSpace(t *testing.T) {
	s, err := ParseSpace("  MUNSELL ")
	require.NoError(t, err)
	assert.Equal(t, Munsell, s)

	_, err = ParseSpace("cmyk")
	assert.Error(t, err)

	for s, name := range spaceNames {
		assert.Equal(t, name, s.String())
		parsed, err := ParseSpace(name)
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}

func TestDistance(t *testing.T) {
	d, err := Distance(Triple{255, 0, 0}, Triple{255, 0, 0}, RGB)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-9)

	d, err = Distance(Triple{255, 0, 0}, Triple{0, 0, 255}, RGB)
	require.NoError(t, err)
	assert.Greater(t, d, 20.0)

	_, err = Distance(Triple{0, 0, 0}, Triple{0, 0, 0}, Space(99))
	assert.ErrorIs(t, err, ErrUnsupportedConversion)
}

func TestCategoryOf(t *testing.T) {
	name, err := CategoryOf(Triple{255, 0, 0}, RGB)
	require.NoError(t, err)
	assert.Equal(t, "red", name)

	name, err = CategoryOf(Triple{0, 0, 255}, RGB)
	require.NoError(t, err)
	assert.Equal(t, "blue", name)

	_, err = CategoryOf(Triple{0, 0, 0}, Space(99))
	assert.ErrorIs(t, err, ErrUnsupportedConversion)
}
