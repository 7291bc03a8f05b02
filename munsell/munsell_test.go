package munsell

import (
	"math"
	"testing"

	"github.com/MeKo-Tech/colorlab/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgbToXYZ(r, g, b float64) [3]float64 {
	return space.LinearRGBToXYZ(space.SRGBToLinear([3]float64{r, g, b}))
}

func chromaticity(xyz [3]float64) (float64, float64) {
	s := xyz[0] + xyz[1] + xyz[2]
	return xyz[0] / s, xyz[1] / s
}

func TestValuePolynomialInversion(t *testing.T) {
	for _, v := range []float64{0.1, 0.5, 1, 2.5, 5, 7.3, 9.9, 10} {
		got := YToValue(ValueToY(v))
		assert.InDelta(t, v, got, 0.01, "value %v", v)
	}
	assert.Equal(t, 0.0, YToValue(0))
	assert.Equal(t, 10.0, YToValue(2)) // above the table range clamps
}

func TestAchromaticChromaIgnoresHue(t *testing.T) {
	a, sat1 := ToXYZ([3]float64{30, 5, 0})
	b, sat2 := ToXYZ([3]float64{80, 5, 0})
	assert.False(t, sat1)
	assert.False(t, sat2)
	assert.Equal(t, a, b)

	// the achromatic axis carries the value's luminance
	assert.InDelta(t, ValueToY(5), a[1], 1e-9)
}

func TestNegativeHueIsAchromatic(t *testing.T) {
	a, _ := ToXYZ([3]float64{-1, 6, 4})
	b, _ := ToXYZ([3]float64{12, 6, 0})
	assert.Equal(t, a, b)
}

func TestGrayMapsToZeroChroma(t *testing.T) {
	hvc, saturated := FromXYZ(rgbToXYZ(128, 128, 128))
	assert.False(t, saturated)
	assert.Equal(t, 0.0, hvc[2])
	assert.Greater(t, hvc[1], 4.0)
	assert.Less(t, hvc[1], 7.0)
}

func TestMidGamutRoundTrip(t *testing.T) {
	xyz := rgbToXYZ(200, 80, 40)
	hvc, saturated := FromXYZ(xyz)
	require.False(t, saturated)
	assert.Greater(t, hvc[2], 1.0, "mid gamut color must be chromatic")

	back, _ := ToXYZ(hvc)
	x0, y0 := chromaticity(xyz)
	x1, y1 := chromaticity(back)
	assert.InDelta(t, x0, x1, 0.01)
	assert.InDelta(t, y0, y1, 0.01)
	assert.InDelta(t, xyz[1], back[1], 0.005)
}

func TestRoundTripAcrossGamut(t *testing.T) {
	for r := 30; r < 256; r += 45 {
		for g := 30; g < 256; g += 45 {
			for b := 30; b < 256; b += 45 {
				xyz := rgbToXYZ(float64(r), float64(g), float64(b))
				hvc, saturated := FromXYZ(xyz)
				if saturated {
					continue // outside the tabulated gamut
				}
				back, _ := ToXYZ(hvc)
				x0, y0 := chromaticity(xyz)
				x1, y1 := chromaticity(back)
				if math.Abs(x0-x1) > 0.02 || math.Abs(y0-y1) > 0.02 {
					t.Fatalf("rgb(%d,%d,%d): chromaticity (%f,%f) came back as (%f,%f)",
						r, g, b, x0, y0, x1, y1)
				}
			}
		}
	}
}

func TestOutOfTableChromaExtrapolatesAndFlags(t *testing.T) {
	xyz, saturated := ToXYZ([3]float64{50, 5, 60})
	assert.True(t, saturated)
	for _, c := range xyz {
		assert.False(t, math.IsNaN(c))
	}
}

func TestValueAboveTableClamps(t *testing.T) {
	_, saturated := ToXYZ([3]float64{50, 11, 2})
	assert.True(t, saturated)
}

func TestToString(t *testing.T) {
	assert.Equal(t, "5.0YR 6.0/8.0", ToString([3]float64{15, 6, 8}))
	assert.Equal(t, "N 5.0", ToString([3]float64{30, 5, 0.01}))
	assert.Equal(t, "10.0RP 2.0/4.0", ToString([3]float64{0, 2, 4}))
}

func TestParseHue(t *testing.T) {
	cases := map[string]float64{
		"5R":    5,
		"5YR":   15,
		"2.5Y":  22.5,
		"10GY":  40,
		"5G":    45,
		"7.5BG": 57.5,
		"5B":    65,
		"5PB":   75,
		"5P":    85,
		"10RP":  0, // wraps to the top of the circle
	}
	for name, want := range cases {
		got, err := ParseHue(name)
		require.NoError(t, err, name)
		assert.InDelta(t, want, got, 1e-9, name)
	}

	n, err := ParseHue("N")
	require.NoError(t, err)
	assert.Less(t, n, 0.0)

	_, err = ParseHue("5XX")
	assert.Error(t, err)
	_, err = ParseHue("R")
	assert.Error(t, err)
}

func TestParseNotation(t *testing.T) {
	hvc, err := Parse("5.0YR 6.0/8.0")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{15, 6, 8}, hvc)

	hvc, err = Parse("N 5.0")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0, 5, 0}, hvc)

	_, err = Parse("garbage")
	assert.Error(t, err)
}

func TestNotationRoundTrip(t *testing.T) {
	orig := [3]float64{62.5, 4.0, 6.0}
	parsed, err := Parse(ToString(orig))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, orig[i], parsed[i], 0.05)
	}
}
