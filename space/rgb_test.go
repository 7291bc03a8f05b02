package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearToSRGBClampsAndReports(t *testing.T) {
	rgb, saturated := LinearToSRGB([3]float64{2, 2, 2})
	assert.Equal(t, [3]float64{255, 255, 255}, rgb)
	assert.True(t, saturated)

	rgb, saturated = LinearToSRGB([3]float64{0.5, 0.5, 0.5})
	assert.False(t, saturated)
	for _, c := range rgb {
		assert.GreaterOrEqual(t, c, 0.0)
		assert.LessOrEqual(t, c, 255.0)
	}

	rgb, saturated = LinearToSRGB([3]float64{-0.2, 0.5, 0.5})
	assert.True(t, saturated)
	assert.Equal(t, 0.0, rgb[0])
}

func TestSRGBLinearRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, 8, 32, 100, 128, 200, 254, 255} {
		lin := SRGBToLinear([3]float64{v, v, v})
		rgb, saturated := LinearToSRGB(lin)
		require.False(t, saturated, "value %v", v)
		assert.InDelta(t, v, rgb[0], 1, "value %v", v)
	}
}

func TestSRGBWhiteIsExactlyLinearOne(t *testing.T) {
	lin := SRGBToLinear([3]float64{255, 255, 255})
	for _, c := range lin {
		assert.InDelta(t, 1.0, c, 1e-12)
	}
}
