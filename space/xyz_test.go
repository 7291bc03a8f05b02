package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYxyRoundTripIsExact(t *testing.T) {
	vectors := [][3]float64{
		{0.4124564, 0.2126729, 0.0193339},
		{0.3, 0.4, 0.2},
		{0.95047, 1.0, 1.08883},
		{0.01, 0.02, 0.05},
	}
	for _, xyz := range vectors {
		back := YxyToXYZ(XYZToYxy(xyz))
		for i := 0; i < 3; i++ {
			assert.InDelta(t, xyz[i], back[i], 1e-12)
		}
	}
}

func TestYxyDegenerateBlackUsesD65Chromaticity(t *testing.T) {
	yxy := XYZToYxy([3]float64{0, 0, 0})
	wx, wy := ChromaticityD65()
	assert.Equal(t, 0.0, yxy[0])
	assert.InDelta(t, wx, yxy[1], 1e-12)
	assert.InDelta(t, wy, yxy[2], 1e-12)
	// and back to exact black
	assert.Equal(t, [3]float64{0, 0, 0}, YxyToXYZ(yxy))
}

func TestLinearRGBXYZRoundTrip(t *testing.T) {
	for _, lrgb := range [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.2, 0.5, 0.8}} {
		back := XYZToLinearRGB(LinearRGBToXYZ(lrgb))
		for i := 0; i < 3; i++ {
			assert.InDelta(t, lrgb[i], back[i], 1e-7)
		}
	}
}

func TestIlluminantAdaptationRoundTrip(t *testing.T) {
	xyz := [3]float64{0.27, 0.18, 0.04}
	back := XYZCToD65(XYZD65ToC(xyz))
	for i := 0; i < 3; i++ {
		assert.InDelta(t, xyz[i], back[i], 1e-7)
	}
	// white points map onto each other
	d65 := XYZCToD65(WhiteC)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, WhiteD65[i], d65[i], 1e-4)
	}
}
