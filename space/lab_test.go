package space

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgbToLab(rgb [3]float64) [3]float64 {
	return XYZToLab(LinearRGBToXYZ(SRGBToLinear(rgb)))
}

func TestReferenceLabValues(t *testing.T) {
	red := rgbToLab([3]float64{255, 0, 0})
	assert.InDelta(t, 53.24, red[0], 0.1)
	assert.InDelta(t, 80.09, red[1], 0.1)
	assert.InDelta(t, 67.20, red[2], 0.1)

	white := rgbToLab([3]float64{255, 255, 255})
	assert.InDelta(t, 100, white[0], 1e-9)
	assert.InDelta(t, 0, white[1], 1e-9)
	assert.InDelta(t, 0, white[2], 1e-9)
}

// cross-check the full sRGB -> Lab chain against go-colorful, which
// implements the same standard independently
func TestLabAgainstColorful(t *testing.T) {
	for _, rgb := range [][3]float64{{255, 0, 0}, {12, 90, 200}, {200, 80, 40}, {128, 128, 128}} {
		got := rgbToLab(rgb)
		c := colorful.Color{R: rgb[0] / 255, G: rgb[1] / 255, B: rgb[2] / 255}
		l, a, b := c.Lab()
		assert.InDelta(t, l*100, got[0], 0.2)
		assert.InDelta(t, a*100, got[1], 0.6)
		assert.InDelta(t, b*100, got[2], 0.6)
	}
}

func TestLabRoundTripWithinOnePerChannel(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				rgb := [3]float64{float64(r), float64(g), float64(b)}
				back, saturated := LinearToSRGB(XYZToLinearRGB(LabToXYZ(rgbToLab(rgb))))
				require.False(t, saturated)
				for i := 0; i < 3; i++ {
					if math.Abs(rgb[i]-back[i]) > 1 {
						t.Fatalf("rgb %v -> %v channel %d off by more than 1", rgb, back, i)
					}
				}
			}
		}
	}
}

func TestLChPolarForm(t *testing.T) {
	lab := [3]float64{50, 30, -40}
	lch := LabToLCh(lab)
	assert.InDelta(t, 50, lch[0], 1e-12)
	assert.InDelta(t, 50, lch[1], 1e-9) // 3-4-5 triangle
	assert.GreaterOrEqual(t, lch[2], 0.0)
	assert.Less(t, lch[2], 360.0)

	back := LChToLab(lch)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, lab[i], back[i], 1e-9)
	}
}
