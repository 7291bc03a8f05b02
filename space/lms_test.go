package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLMSMatrixPairsAreExactInverses(t *testing.T) {
	bases := []LMSBasis{SmithPokorny, HuntPointerEstevez, VonKries, Bradford, CAT02}
	vectors := [][3]float64{
		{0.95047, 1.0, 1.08883},
		{0.3, 0.5, 0.2},
		{0.01, 0.99, 0.44},
	}
	for _, basis := range bases {
		for _, v := range vectors {
			back := LMSToXYZBasis(XYZToLMSBasis(v, basis), basis)
			for i := 0; i < 3; i++ {
				assert.InDelta(t, v[i], back[i], 1e-6, "basis %v", basis)
			}
		}
	}
}

func TestLMSDefaultBasisIsSmithPokorny(t *testing.T) {
	v := [3]float64{0.4, 0.3, 0.2}
	assert.Equal(t, XYZToLMSBasis(v, SmithPokorny), XYZToLMS(v))
	assert.Equal(t, LMSToXYZBasis(v, SmithPokorny), LMSToXYZ(v))
}

func TestYIQRanges(t *testing.T) {
	// primaries at full scale stay inside the nominal YIQ ranges
	for _, lrgb := range [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}} {
		yiq := LinearRGBToYIQ(lrgb)
		assert.GreaterOrEqual(t, yiq[0], 0.0)
		assert.LessOrEqual(t, yiq[0], 1.0+1e-9)
		assert.LessOrEqual(t, yiq[1], 0.5959+1e-4)
		assert.GreaterOrEqual(t, yiq[1], -0.5959-1e-4)
		assert.LessOrEqual(t, yiq[2], 0.5227+1e-4)
		assert.GreaterOrEqual(t, yiq[2], -0.5227-1e-4)

		back := YIQToLinearRGB(yiq)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, lrgb[i], back[i], 1e-6)
		}
	}
}
