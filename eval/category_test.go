package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MeKo-Tech/colorlab/space"
)

func rgbToYxy(rgb [3]float64) [3]float64 {
	return space.XYZToYxy(space.LinearRGBToXYZ(space.SRGBToLinear(rgb)))
}

func TestCategoryOfPrimaries(t *testing.T) {
	tests := []struct {
		name string
		rgb  [3]float64
		want string
	}{
		{"red", [3]float64{255, 0, 0}, "red"},
		{"green", [3]float64{0, 255, 0}, "green"},
		{"blue", [3]float64{0, 0, 255}, "blue"},
		{"yellow", [3]float64{255, 255, 0}, "yellow"},
		{"white", [3]float64{255, 255, 255}, "white"},
		{"near black", [3]float64{5, 5, 5}, "black"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CategoryOf(rgbToYxy(tc.rgb)))
		})
	}
}

func TestCategoryOfOffGridSnapsToNearestCell(t *testing.T) {
	// D65 white point sits inside the grid; nudging the chromaticity a
	// hair must not change the answer.
	base := rgbToYxy([3]float64{255, 255, 255})
	nudged := [3]float64{base[0], base[1] + 0.004, base[2] - 0.004}
	assert.Equal(t, CategoryOf(base), CategoryOf(nudged))
}

func TestCategoryOfAlwaysNamesSomething(t *testing.T) {
	// Even chromaticities far outside the tabulated area resolve to the
	// nearest occupied cell rather than the empty string.
	got := CategoryOf([3]float64{0.5, 0.05, 0.05})
	assert.Contains(t, categoryCodes, byteOfCategory(got))
}

func byteOfCategory(name string) byte {
	for b, n := range categoryCodes {
		if n == name {
			return b
		}
	}
	return 0
}
