// Package munsell converts between CIEXYZ (illuminant D65) and the
// Munsell hue/value/chroma notation using an empirical renotation
// table under illuminant C.
//
// The forward direction inverts the Munsell value polynomial with
// Newton's method and locates the chromaticity inside the hue/chroma
// grid of the table with signed-area containment tests and an inverse
// bilinear solve. The inverse direction interpolates the table
// bilinearly and extrapolates along the outer chroma edge when a
// requested chroma exceeds the tabulated gamut, reporting the
// condition through the saturated return value.
package munsell

import "sync"

const (
	// hueSteps is the number of tabulated hue columns; adjacent
	// columns are hueStepSize Munsell hue units apart.
	hueSteps    = 40
	hueStepSize = 2.5

	// chromaStepSize is the chroma spacing of adjacent table rows.
	chromaStepSize = 2.0

	// valueLevels is the number of tabulated integer value levels
	// (1 through valueLevels).
	valueLevels = 10

	// MonoThreshold is the chroma below which a color is treated as
	// achromatic.
	MonoThreshold = 0.05

	tableScale = 1e4
)

// tablePoint is a decoded (x, y) chromaticity under illuminant C.
type tablePoint struct {
	x, y float64
}

// renotation is the decoded immutable table: [value-1][hue] rows of
// chromaticities for chroma 0, 2, 4, ... up to the per-bucket maximum.
var (
	renotation     [valueLevels][hueSteps][]tablePoint
	decodeOnce     sync.Once
	whiteCx, whiteCy float64
)

// decodeRow integrates a second-order delta-encoded row back into
// absolute chromaticities.
func decodeRow(enc []int16) []tablePoint {
	n := len(enc) / 2
	pts := make([]tablePoint, n)
	var xs, ys = make([]float64, n), make([]float64, n)
	for axis := 0; axis < 2; axis++ {
		dst := xs
		if axis == 1 {
			dst = ys
		}
		dst[0] = float64(enc[axis])
		if n > 1 {
			d := float64(enc[2+axis])
			dst[1] = dst[0] + d
			for i := 2; i < n; i++ {
				d += float64(enc[2*i+axis])
				dst[i] = dst[i-1] + d
			}
		}
	}
	for i := 0; i < n; i++ {
		pts[i] = tablePoint{xs[i] / tableScale, ys[i] / tableScale}
	}
	return pts
}

// ensureTable decodes the renotation data exactly once.
func ensureTable() {
	decodeOnce.Do(func() {
		for v := 0; v < valueLevels; v++ {
			for h := 0; h < hueSteps; h++ {
				renotation[v][h] = decodeRow(renotationData[v][h][:])
			}
		}
		const sum = 0.98074 + 1.0 + 1.18232
		whiteCx = 0.98074 / sum
		whiteCy = 1.0 / sum
	})
}

// maxChromaIndex returns the highest valid chroma row index for a
// (value level, hue step) bucket.
func maxChromaIndex(level, hue int) int {
	return len(renotation[level-1][hue%hueSteps]) - 1
}

// point returns the table chromaticity at an integer grid position.
// Chroma indexes beyond the tabulated maximum are extrapolated along
// the last valid edge; outside reports that extrapolation happened.
func point(level, hue, chroma int) (p tablePoint, outside bool) {
	row := renotation[level-1][((hue%hueSteps)+hueSteps)%hueSteps]
	if chroma < len(row) {
		return row[chroma], false
	}
	// extrapolate from the outermost tabulated pair
	last := len(row) - 1
	k := float64(chroma - last)
	p1, p2 := row[last-1], row[last]
	return tablePoint{
		x: p2.x + k*(p2.x-p1.x),
		y: p2.y + k*(p2.y-p1.y),
	}, true
}
