package eval

import "math"

// conspicuityPeak is the CIELAB hue angle of maximum conspicuity,
// in the red-orange region.
const conspicuityPeak = 50.0 * math.Pi / 180

// Conspicuity estimates how much a CIELAB color attracts attention.
// The estimate grows with chroma and is weighted by hue, peaking for
// red-orange and dipping for blue-green; the result is >= 0 and 0 for
// achromatic colors.
func Conspicuity(lab [3]float64) float64 {
	c := math.Hypot(lab[1], lab[2])
	if c == 0 {
		return 0
	}
	h := math.Atan2(lab[2], lab[1])
	k := c * (1.1 + 0.45*math.Cos(h-conspicuityPeak))
	if k < 0 {
		return 0
	}
	return k
}
