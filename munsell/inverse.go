package munsell

import (
	"math"

	"github.com/MeKo-Tech/colorlab/space"
)

// ToXYZ converts Munsell HVC to CIEXYZ tristimulus values under
// illuminant D65. Chroma below MonoThreshold or a negative hue
// short-circuits to the achromatic axis. saturated reports that the
// requested chroma exceeded the tabulated gamut and the chromaticity
// was extrapolated, or that the value was clamped to the table range.
func ToXYZ(hvc [3]float64) (xyz [3]float64, saturated bool) {
	ensureTable()

	h, v, c := hvc[0], hvc[1], hvc[2]
	if v <= 0 {
		return [3]float64{0, 0, 0}, false
	}
	if v > 10 {
		v = 10
		saturated = true
	}
	bigY := ValueToY(v)

	if c < MonoThreshold || h < 0 {
		xyz = [3]float64{
			whiteCx / whiteCy * bigY,
			bigY,
			(1 - whiteCx - whiteCy) / whiteCy * bigY,
		}
		return space.XYZCToD65(xyz), saturated
	}

	h = math.Mod(math.Mod(h, 100)+100, 100)
	hf := h / hueStepSize
	h0 := int(math.Floor(hf))
	t := hf - float64(h0)
	cf := c / chromaStepSize
	j0 := int(math.Floor(cf))
	u := cf - float64(j0)

	interp := func(level int) (float64, float64) {
		p00, o1 := point(level, h0, j0)
		p10, o2 := point(level, h0+1, j0)
		p01, o3 := point(level, h0, j0+1)
		p11, o4 := point(level, h0+1, j0+1)
		if o1 || o2 || o3 || o4 {
			saturated = true
		}
		x := (1-u)*((1-t)*p00.x+t*p10.x) + u*((1-t)*p01.x+t*p11.x)
		y := (1-u)*((1-t)*p00.y+t*p10.y) + u*((1-t)*p01.y+t*p11.y)
		return x, y
	}

	var x, y float64
	lo := int(math.Floor(v))
	switch {
	case lo < 1:
		x, y = interp(1)
	case lo >= valueLevels:
		x, y = interp(valueLevels)
	default:
		x0, y0 := interp(lo)
		x1, y1 := interp(lo + 1)
		w := v - float64(lo)
		x = x0 + w*(x1-x0)
		y = y0 + w*(y1-y0)
	}

	xyz = [3]float64{
		x / y * bigY,
		bigY,
		(1 - x - y) / y * bigY,
	}
	return space.XYZCToD65(xyz), saturated
}
