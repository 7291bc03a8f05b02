package munsell

import (
	"math"

	"github.com/MeKo-Tech/colorlab/space"
)

// whitePointTolerance is the chromaticity distance from the illuminant
// C white point below which a stimulus is treated as achromatic.
const whitePointTolerance = 0.0015

// FromXYZ converts CIEXYZ tristimulus values under illuminant D65 to
// Munsell HVC. H is in [0, 100), V in [0, 10] and C >= 0; achromatic
// results have C = 0. saturated reports that the chromaticity fell
// outside the tabulated gamut and the chroma was extrapolated.
func FromXYZ(xyz [3]float64) (hvc [3]float64, saturated bool) {
	ensureTable()

	adapted := space.XYZD65ToC(xyz)
	sum := adapted[0] + adapted[1] + adapted[2]
	if sum <= 0 {
		return [3]float64{0, 0, 0}, false
	}
	x, y := adapted[0]/sum, adapted[1]/sum
	v := YToValue(adapted[1])
	if v <= 0 {
		return [3]float64{0, 0, 0}, false
	}

	if math.Abs(x-whiteCx) < whitePointTolerance && math.Abs(y-whiteCy) < whitePointTolerance {
		return [3]float64{0, v, 0}, false
	}

	lo := int(math.Floor(v))
	switch {
	case lo < 1:
		// below the lowest tabulated level the level-1 chromaticity
		// grid is used directly
		h, c, out := locate(x, y, 1)
		return [3]float64{h, v, c}, out
	case lo >= valueLevels:
		h, c, out := locate(x, y, valueLevels)
		return [3]float64{h, v, c}, out
	}

	h0, c0, out0 := locate(x, y, lo)
	h1, c1, out1 := locate(x, y, lo+1)
	w := v - float64(lo)

	// blend hue along the short way around the circle
	dh := h1 - h0
	if dh > 50 {
		dh -= 100
	} else if dh < -50 {
		dh += 100
	}
	h := math.Mod(h0+w*dh+100, 100)
	c := c0 + w*(c1-c0)
	if c < MonoThreshold {
		return [3]float64{0, v, 0}, out0 || out1
	}
	return [3]float64{h, v, c}, out0 || out1
}

// locate finds the Munsell hue and chroma of a chromaticity at one
// integer value level. It scans the hue sectors and chroma rings for
// the containing grid quadrilateral; chromaticities beyond the outer
// ring are extrapolated radially from the white point and flagged.
func locate(x, y float64, level int) (hue, chroma float64, outside bool) {
	for h := 0; h < hueSteps; h++ {
		inner := maxChromaIndex(level, h)
		if m := maxChromaIndex(level, h+1); m < inner {
			inner = m
		}
		for j := 0; j < inner; j++ {
			a, _ := point(level, h, j)
			b, _ := point(level, h+1, j)
			c, _ := point(level, h+1, j+1)
			d, _ := point(level, h, j+1)
			if !inQuad(x, y, a, b, c, d) {
				continue
			}
			t, u, ok := invBilinear(x, y, a, b, c, d)
			if !ok {
				// degenerate quadrilateral, keep scanning
				continue
			}
			hue = math.Mod((float64(h)+t)*hueStepSize, 100)
			chroma = (float64(j) + u) * chromaStepSize
			return hue, chroma, false
		}
	}
	return locateOutside(x, y, level)
}

// locateOutside handles chromaticities beyond the outermost tabulated
// chroma ring: it finds the angular sector between the white point
// rays through the ring corners and scales chroma by the radial
// overshoot.
func locateOutside(x, y float64, level int) (hue, chroma float64, outside bool) {
	for h := 0; h < hueSteps; h++ {
		outer := maxChromaIndex(level, h)
		if m := maxChromaIndex(level, h+1); m < outer {
			outer = m
		}
		a, _ := point(level, h, outer)
		b, _ := point(level, h+1, outer)

		c1 := cross(whiteCx, whiteCy, a.x, a.y, x, y)
		c2 := cross(whiteCx, whiteCy, b.x, b.y, x, y)
		if (c1 > 0) == (c2 > 0) && c1 != 0 && c2 != 0 {
			continue
		}

		abx, aby := b.x-a.x, b.y-a.y
		den := abx*abx + aby*aby
		if den < 1e-15 {
			continue
		}
		t := ((x-a.x)*abx + (y-a.y)*aby) / den
		if t < -0.2 || t > 1.2 {
			continue
		}
		t = math.Max(0, math.Min(1, t))
		ex, ey := a.x+t*abx, a.y+t*aby
		ringDist := math.Hypot(ex-whiteCx, ey-whiteCy)
		if ringDist < 1e-12 {
			continue
		}
		dist := math.Hypot(x-whiteCx, y-whiteCy)
		hue = math.Mod((float64(h)+t)*hueStepSize, 100)
		chroma = float64(outer) * chromaStepSize * (dist / ringDist)
		return hue, chroma, true
	}
	// no sector matched: resolve as achromatic
	return 0, 0, true
}

// cross is the z component of (a-o) x (b-o).
func cross(ox, oy, ax, ay, bx, by float64) float64 {
	return (ax-ox)*(by-oy) - (ay-oy)*(bx-ox)
}

// inQuad reports whether (x, y) lies inside the convex quadrilateral
// a-b-c-d using signed-area tests; points on an edge count as inside.
func inQuad(x, y float64, a, b, c, d tablePoint) bool {
	sign := 0
	edges := [4][2]tablePoint{{a, b}, {b, c}, {c, d}, {d, a}}
	for _, e := range edges {
		cr := cross(e[0].x, e[0].y, e[1].x, e[1].y, x, y)
		switch {
		case cr > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cr < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

// invBilinear solves p = (1-u)(1-t)a + (1-u)t b + u t c + u(1-t) d for
// the grid parameters t (hue direction) and u (chroma direction). The
// chroma parameter satisfies a quadratic equation; a vanishing leading
// coefficient degrades to the linear case and an unsolvable system
// reports ok = false.
func invBilinear(x, y float64, a, b, c, d tablePoint) (t, u float64, ok bool) {
	const eps = 1e-12
	ex, ey := b.x-a.x, b.y-a.y
	fx, fy := d.x-a.x, d.y-a.y
	gx, gy := a.x-b.x+c.x-d.x, a.y-b.y+c.y-d.y
	hx, hy := x-a.x, y-a.y

	k2 := gx*fy - gy*fx
	k1 := ex*fy - ey*fx + hx*gy - hy*gx
	k0 := hx*ey - hy*ex

	var candidates []float64
	if math.Abs(k2) < eps {
		if math.Abs(k1) < eps {
			return 0, 0, false
		}
		candidates = []float64{-k0 / k1}
	} else {
		disc := k1*k1 - 4*k2*k0
		if disc < 0 {
			return 0, 0, false
		}
		sq := math.Sqrt(disc)
		candidates = []float64{(-k1 + sq) / (2 * k2), (-k1 - sq) / (2 * k2)}
	}

	for _, cu := range candidates {
		dx := ex + gx*cu
		dy := ey + gy*cu
		var ct float64
		if math.Abs(dx) >= math.Abs(dy) {
			if math.Abs(dx) < eps {
				continue
			}
			ct = (hx - fx*cu) / dx
		} else {
			ct = (hy - fy*cu) / dy
		}
		if cu >= -0.001 && cu <= 1.001 && ct >= -0.001 && ct <= 1.001 {
			return clamp01(ct), clamp01(cu), true
		}
	}
	return 0, 0, false
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
