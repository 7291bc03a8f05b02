// Package pccs converts between Munsell HVC and the Practical Color
// Coordinate System hue/lightness/saturation form, and classifies PCCS
// colors into the standard named tone regions.
//
// Two conversion strategies are provided. Accurate (the default)
// interpolates the tabulated per-hue data and inverts the saturation
// polynomial with Newton's method; Concise uses closed-form
// approximations that trade a little accuracy for speed.
package pccs

import "math"

// Method selects the conversion strategy.
type Method int

const (
	// Accurate interpolates tabulated breakpoints and solves the
	// cubic saturation polynomial iteratively.
	Accurate Method = iota
	// Concise uses closed-form trigonometric and quadratic-formula
	// approximations.
	Concise
)

// MonoThreshold is the saturation below which a PCCS color is treated
// as achromatic.
const MonoThreshold = 0.01

// hueBreakpoints maps PCCS hues 1..25 to Munsell hues; entry 24 wraps
// back to hue 1 at Munsell 100. Piecewise-linear interpolation between
// adjacent entries defines the accurate hue transform in both
// directions.
var hueBreakpoints = [25]float64{
	0, 4, 8, 13, 18, 24, 29, 34, 39, 44, 49, 54,
	59, 64, 68, 72, 76, 80, 84, 87, 90, 93, 96, 98, 100,
}

// saturationCoef holds the per-hue cubic coefficients (a1, a2, a3) of
// the Munsell chroma polynomial C = a1*s + a2*s^2 + a3*s^3. Entries
// correspond to the hue breakpoints and are interpolated linearly for
// fractional hues.
var saturationCoef = [25][3]float64{
	{1.10000000, 0.02500000, 0.001},
	{1.15176381, 0.02482963, 0.001},
	{1.20000000, 0.02433013, 0.001},
	{1.24142136, 0.02353553, 0.001},
	{1.27320508, 0.02250000, 0.001},
	{1.29318517, 0.02129410, 0.001},
	{1.30000000, 0.02000000, 0.001},
	{1.29318517, 0.01870590, 0.001},
	{1.27320508, 0.01750000, 0.001},
	{1.24142136, 0.01646447, 0.001},
	{1.20000000, 0.01566987, 0.001},
	{1.15176381, 0.01517037, 0.001},
	{1.10000000, 0.01500000, 0.001},
	{1.04823619, 0.01517037, 0.001},
	{1.00000000, 0.01566987, 0.001},
	{0.95857864, 0.01646447, 0.001},
	{0.92679492, 0.01750000, 0.001},
	{0.90681483, 0.01870590, 0.001},
	{0.90000000, 0.02000000, 0.001},
	{0.90681483, 0.02129410, 0.001},
	{0.92679492, 0.02250000, 0.001},
	{0.95857864, 0.02353553, 0.001},
	{1.00000000, 0.02433013, 0.001},
	{1.04823619, 0.02482963, 0.001},
	{1.10000000, 0.02500000, 0.001},
}

// concise closed-form constants: the average saturation coefficients
// and the hue correction amplitude fitted against the breakpoint
// table.
const (
	conciseA1      = 1.10
	conciseA2      = 0.0225
	conciseHueAmp1 = 2.2
	conciseHueAmp2 = 0.3
)

// FromMunsell converts Munsell HVC to PCCS hls using the given method.
// Hue is in [0, 24) with 0 equivalent to 24, lightness tracks the
// Munsell value, and saturation is >= 0 with values below
// MonoThreshold meaning achromatic.
func FromMunsell(hvc [3]float64, method Method) [3]float64 {
	h, v, c := hvc[0], hvc[1], hvc[2]
	if c < 0.05 || h < 0 {
		return [3]float64{0, v, 0}
	}
	var hue, sat float64
	if method == Concise {
		hue = conciseHueFromMunsell(h)
		sat = conciseSaturation(c)
	} else {
		hue = accurateHueFromMunsell(h)
		sat = accurateSaturation(c, hue)
	}
	if hue >= 24 {
		hue -= 24
	}
	return [3]float64{hue, v, sat}
}

// ToMunsell converts PCCS hls back to Munsell HVC using the given
// method.
func ToMunsell(hls [3]float64, method Method) [3]float64 {
	h, l, s := hls[0], hls[1], hls[2]
	if s < MonoThreshold {
		return [3]float64{0, l, 0}
	}
	var hue, chroma float64
	if method == Concise {
		hue = conciseHueToMunsell(h)
		chroma = conciseChroma(s)
	} else {
		hue = accurateHueToMunsell(h)
		chroma = evalChromaPolynomial(s, normalizeHue(h))
	}
	return [3]float64{hue, l, chroma}
}

// normalizeHue folds a PCCS hue into [1, 25).
func normalizeHue(h float64) float64 {
	h = math.Mod(math.Mod(h-1, 24)+24, 24) + 1
	return h
}

// accurateHueFromMunsell interpolates the breakpoint table.
func accurateHueFromMunsell(munsellHue float64) float64 {
	mh := math.Mod(math.Mod(munsellHue, 100)+100, 100)
	for k := 0; k < 24; k++ {
		if mh >= hueBreakpoints[k] && mh <= hueBreakpoints[k+1] {
			t := (mh - hueBreakpoints[k]) / (hueBreakpoints[k+1] - hueBreakpoints[k])
			return float64(k+1) + t
		}
	}
	return 1
}

// accurateHueToMunsell is the piecewise-linear inverse of
// accurateHueFromMunsell.
func accurateHueToMunsell(pccsHue float64) float64 {
	h := normalizeHue(pccsHue)
	k := int(math.Floor(h)) - 1
	if k >= 24 {
		k = 23
	}
	f := h - math.Floor(h)
	return math.Mod(hueBreakpoints[k]+f*(hueBreakpoints[k+1]-hueBreakpoints[k]), 100)
}

// coefAt interpolates the saturation coefficient triple at a
// fractional PCCS hue.
func coefAt(h float64) (a1, a2, a3 float64) {
	h = normalizeHue(h)
	k := int(math.Floor(h)) - 1
	if k >= 24 {
		k = 23
	}
	f := h - math.Floor(h)
	c0, c1 := saturationCoef[k], saturationCoef[k+1]
	return c0[0] + f*(c1[0]-c0[0]),
		c0[1] + f*(c1[1]-c0[1]),
		c0[2] + f*(c1[2]-c0[2])
}

// evalChromaPolynomial evaluates the Munsell chroma cubic for a PCCS
// saturation at the given hue.
func evalChromaPolynomial(s, hue float64) float64 {
	a1, a2, a3 := coefAt(hue)
	return s * (a1 + s*(a2+s*a3))
}

const (
	saturationTolerance = 0.001
	saturationMaxIter   = 30
)

// accurateSaturation inverts the chroma cubic with Newton's method.
// The iteration is capped; on non-convergence the last estimate is
// returned.
func accurateSaturation(chroma, hue float64) float64 {
	a1, a2, a3 := coefAt(hue)
	s := chroma / a1
	for i := 0; i < saturationMaxIter; i++ {
		f := s*(a1+s*(a2+s*a3)) - chroma
		if f < saturationTolerance && f > -saturationTolerance {
			break
		}
		d := a1 + s*(2*a2+3*a3*s)
		if d <= 0 {
			break
		}
		s -= f / d
		if s < 0 {
			s = 0
		}
	}
	return s
}

// conciseSaturation solves conciseA2*s^2 + conciseA1*s - chroma = 0
// with the quadratic formula.
func conciseSaturation(chroma float64) float64 {
	return (-conciseA1 + math.Sqrt(conciseA1*conciseA1+4*conciseA2*chroma)) / (2 * conciseA2)
}

// conciseChroma is the closed-form inverse of conciseSaturation.
func conciseChroma(s float64) float64 {
	return s * (conciseA1 + conciseA2*s)
}

// conciseHueFromMunsell is a trigonometric fit of the breakpoint
// interpolation.
func conciseHueFromMunsell(munsellHue float64) float64 {
	mh := math.Mod(math.Mod(munsellHue, 100)+100, 100)
	h := 1 + 0.24*mh -
		conciseHueAmp1*math.Sin(math.Pi*mh/100) +
		conciseHueAmp2*math.Sin(2*math.Pi*mh/100)
	h = math.Mod(math.Mod(h-1, 24)+24, 24) + 1
	return h
}

// conciseHueToMunsell inverts the concise hue fit with a few
// fixed-point refinements (the map contracts with factor < 0.5).
func conciseHueToMunsell(pccsHue float64) float64 {
	h := normalizeHue(pccsHue)
	mh := (h - 1) / 0.24
	for i := 0; i < 6; i++ {
		mh = (h - 1 +
			conciseHueAmp1*math.Sin(math.Pi*mh/100) -
			conciseHueAmp2*math.Sin(2*math.Pi*mh/100)) / 0.24
	}
	return math.Mod(math.Mod(mh, 100)+100, 100)
}
