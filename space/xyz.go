package space

// Linear RGB <-> CIEXYZ for the sRGB primaries under illuminant D65.
// IEC 61966-2-1 matrix pair; values are exact inverses of each other.
var (
	mLinearRGBToXYZ = [3][3]float64{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	mXYZToLinearRGB = [3][3]float64{
		{3.24045484, -1.53713885, -0.49853155},
		{-0.96926639, 1.87601093, 0.04155608},
		{0.05564342, -0.20402585, 1.05722516},
	}
)

// WhiteD65 is the D65 reference white, derived from the row sums of the
// RGB-to-XYZ matrix so that sRGB white maps to Lab (100, 0, 0) exactly.
var WhiteD65 = [3]float64{
	mLinearRGBToXYZ[0][0] + mLinearRGBToXYZ[0][1] + mLinearRGBToXYZ[0][2],
	mLinearRGBToXYZ[1][0] + mLinearRGBToXYZ[1][1] + mLinearRGBToXYZ[1][2],
	mLinearRGBToXYZ[2][0] + mLinearRGBToXYZ[2][1] + mLinearRGBToXYZ[2][2],
}

// WhiteC is the illuminant C reference white.
var WhiteC = [3]float64{0.98074, 1.0, 1.18232}

// ChromaticityD65 returns the (x, y) chromaticity of the D65 white point.
func ChromaticityD65() (x, y float64) {
	s := WhiteD65[0] + WhiteD65[1] + WhiteD65[2]
	return WhiteD65[0] / s, WhiteD65[1] / s
}

// ChromaticityC returns the (x, y) chromaticity of the illuminant C
// white point.
func ChromaticityC() (x, y float64) {
	s := WhiteC[0] + WhiteC[1] + WhiteC[2]
	return WhiteC[0] / s, WhiteC[1] / s
}

// LinearRGBToXYZ converts linear RGB to CIEXYZ tristimulus values.
func LinearRGBToXYZ(lrgb [3]float64) [3]float64 {
	return mul3(mLinearRGBToXYZ, lrgb)
}

// XYZToLinearRGB converts CIEXYZ tristimulus values to linear RGB.
func XYZToLinearRGB(xyz [3]float64) [3]float64 {
	return mul3(mXYZToLinearRGB, xyz)
}

// XYZToYxy converts tristimulus values to luminance plus chromaticity.
// The degenerate stimulus X+Y+Z = 0 has no chromaticity; by convention
// it maps to the D65 white point chromaticity at zero luminance.
func XYZToYxy(xyz [3]float64) [3]float64 {
	s := xyz[0] + xyz[1] + xyz[2]
	if s == 0 {
		x, y := ChromaticityD65()
		return [3]float64{0, x, y}
	}
	return [3]float64{xyz[1], xyz[0] / s, xyz[1] / s}
}

// YxyToXYZ converts luminance plus chromaticity back to tristimulus
// values. It is the exact algebraic inverse of XYZToYxy away from the
// degenerate y = 0 line, which maps to black.
func YxyToXYZ(yxy [3]float64) [3]float64 {
	bigY, x, y := yxy[0], yxy[1], yxy[2]
	if y == 0 {
		return [3]float64{0, 0, 0}
	}
	return [3]float64{
		x / y * bigY,
		bigY,
		(1 - x - y) / y * bigY,
	}
}
