package space

import "math"

// delta is 6/29, the knee of the CIELAB companding function.
const labDelta = 6.0 / 29.0

// labF is the CIELAB companding function: cube root above (6/29)^3,
// linear continuation below it.
func labF(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

// labFInv is the exact piecewise inverse of labF.
func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}

// XYZToLab converts tristimulus values to CIELAB under the D65 white
// point.
func XYZToLab(xyz [3]float64) [3]float64 {
	return XYZToLabWhite(xyz, WhiteD65)
}

// LabToXYZ converts CIELAB under the D65 white point back to
// tristimulus values.
func LabToXYZ(lab [3]float64) [3]float64 {
	return LabToXYZWhite(lab, WhiteD65)
}

// XYZToLabWhite converts tristimulus values to CIELAB relative to an
// arbitrary reference white.
func XYZToLabWhite(xyz, white [3]float64) [3]float64 {
	fx := labF(xyz[0] / white[0])
	fy := labF(xyz[1] / white[1])
	fz := labF(xyz[2] / white[2])
	return [3]float64{
		116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

// LabToXYZWhite converts CIELAB relative to an arbitrary reference
// white back to tristimulus values.
func LabToXYZWhite(lab, white [3]float64) [3]float64 {
	fy := (lab[0] + 16) / 116
	fx := fy + lab[1]/500
	fz := fy - lab[2]/200
	return [3]float64{
		white[0] * labFInv(fx),
		white[1] * labFInv(fy),
		white[2] * labFInv(fz),
	}
}

// LabToLCh converts rectangular CIELAB to its polar form. The hue angle
// is in degrees, normalized to [0, 360).
func LabToLCh(lab [3]float64) [3]float64 {
	c := math.Hypot(lab[1], lab[2])
	h := math.Atan2(lab[2], lab[1]) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return [3]float64{lab[0], c, h}
}

// LChToLab converts polar CIELAB back to rectangular form.
func LChToLab(lch [3]float64) [3]float64 {
	hr := lch[2] * math.Pi / 180
	return [3]float64{lch[0], lch[1] * math.Cos(hr), lch[1] * math.Sin(hr)}
}
