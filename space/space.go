// Package space implements the primitive color space transforms:
// sRGB, linear RGB, CIEXYZ, CIE Yxy, CIELAB, LMS and YIQ, plus
// chromatic adaptation between standard illuminants C and D65.
//
// All transforms are pure functions over [3]float64 triples. Transforms
// that can lose information (gamut clamping) report it through an
// explicit saturated return value instead of shared mutable state, so
// the package is safe for concurrent use.
package space

// mul3 applies a 3x3 matrix to a column triple.
func mul3(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}
