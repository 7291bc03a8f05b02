package space

// LMSBasis selects the cone fundamentals used for the XYZ <-> LMS
// transform. Each basis carries its matrix together with the
// precomputed exact inverse.
type LMSBasis int

const (
	// SmithPokorny is the default basis (Smith & Pokorny 1975,
	// Judd-Vos adjusted).
	SmithPokorny LMSBasis = iota
	// HuntPointerEstevez is the HPE transform normalized to equal
	// energy.
	HuntPointerEstevez
	// VonKries is the HPE transform normalized to D65, the matrix
	// conventionally used for von Kries adaptation.
	VonKries
	// Bradford is the Bradford adaptation transform.
	Bradford
	// CAT02 is the CIECAM02 adaptation transform.
	CAT02
)

type lmsMatrices struct {
	fwd, inv [3][3]float64
}

var lmsBases = map[LMSBasis]lmsMatrices{
	SmithPokorny: {
		fwd: [3][3]float64{
			{0.15514, 0.54312, -0.03286},
			{-0.15514, 0.45684, 0.03286},
			{0, 0, 0.01608},
		},
		inv: [3][3]float64{
			{2.94481291, -3.50097799, 13.17218215},
			{1.00004000, 1.00004000, 0},
			{0, 0, 62.18905473},
		},
	},
	HuntPointerEstevez: {
		fwd: [3][3]float64{
			{0.38971, 0.68898, -0.07868},
			{-0.22981, 1.18340, 0.04641},
			{0, 0, 1.0},
		},
		inv: [3][3]float64{
			{1.91019683, -1.11212389, 0.20190796},
			{0.37095009, 0.62905426, -0.00000806},
			{0, 0, 1.0},
		},
	},
	VonKries: {
		fwd: [3][3]float64{
			{0.40024, 0.70760, -0.08081},
			{-0.22630, 1.16532, 0.04570},
			{0, 0, 0.91822},
		},
		inv: [3][3]float64{
			{1.85993639, -1.12938162, 0.21989741},
			{0.36119144, 0.63881246, -0.00000637},
			{0, 0, 1.08906362},
		},
	},
	Bradford: {
		fwd: [3][3]float64{
			{0.8951, 0.2664, -0.1614},
			{-0.7502, 1.7135, 0.0367},
			{0.0389, -0.0685, 1.0296},
		},
		inv: [3][3]float64{
			{0.98699291, -0.14705426, 0.15996265},
			{0.43230527, 0.51836027, 0.04929123},
			{-0.00852866, 0.04004282, 0.96848670},
		},
	},
	CAT02: {
		fwd: [3][3]float64{
			{0.7328, 0.4296, -0.1624},
			{-0.7036, 1.6975, 0.0061},
			{0.0030, 0.0136, 0.9834},
		},
		inv: [3][3]float64{
			{1.09612382, -0.27886900, 0.18274518},
			{0.45436904, 0.47353315, 0.07209780},
			{-0.00962761, -0.00569803, 1.01532564},
		},
	},
}

// XYZToLMS converts tristimulus values to cone responses in the
// Smith-Pokorny basis.
func XYZToLMS(xyz [3]float64) [3]float64 {
	return XYZToLMSBasis(xyz, SmithPokorny)
}

// LMSToXYZ converts Smith-Pokorny cone responses back to tristimulus
// values.
func LMSToXYZ(lms [3]float64) [3]float64 {
	return LMSToXYZBasis(lms, SmithPokorny)
}

// XYZToLMSBasis converts tristimulus values to cone responses in the
// given basis. Unknown bases fall back to Smith-Pokorny.
func XYZToLMSBasis(xyz [3]float64, basis LMSBasis) [3]float64 {
	m, ok := lmsBases[basis]
	if !ok {
		m = lmsBases[SmithPokorny]
	}
	return mul3(m.fwd, xyz)
}

// LMSToXYZBasis converts cone responses in the given basis back to
// tristimulus values. Unknown bases fall back to Smith-Pokorny.
func LMSToXYZBasis(lms [3]float64, basis LMSBasis) [3]float64 {
	m, ok := lmsBases[basis]
	if !ok {
		m = lmsBases[SmithPokorny]
	}
	return mul3(m.inv, lms)
}
