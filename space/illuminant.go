package space

// Chromatic adaptation between illuminants C and D65, precomputed with
// the Bradford transform for the two white points. The matrices are
// exact inverses of each other.
var (
	mCToD65 = [3][3]float64{
		{0.99044765, -0.00716830, -0.01161558},
		{-0.01237121, 1.01559515, -0.00292823},
		{-0.00356355, 0.00676970, 0.91815686},
	}
	mD65ToC = [3][3]float64{
		{1.00977848, 0.00704195, 0.01279714},
		{0.01231140, 0.98470925, 0.00329623},
		{0.00382838, -0.00723307, 1.08916388},
	}
)

// XYZCToD65 adapts tristimulus values from illuminant C to D65.
func XYZCToD65(xyz [3]float64) [3]float64 {
	return mul3(mCToD65, xyz)
}

// XYZD65ToC adapts tristimulus values from illuminant D65 to C.
func XYZD65ToC(xyz [3]float64) [3]float64 {
	return mul3(mD65ToC, xyz)
}
