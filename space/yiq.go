package space

// NTSC YIQ from linear RGB. Y is luma in [0, 1]; I and Q are the
// in-phase and quadrature chroma components.
var (
	mLinearRGBToYIQ = [3][3]float64{
		{0.2990, 0.5870, 0.1140},
		{0.595716, -0.274453, -0.321263},
		{0.211456, -0.522591, 0.311135},
	}
	mYIQToLinearRGB = [3][3]float64{
		{1.0, 0.95629572, 0.62102442},
		{1.0, -0.27212210, -0.64738060},
		{1.0, -1.10698902, 1.70461500},
	}
)

// LinearRGBToYIQ converts linear RGB to NTSC YIQ.
func LinearRGBToYIQ(lrgb [3]float64) [3]float64 {
	return mul3(mLinearRGBToYIQ, lrgb)
}

// YIQToLinearRGB converts NTSC YIQ back to linear RGB.
func YIQToLinearRGB(yiq [3]float64) [3]float64 {
	return mul3(mYIQToLinearRGB, yiq)
}
