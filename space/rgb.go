package space

import "math"

// SRGBToLinear removes the sRGB transfer curve from an 8-bit triple.
// Input channels are nominally in [0, 255]; the output is linear RGB
// in [0, 1].
func SRGBToLinear(rgb [3]float64) [3]float64 {
	return [3]float64{
		srgbChannelToLinear(rgb[0] / 255.0),
		srgbChannelToLinear(rgb[1] / 255.0),
		srgbChannelToLinear(rgb[2] / 255.0),
	}
}

// LinearToSRGB applies the sRGB transfer curve and quantizes to 8-bit
// integer channels. Channels outside [0, 255] are clamped and reported
// through saturated.
func LinearToSRGB(lrgb [3]float64) (rgb [3]float64, saturated bool) {
	for i := 0; i < 3; i++ {
		v := math.Floor(linearChannelToSRGB(lrgb[i]) * 255.0)
		if v < 0 {
			v = 0
			saturated = true
		} else if v > 255 {
			v = 255
			saturated = true
		}
		rgb[i] = v
	}
	return rgb, saturated
}

// srgbChannelToLinear is the piecewise sRGB decoding function for a
// single channel in [0, 1].
func srgbChannelToLinear(v float64) float64 {
	if v < 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearChannelToSRGB is the exact inverse of srgbChannelToLinear.
// The linear-segment threshold 0.00304 is 0.03928/12.92.
func linearChannelToSRGB(v float64) float64 {
	if v < 0.00304 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}
