package munsell

// ValueToY evaluates the empirical Munsell value polynomial, returning
// relative luminance Y in [0, 1] for a value V in [0, 10].
func ValueToY(v float64) float64 {
	y := v * (1.1914 + v*(-0.22533+v*(0.23352+v*(-0.020484+v*0.00081939))))
	return y / 100.0
}

// valueToYDeriv is the derivative of the value polynomial in the
// 0..100 luminance scale used by the Newton iteration.
func valueToYDeriv(v float64) float64 {
	return 1.1914 + v*(-0.45066+v*(0.70056+v*(-0.081936+v*0.00409695)))
}

const (
	newtonTolerance = 0.001
	newtonMaxIter   = 100
)

// YToValue inverts the value polynomial. Values at or below the V = 1
// luminance use the closed-form linear estimate directly refined by
// the iteration; the iteration is capped so pathological inputs cannot
// loop forever and fall back to the last estimate.
func YToValue(bigY float64) float64 {
	y := bigY * 100.0
	if y <= 0 {
		return 0
	}
	if y >= ValueToY(10)*100.0 {
		return 10
	}
	var v float64
	if y <= ValueToY(1)*100.0 {
		v = y / (ValueToY(1) * 100.0)
	} else {
		v = y/10.0 + 1
	}
	for i := 0; i < newtonMaxIter; i++ {
		f := ValueToY(v) * 100.0
		if diff := f - y; diff < newtonTolerance && diff > -newtonTolerance {
			break
		}
		v -= (f - y) / valueToYDeriv(v)
		if v < 0 {
			v = 0
		} else if v > 10 {
			v = 10
		}
	}
	return v
}
