package eval

import "math"

// DifferenceMethod selects the color-difference formula.
type DifferenceMethod int

const (
	// CIEDE2000 is the CIE 2000 perceptually-weighted formula.
	CIEDE2000 DifferenceMethod = iota
	// CIE76 is the plain Euclidean distance in CIELAB.
	CIE76
)

// Distance computes the color difference between two CIELAB triples
// using the given method.
func Distance(lab1, lab2 [3]float64, method DifferenceMethod) float64 {
	if method == CIE76 {
		return DistanceCIE76(lab1, lab2)
	}
	return DistanceCIEDE2000(lab1, lab2)
}

// DistanceCIE76 is the Euclidean distance in CIELAB.
func DistanceCIE76(lab1, lab2 [3]float64) float64 {
	dl := lab1[0] - lab2[0]
	da := lab1[1] - lab2[1]
	db := lab1[2] - lab2[2]
	return math.Sqrt(dl*dl + da*da + db*db)
}

const (
	deg360 = 2 * math.Pi
	deg180 = math.Pi
	pow257 = 6103515625.0 // 25^7
)

func degToRad(d float64) float64 { return d * math.Pi / 180 }

// DistanceCIEDE2000 implements the full CIEDE2000 reference formula
// with unity parametric weights. The branch structure (hue wraparound
// at 180 degrees, degenerate zero-chroma hues) follows the published
// reference exactly, since the formula is branch-sensitive.
func DistanceCIEDE2000(lab1, lab2 [3]float64) float64 {
	const kL, kC, kH = 1.0, 1.0, 1.0

	c1 := math.Hypot(lab1[1], lab1[2])
	c2 := math.Hypot(lab2[1], lab2[2])
	barC := (c1 + c2) / 2

	g := 0.5 * (1 - math.Sqrt(math.Pow(barC, 7)/(math.Pow(barC, 7)+pow257)))
	a1p := (1 + g) * lab1[1]
	a2p := (1 + g) * lab2[1]
	c1p := math.Hypot(a1p, lab1[2])
	c2p := math.Hypot(a2p, lab2[2])

	hueAngle := func(b, ap float64) float64 {
		if b == 0 && ap == 0 {
			return 0
		}
		h := math.Atan2(b, ap)
		if h < 0 {
			h += deg360
		}
		return h
	}
	h1p := hueAngle(lab1[2], a1p)
	h2p := hueAngle(lab2[2], a2p)

	dLp := lab2[0] - lab1[0]
	dCp := c2p - c1p

	var dhp float64
	if c1p*c2p != 0 {
		dhp = h2p - h1p
		if dhp < -deg180 {
			dhp += deg360
		} else if dhp > deg180 {
			dhp -= deg360
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(dhp/2)

	barLp := (lab1[0] + lab2[0]) / 2
	barCp := (c1p + c2p) / 2

	hpSum := h1p + h2p
	var barhp float64
	switch {
	case c1p*c2p == 0:
		barhp = hpSum
	case math.Abs(h1p-h2p) <= deg180:
		barhp = hpSum / 2
	case hpSum < deg360:
		barhp = (hpSum + deg360) / 2
	default:
		barhp = (hpSum - deg360) / 2
	}

	t := 1 - 0.17*math.Cos(barhp-degToRad(30)) +
		0.24*math.Cos(2*barhp) +
		0.32*math.Cos(3*barhp+degToRad(6)) -
		0.20*math.Cos(4*barhp-degToRad(63))

	dTheta := degToRad(30) * math.Exp(-math.Pow((barhp-degToRad(275))/degToRad(25), 2))
	rc := 2 * math.Sqrt(math.Pow(barCp, 7)/(math.Pow(barCp, 7)+pow257))
	sl := 1 + 0.015*math.Pow(barLp-50, 2)/math.Sqrt(20+math.Pow(barLp-50, 2))
	sc := 1 + 0.045*barCp
	sh := 1 + 0.015*barCp*t
	rt := -math.Sin(2*dTheta) * rc

	return math.Sqrt(
		math.Pow(dLp/(kL*sl), 2) +
			math.Pow(dCp/(kC*sc), 2) +
			math.Pow(dHp/(kH*sh), 2) +
			rt*(dCp/(kC*sc))*(dHp/(kH*sh)))
}
