package eval

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// published CIEDE2000 reference pairs (Sharma, Wu & Dalal 2005)
var ciede2000Vectors = []struct {
	lab1, lab2 [3]float64
	want       float64
}{
	{[3]float64{50.0000, 2.6772, -79.7751}, [3]float64{50.0000, 0.0000, -82.7485}, 2.0425},
	{[3]float64{50.0000, 3.1571, -77.2803}, [3]float64{50.0000, 0.0000, -82.7485}, 2.8615},
	{[3]float64{50.0000, 2.8361, -74.0200}, [3]float64{50.0000, 0.0000, -82.7485}, 3.4412},
	{[3]float64{50.0000, -1.3802, -84.2814}, [3]float64{50.0000, 0.0000, -82.7485}, 1.0000},
	{[3]float64{50.0000, 2.5000, 0.0000}, [3]float64{50.0000, 0.0000, -2.5000}, 4.3065},
	{[3]float64{50.0000, 2.5000, 0.0000}, [3]float64{73.0000, 25.0000, -18.0000}, 27.1492},
	{[3]float64{50.0000, 2.5000, 0.0000}, [3]float64{61.0000, -5.0000, 29.0000}, 22.8977},
	{[3]float64{60.2574, -34.0099, 36.2677}, [3]float64{60.4626, -34.1751, 39.4387}, 1.2644},
	{[3]float64{63.0109, -31.0961, -5.8663}, [3]float64{62.8187, -29.7946, -4.0864}, 1.2630},
	{[3]float64{6.7747, -0.2908, -2.4247}, [3]float64{5.8714, -0.0985, -2.2286}, 0.6377},
	{[3]float64{2.0776, 0.0795, -1.1350}, [3]float64{0.9033, -0.0636, -0.5514}, 0.9082},
}

func TestCIEDE2000ReferenceVectors(t *testing.T) {
	for i, v := range ciede2000Vectors {
		got := DistanceCIEDE2000(v.lab1, v.lab2)
		assert.InDelta(t, v.want, got, 1e-4, "pair %d", i)
	}
}

func TestCIEDE2000Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		a := [3]float64{rng.Float64() * 100, rng.Float64()*256 - 128, rng.Float64()*256 - 128}
		b := [3]float64{rng.Float64() * 100, rng.Float64()*256 - 128, rng.Float64()*256 - 128}
		assert.InDelta(t, DistanceCIEDE2000(a, b), DistanceCIEDE2000(b, a), 1e-12)
	}
}

func TestCIEDE2000IdenticalIsZero(t *testing.T) {
	lab := [3]float64{53.24, 80.09, 67.20}
	assert.InDelta(t, 0, DistanceCIEDE2000(lab, lab), 1e-12)
	assert.InDelta(t, 0, DistanceCIEDE2000([3]float64{50, 0, 0}, [3]float64{50, 0, 0}), 1e-12)
}

func TestCIE76IsEuclidean(t *testing.T) {
	assert.InDelta(t, 5.0, DistanceCIE76([3]float64{0, 3, 0}, [3]float64{0, 0, 4}), 1e-12)
	assert.InDelta(t, 0.0, DistanceCIE76([3]float64{1, 2, 3}, [3]float64{1, 2, 3}), 1e-12)
}

func TestDistanceMethodSelection(t *testing.T) {
	a := [3]float64{50, 10, -10}
	b := [3]float64{55, -4, 8}
	assert.Equal(t, DistanceCIE76(a, b), Distance(a, b, CIE76))
	assert.Equal(t, DistanceCIEDE2000(a, b), Distance(a, b, CIEDE2000))
}

func TestConspicuity(t *testing.T) {
	assert.Equal(t, 0.0, Conspicuity([3]float64{50, 0, 0}))

	// red-orange beats blue-green at equal chroma
	redOrange := Conspicuity([3]float64{50, 40, 30})
	blueGreen := Conspicuity([3]float64{50, -40, -30})
	assert.Greater(t, redOrange, blueGreen)
	assert.GreaterOrEqual(t, blueGreen, 0.0)
}
