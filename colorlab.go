// Package colorlab is a color-space conversion and perceptual-color
// engine. It converts 3-component color triples among nine
// representations (sRGB, linear RGB, CIEXYZ, CIE Yxy, CIELAB, LMS,
// Munsell HVC, PCCS hls, YIQ) by composing the pairwise transforms of
// its subpackages through the CIEXYZ hub, and exposes perceptual
// evaluation (CIE76/CIEDE2000 differences, categorical color names,
// conspicuity) on top of them.
//
// The engine is a pure, synchronous numeric library: it performs no
// I/O, keeps no mutable state beyond lazily decoded lookup tables, and
// every conversion reports gamut or table clipping through an explicit
// saturated return value.
package colorlab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MeKo-Tech/colorlab/eval"
	"github.com/MeKo-Tech/colorlab/munsell"
	"github.com/MeKo-Tech/colorlab/pccs"
	"github.com/MeKo-Tech/colorlab/space"
)

// Triple is a 3-component color value. Its meaning depends on the
// Space it is interpreted in.
type Triple = [3]float64

// Space identifies one of the supported color representations.
type Space int

const (
	RGB Space = iota
	LinearRGB
	XYZ
	Yxy
	Lab
	LMS
	Munsell
	PCCS
	YIQ
)

var spaceNames = map[Space]string{
	RGB:       "rgb",
	LinearRGB: "lrgb",
	XYZ:       "xyz",
	Yxy:       "yxy",
	Lab:       "lab",
	LMS:       "lms",
	Munsell:   "munsell",
	PCCS:      "pccs",
	YIQ:       "yiq",
}

// String returns the canonical lowercase identifier of the space.
func (s Space) String() string {
	if n, ok := spaceNames[s]; ok {
		return n
	}
	return fmt.Sprintf("space(%d)", int(s))
}

// ErrUnsupportedConversion is returned for unknown space identifiers.
// The engine deliberately surfaces this instead of silently returning
// the input unchanged.
var ErrUnsupportedConversion = errors.New("colorlab: unsupported conversion")

// ParseSpace parses a case-insensitive space identifier.
func ParseSpace(name string) (Space, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, sn := range spaceNames {
		if sn == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown space %q", ErrUnsupportedConversion, name)
}

// A step is one primitive transform in a conversion chain. op tags the
// transform and inv names the op it cancels with, so that chains
// composed through the hub drop redundant round trips through XYZ.
type step struct {
	op, inv int
	fn      func(Triple) (Triple, bool)
}

// primitive transform ops
const (
	opSRGBToLinear = iota
	opLinearToSRGB
	opLinearToXYZ
	opXYZToLinear
	opYxyToXYZ
	opXYZToYxy
	opLabToXYZ
	opXYZToLab
	opLMSToXYZ
	opXYZToLMS
	opMunsellToXYZ
	opXYZToMunsell
	opPCCSToMunsell
	opMunsellToPCCS
	opYIQToLinear
	opLinearToYIQ
)

func pure(op, inv int, fn func(Triple) Triple) step {
	return step{op: op, inv: inv, fn: func(v Triple) (Triple, bool) {
		return fn(v), false
	}}
}

var (
	stSRGBToLinear = pure(opSRGBToLinear, opLinearToSRGB, space.SRGBToLinear)
	stLinearToSRGB = step{op: opLinearToSRGB, inv: opSRGBToLinear, fn: space.LinearToSRGB}
	stLinearToXYZ  = pure(opLinearToXYZ, opXYZToLinear, space.LinearRGBToXYZ)
	stXYZToLinear  = pure(opXYZToLinear, opLinearToXYZ, space.XYZToLinearRGB)
	stYxyToXYZ     = pure(opYxyToXYZ, opXYZToYxy, space.YxyToXYZ)
	stXYZToYxy     = pure(opXYZToYxy, opYxyToXYZ, space.XYZToYxy)
	stLabToXYZ     = pure(opLabToXYZ, opXYZToLab, space.LabToXYZ)
	stXYZToLab     = pure(opXYZToLab, opLabToXYZ, space.XYZToLab)
	stLMSToXYZ     = pure(opLMSToXYZ, opXYZToLMS, space.LMSToXYZ)
	stXYZToLMS     = pure(opXYZToLMS, opLMSToXYZ, space.XYZToLMS)
	stMunsellToXYZ = step{op: opMunsellToXYZ, inv: opXYZToMunsell, fn: munsell.ToXYZ}
	stXYZToMunsell = step{op: opXYZToMunsell, inv: opMunsellToXYZ, fn: munsell.FromXYZ}
	stPCCSToMunsell = pure(opPCCSToMunsell, opMunsellToPCCS, func(v Triple) Triple {
		return pccs.ToMunsell(v, pccs.Accurate)
	})
	stMunsellToPCCS = pure(opMunsellToPCCS, opPCCSToMunsell, func(v Triple) Triple {
		return pccs.FromMunsell(v, pccs.Accurate)
	})
	stYIQToLinear = pure(opYIQToLinear, opLinearToYIQ, space.YIQToLinearRGB)
	stLinearToYIQ = pure(opLinearToYIQ, opYIQToLinear, space.LinearRGBToYIQ)
)

// toHub and fromHub give, per space, the chain of primitive steps to
// and from the CIEXYZ hub. A full conversion is toHub[from] followed
// by fromHub[to] with canceling steps dropped at the junction.
var (
	toHub = map[Space][]step{
		RGB:       {stSRGBToLinear, stLinearToXYZ},
		LinearRGB: {stLinearToXYZ},
		XYZ:       {},
		Yxy:       {stYxyToXYZ},
		Lab:       {stLabToXYZ},
		LMS:       {stLMSToXYZ},
		Munsell:   {stMunsellToXYZ},
		PCCS:      {stPCCSToMunsell, stMunsellToXYZ},
		YIQ:       {stYIQToLinear, stLinearToXYZ},
	}
	fromHub = map[Space][]step{
		RGB:       {stXYZToLinear, stLinearToSRGB},
		LinearRGB: {stXYZToLinear},
		XYZ:       {},
		Yxy:       {stXYZToYxy},
		Lab:       {stXYZToLab},
		LMS:       {stXYZToLMS},
		Munsell:   {stXYZToMunsell},
		PCCS:      {stXYZToMunsell, stMunsellToPCCS},
		YIQ:       {stXYZToLinear, stLinearToYIQ},
	}
)

// Convert converts value from one space to another. saturated reports
// that some step clamped or extrapolated the value (sRGB gamut
// clipping, Munsell table range). Unknown spaces return
// ErrUnsupportedConversion.
func Convert(value Triple, from, to Space) (result Triple, saturated bool, err error) {
	a, ok := toHub[from]
	if !ok {
		return value, false, fmt.Errorf("%w: from %v", ErrUnsupportedConversion, from)
	}
	b, ok := fromHub[to]
	if !ok {
		return value, false, fmt.Errorf("%w: to %v", ErrUnsupportedConversion, to)
	}
	// drop inverse pairs meeting at the hub so that e.g. rgb->lrgb
	// does not detour through XYZ
	for len(a) > 0 && len(b) > 0 && a[len(a)-1].inv == b[0].op {
		a = a[:len(a)-1]
		b = b[1:]
	}
	result = value
	for _, st := range a {
		var sat bool
		result, sat = st.fn(result)
		saturated = saturated || sat
	}
	for _, st := range b {
		var sat bool
		result, sat = st.fn(result)
		saturated = saturated || sat
	}
	return result, saturated, nil
}

// ConvertNamed converts between spaces given by their string
// identifiers, e.g. ConvertNamed(v, "rgb", "lab").
func ConvertNamed(value Triple, from, to string) (Triple, bool, error) {
	f, err := ParseSpace(from)
	if err != nil {
		return value, false, err
	}
	t, err := ParseSpace(to)
	if err != nil {
		return value, false, err
	}
	return Convert(value, f, t)
}

// Distance computes the CIEDE2000 difference between two colors given
// in an arbitrary common space.
func Distance(a, b Triple, from Space) (float64, error) {
	la, _, err := Convert(a, from, Lab)
	if err != nil {
		return 0, err
	}
	lb, _, err := Convert(b, from, Lab)
	if err != nil {
		return 0, err
	}
	return eval.DistanceCIEDE2000(la, lb), nil
}

// CategoryOf names a color given in an arbitrary space with one of the
// eleven basic color terms.
func CategoryOf(value Triple, from Space) (string, error) {
	yxy, _, err := Convert(value, from, Yxy)
	if err != nil {
		return "", err
	}
	return eval.CategoryOf(yxy), nil
}
