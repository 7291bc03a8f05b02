package pccs

import "math"

// Tone is one of the named PCCS tone regions.
type Tone int

const (
	ToneNone Tone = iota // achromatic, outside the tone chart
	TonePale
	TonePalePlus
	ToneLightGrayish
	ToneGrayish
	ToneDarkGrayish
	ToneLightPlus
	ToneLight
	ToneSoft
	ToneDull
	ToneDark
	ToneBright
	ToneStrong
	ToneDeep
	ToneVivid
)

var toneNames = map[Tone]string{
	ToneNone:         "none",
	TonePale:         "p",
	TonePalePlus:     "p+",
	ToneLightGrayish: "ltg",
	ToneGrayish:      "g",
	ToneDarkGrayish:  "dkg",
	ToneLightPlus:    "lt+",
	ToneLight:        "lt",
	ToneSoft:         "sf",
	ToneDull:         "d",
	ToneDark:         "dk",
	ToneBright:       "b",
	ToneStrong:       "s",
	ToneDeep:         "dp",
	ToneVivid:        "v",
}

// String returns the conventional tone abbreviation.
func (t Tone) String() string {
	if s, ok := toneNames[t]; ok {
		return s
	}
	return "none"
}

// Tones lists the chromatic tones in chart order, light to vivid.
func Tones() []Tone {
	return []Tone{
		TonePale, TonePalePlus, ToneLightGrayish, ToneGrayish, ToneDarkGrayish,
		ToneLightPlus, ToneLight, ToneSoft, ToneDull, ToneDark,
		ToneBright, ToneStrong, ToneDeep, ToneVivid,
	}
}

// toneRepresentatives holds a representative (saturation, relative
// lightness) point inside each chromatic tone region.
var toneRepresentatives = map[Tone][2]float64{
	TonePale:         {2, 9.0},
	TonePalePlus:     {2, 7.75},
	ToneLightGrayish: {2, 6.2},
	ToneGrayish:      {2, 4.0},
	ToneDarkGrayish:  {2, 1.5},
	ToneLightPlus:    {4.5, 9.0},
	ToneLight:        {4.5, 7.8},
	ToneSoft:         {4.5, 6.3},
	ToneDull:         {4.5, 4.6},
	ToneDark:         {4.5, 2.5},
	ToneBright:       {7.5, 7.0},
	ToneStrong:       {7.5, 5.4},
	ToneDeep:         {7.5, 3.5},
	ToneVivid:        {9.5, 5.5},
}

// Representative returns the absolute (lightness, saturation) of the
// representative point of tone t at PCCS hue h. ToneNone maps to a
// mid gray.
func Representative(t Tone, h float64) (l, s float64) {
	rep, ok := toneRepresentatives[t]
	if !ok {
		return 5, 0
	}
	s = rep[0]
	lr := rep[1]
	l = lr + (0.25-0.34*math.Sqrt(1-math.Sin((h-2)*math.Pi/12)))*s
	return l, s
}

// RelativeLightness computes the lightness of a PCCS color relative to
// the lightness of the vivid tone of the same hue.
func RelativeLightness(hls [3]float64) float64 {
	h, l, s := hls[0], hls[1], hls[2]
	return l - (0.25-0.34*math.Sqrt(1-math.Sin((h-2)*math.Pi/12)))*s
}

// Tone boundaries in (saturation, relative lightness) space. The two
// sloped boundaries separate the bright/light and deep/dark regions.
func toneUpper(s float64) float64 { return -0.3*s + 8.5 }
func toneLower(s float64) float64 { return 0.3*s + 2.5 }

// ToneOf classifies a PCCS color into one of the 14 named tone
// regions. Saturation below MonoThreshold is outside the chart and
// classifies as ToneNone.
func ToneOf(hls [3]float64) Tone {
	s := hls[2]
	if s < MonoThreshold {
		return ToneNone
	}
	lr := RelativeLightness(hls)
	switch {
	case s < 3:
		switch {
		case lr >= 8.5:
			return TonePale
		case lr >= 7:
			return TonePalePlus
		case lr >= 5.5:
			return ToneLightGrayish
		case lr >= 2.5:
			return ToneGrayish
		default:
			return ToneDarkGrayish
		}
	case s < 6:
		switch {
		case lr >= 8.5:
			return ToneLightPlus
		case lr >= toneUpper(s):
			return ToneLight
		case lr >= 5.5:
			return ToneSoft
		case lr >= toneLower(s):
			return ToneDull
		default:
			return ToneDark
		}
	case s < 9:
		switch {
		case lr >= toneUpper(s):
			return ToneBright
		case lr >= toneLower(s):
			return ToneStrong
		default:
			return ToneDeep
		}
	default:
		return ToneVivid
	}
}
