package munsell

import (
	"fmt"
	"math"
	"strings"
)

// hueFamilies lists the ten Munsell hue family abbreviations in
// notation order; each family spans 10 hue units, so "5YR" is hue
// 5 + 10*1 = 15.
var hueFamilies = [10]string{"R", "YR", "Y", "GY", "G", "BG", "B", "PB", "P", "RP"}

// ToString formats an HVC triple in conventional Munsell notation,
// e.g. "5.0YR 6.0/8.0". Chroma below MonoThreshold formats as the
// neutral form "N 6.0".
func ToString(hvc [3]float64) string {
	h, v, c := hvc[0], hvc[1], hvc[2]
	if c < MonoThreshold {
		return fmt.Sprintf("N %.1f", v)
	}
	h = math.Mod(math.Mod(h, 100)+100, 100)
	family := int(h) / 10
	step := h - float64(family*10)
	if step < MonoThreshold {
		// 0X is written as 10 of the previous family
		family = (family + 9) % 10
		step = 10
	}
	return fmt.Sprintf("%.1f%s %.1f/%.1f", step, hueFamilies[family], v, c)
}

// ParseHue parses a Munsell hue name such as "5YR" or "2.5R" into a
// numeric hue in [0, 100). The neutral name "N" parses to a negative
// hue, matching the achromatic convention of ToXYZ.
func ParseHue(name string) (float64, error) {
	s := strings.TrimSpace(strings.ToUpper(name))
	if s == "N" {
		return -1, nil
	}
	// split the numeric prefix from the family suffix
	cut := len(s)
	for i, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			cut = i
			break
		}
	}
	if cut == 0 || cut == len(s) {
		return 0, fmt.Errorf("invalid munsell hue %q", name)
	}
	var step float64
	if _, err := fmt.Sscanf(s[:cut], "%f", &step); err != nil {
		return 0, fmt.Errorf("invalid munsell hue %q: %w", name, err)
	}
	family := s[cut:]
	for i, f := range hueFamilies {
		if f == family {
			return math.Mod(step+float64(i)*10, 100), nil
		}
	}
	return 0, fmt.Errorf("unknown munsell hue family %q", family)
}

// Parse parses full Munsell notation, accepting both the chromatic
// "5.0YR 6.0/8.0" and the neutral "N 5.0" forms.
func Parse(notation string) ([3]float64, error) {
	fields := strings.Fields(strings.TrimSpace(notation))
	if len(fields) != 2 {
		return [3]float64{}, fmt.Errorf("invalid munsell notation %q", notation)
	}
	if strings.EqualFold(fields[0], "N") {
		var v float64
		if _, err := fmt.Sscanf(fields[1], "%f", &v); err != nil {
			return [3]float64{}, fmt.Errorf("invalid munsell value in %q: %w", notation, err)
		}
		return [3]float64{0, v, 0}, nil
	}
	h, err := ParseHue(fields[0])
	if err != nil {
		return [3]float64{}, err
	}
	var v, c float64
	if _, err := fmt.Sscanf(fields[1], "%f/%f", &v, &c); err != nil {
		return [3]float64{}, fmt.Errorf("invalid munsell value/chroma in %q: %w", notation, err)
	}
	return [3]float64{h, v, c}, nil
}
