package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// parseColor parses a CLI color argument: either a hex string like
// "#ff8040" (an sRGB value, returned as channels in [0, 255] to match
// the engine's rgb space) or a comma-separated component triple whose
// meaning depends on the space it is used in.
func parseColor(s string) ([3]float64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return [3]float64{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return [3]float64{c.R * 255, c.G * 255, c.B * 255}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, fmt.Errorf("expected 3 comma-separated components, got %d", len(parts))
	}

	var v [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("invalid component %q: %w", part, err)
		}
		v[i] = f
	}
	return v, nil
}

// formatTriple prints a component triple the way the CLI reports
// results.
func formatTriple(v [3]float64) string {
	return fmt.Sprintf("%.4f, %.4f, %.4f", v[0], v[1], v[2])
}
