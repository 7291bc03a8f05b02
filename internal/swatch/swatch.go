// Package swatch renders palette and tone swatch sheets as PNG images
// with a light paper-grain texture.
package swatch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/disintegration/gift"
	xdraw "golang.org/x/image/draw"

	colorlab "github.com/MeKo-Tech/colorlab"
	"github.com/MeKo-Tech/colorlab/internal/palette"
	"github.com/MeKo-Tech/colorlab/pccs"
)

// Options configures sheet rendering.
type Options struct {
	CellSize      int     // swatch cell edge in pixels
	Columns       int     // cells per row
	Margin        int     // gap around and between cells
	Seed          int64   // deterministic seed for the paper grain
	GrainStrength float64 // 0 disables the grain, 1 is full strength
	Scale         int     // 1 or 2 (@2x sheets)
}

// DefaultOptions are the options used by the CLI when no flags are set.
func DefaultOptions() Options {
	return Options{
		CellSize:      64,
		Columns:       8,
		Margin:        8,
		Seed:          1337,
		GrainStrength: 0.15,
		Scale:         1,
	}
}

var paperColor = color.NRGBA{R: 244, G: 240, B: 232, A: 255}

// Sheet renders the given colors as a grid of swatch cells on a paper
// background. The output is deterministic for a fixed seed.
func Sheet(colors []palette.Color, opts Options) (image.Image, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("no colors to render")
	}
	if opts.CellSize <= 0 || opts.Columns <= 0 {
		return nil, fmt.Errorf("cell size and columns must be positive")
	}
	if opts.Scale != 1 && opts.Scale != 2 {
		return nil, fmt.Errorf("scale must be 1 or 2, got %d", opts.Scale)
	}

	cols := opts.Columns
	if len(colors) < cols {
		cols = len(colors)
	}
	rows := (len(colors) + cols - 1) / cols

	w := opts.Margin + cols*(opts.CellSize+opts.Margin)
	h := opts.Margin + rows*(opts.CellSize+opts.Margin)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	// Paper background
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, paperColor)
		}
	}

	// Swatch cells
	for i, c := range colors {
		col := i % cols
		row := i / cols
		x0 := opts.Margin + col*(opts.CellSize+opts.Margin)
		y0 := opts.Margin + row*(opts.CellSize+opts.Margin)
		fill := toNRGBA(c.RGB)
		for y := y0; y < y0+opts.CellSize; y++ {
			for x := x0; x < x0+opts.CellSize; x++ {
				img.SetNRGBA(x, y, fill)
			}
		}
	}

	if opts.GrainStrength > 0 {
		applyGrain(img, opts.Seed, opts.GrainStrength)
	}

	if opts.Scale == 2 {
		dst := image.NewNRGBA(image.Rect(0, 0, 2*w, 2*h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
		return dst, nil
	}
	return img, nil
}

// ToneSheet renders the 14 PCCS tones at the given PCCS hue, one cell
// per tone in declaration order.
func ToneSheet(hue float64, opts Options) (image.Image, error) {
	colors := make([]palette.Color, 0, len(pccs.Tones()))
	for _, tone := range pccs.Tones() {
		l, s := pccs.Representative(tone, hue)
		rgb, _, err := colorlab.Convert([3]float64{hue, l, s}, colorlab.PCCS, colorlab.RGB)
		if err != nil {
			return nil, err
		}
		colors = append(colors, palette.Color{Label: tone.String(), RGB: rgb})
	}
	return Sheet(colors, opts)
}

// applyGrain overlays softened Perlin noise to give the sheet a paper
// feel. Noise parameters match the texture generator defaults.
func applyGrain(img *image.NRGBA, seed int64, strength float64) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	p := perlin.NewPerlin(2.0, 2.0, 3, seed)
	grain := image.NewGray(bounds)
	const scale = 24.0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			val := p.Noise2D(float64(x)/scale, float64(y)/scale)
			normalized := (val + 1.0) / 2.0
			grain.SetGray(x, y, color.Gray{Y: uint8(math.Max(0, math.Min(255, normalized*255)))})
		}
	}

	// Soften the grain so it reads as texture, not speckle.
	g := gift.New(gift.GaussianBlur(1.0))
	soft := image.NewGray(g.Bounds(grain.Bounds()))
	g.Draw(soft, grain)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			delta := (float64(soft.GrayAt(x, y).Y) - 128.0) * strength
			px := img.NRGBAAt(x, y)
			px.R = clampByte(float64(px.R) + delta)
			px.G = clampByte(float64(px.G) + delta)
			px.B = clampByte(float64(px.B) + delta)
			img.SetNRGBA(x, y, px)
		}
	}
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// toNRGBA converts an sRGB triple on the engine's [0, 255] scale to a
// pixel color.
func toNRGBA(rgb [3]float64) color.NRGBA {
	return color.NRGBA{
		R: clampByte(rgb[0]),
		G: clampByte(rgb[1]),
		B: clampByte(rgb[2]),
		A: 255,
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
