package swatch

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/colorlab/internal/palette"
)

func testColors() []palette.Color {
	return []palette.Color{
		{Label: "red", RGB: [3]float64{255, 0, 0}},
		{Label: "green", RGB: [3]float64{0, 255, 0}},
		{Label: "blue", RGB: [3]float64{0, 0, 255}},
		{Label: "gray", RGB: [3]float64{128, 128, 128}},
		{Label: "amber", RGB: [3]float64{255, 191, 0}},
	}
}

func TestSheetDimensions(t *testing.T) {
	opts := DefaultOptions()
	opts.Columns = 3
	opts.CellSize = 32
	opts.Margin = 4

	img, err := Sheet(testColors(), opts)
	require.NoError(t, err)

	// 5 colors in 3 columns -> 2 rows
	wantW := 4 + 3*(32+4)
	wantH := 4 + 2*(32+4)
	assert.Equal(t, image.Rect(0, 0, wantW, wantH), img.Bounds())
}

func TestSheetCellColor(t *testing.T) {
	opts := DefaultOptions()
	opts.GrainStrength = 0 // exact fills

	img, err := Sheet(testColors(), opts)
	require.NoError(t, err)

	// center of the first cell is pure red
	cx := opts.Margin + opts.CellSize/2
	r, g, b, _ := img.At(cx, cx).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)

	// the mid-gray cell keeps its value instead of blowing out
	gx := opts.Margin + 3*(opts.CellSize+opts.Margin) + opts.CellSize/2
	r, g, b, _ = img.At(gx, cx).RGBA()
	assert.Equal(t, uint32(128*257), r)
	assert.Equal(t, uint32(128*257), g)
	assert.Equal(t, uint32(128*257), b)
}

func TestSheetDeterminism(t *testing.T) {
	opts := DefaultOptions()

	a, err := Sheet(testColors(), opts)
	require.NoError(t, err)
	b, err := Sheet(testColors(), opts)
	require.NoError(t, err)

	var bufA, bufB bytes.Buffer
	require.NoError(t, EncodePNG(&bufA, a))
	require.NoError(t, EncodePNG(&bufB, b))
	assert.Equal(t, bufA.Bytes(), bufB.Bytes())

	// a different grain seed changes the pixels
	opts.Seed++
	c, err := Sheet(testColors(), opts)
	require.NoError(t, err)
	var bufC bytes.Buffer
	require.NoError(t, EncodePNG(&bufC, c))
	assert.NotEqual(t, bufA.Bytes(), bufC.Bytes())
}

func TestSheetScale2(t *testing.T) {
	opts := DefaultOptions()
	opts.Columns = 2
	opts.CellSize = 16
	opts.Margin = 2

	base, err := Sheet(testColors()[:2], opts)
	require.NoError(t, err)

	opts.Scale = 2
	hi, err := Sheet(testColors()[:2], opts)
	require.NoError(t, err)

	assert.Equal(t, base.Bounds().Dx()*2, hi.Bounds().Dx())
	assert.Equal(t, base.Bounds().Dy()*2, hi.Bounds().Dy())
}

func TestSheetValidation(t *testing.T) {
	_, err := Sheet(nil, DefaultOptions())
	assert.Error(t, err)

	opts := DefaultOptions()
	opts.Scale = 3
	_, err = Sheet(testColors(), opts)
	assert.Error(t, err)

	opts = DefaultOptions()
	opts.CellSize = 0
	_, err = Sheet(testColors(), opts)
	assert.Error(t, err)
}

func TestToneSheet(t *testing.T) {
	opts := DefaultOptions()
	opts.Columns = 5

	img, err := ToneSheet(8, opts)
	require.NoError(t, err)

	// 14 tones in 5 columns -> 3 rows
	wantW := opts.Margin + 5*(opts.CellSize+opts.Margin)
	wantH := opts.Margin + 3*(opts.CellSize+opts.Margin)
	assert.Equal(t, image.Rect(0, 0, wantW, wantH), img.Bounds())
}
