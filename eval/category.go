// Package eval provides perceptual color evaluation: the CIE76 and
// CIEDE2000 difference metrics, categorical color naming over a
// luminance-binned chromaticity grid, and a conspicuity estimate.
package eval

import (
	"math"
	"sync"
)

// Categorical grid geometry in the 1e3-scaled chromaticity plane.
const (
	gridOffsetX = 160
	gridOffsetY = 10
	gridStep    = 25
	gridWidth   = 18
	gridHeight  = 21
)

// luminanceBins are the tabulated luminance levels; a stimulus is
// classified against the grid of its nearest bin after the power-law
// compression (Y*60)^0.9.
var luminanceBins = [6]int{2, 5, 10, 20, 30, 40}

// categoryCodes maps grid cell characters to the eleven basic color
// terms.
var categoryCodes = map[byte]string{
	'w': "white",
	'k': "black",
	'a': "gray",
	'r': "red",
	'y': "yellow",
	'g': "green",
	'b': "blue",
	'n': "brown",
	'p': "purple",
	'i': "pink",
	'o': "orange",
}

var (
	categoryGrids map[int][][]byte
	categoryOnce  sync.Once
)

// decodeGrid expands the run-length encoded rows of one luminance bin.
func decodeGrid(rows []string) [][]byte {
	grid := make([][]byte, 0, gridHeight)
	for _, row := range rows {
		line := make([]byte, 0, gridWidth)
		count := 0
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if ch >= '0' && ch <= '9' {
				count = count*10 + int(ch-'0')
				continue
			}
			if count == 0 {
				count = 1
			}
			for ; count > 0; count-- {
				line = append(line, ch)
			}
		}
		grid = append(grid, line)
	}
	return grid
}

func ensureCategories() {
	categoryOnce.Do(func() {
		categoryGrids = make(map[int][][]byte, len(categoryData))
		for bin, rows := range categoryData {
			categoryGrids[bin] = decodeGrid(rows)
		}
	})
}

// CategoryOf maps a Yxy color to one of the eleven basic color names
// by nearest-occupied-cell search in the grid of its luminance bin.
func CategoryOf(yxy [3]float64) string {
	ensureCategories()

	bigY, x, y := yxy[0], yxy[1], yxy[2]
	lum := 0.0
	if bigY > 0 {
		lum = math.Pow(bigY*60, 0.9)
	}
	bin := luminanceBins[0]
	best := math.Abs(lum - float64(bin))
	for _, b := range luminanceBins[1:] {
		if d := math.Abs(lum - float64(b)); d < best {
			best = d
			bin = b
		}
	}

	grid := categoryGrids[bin]
	sx, sy := x*1000, y*1000
	var nearest byte
	nearestDist := math.MaxFloat64
	for j := 0; j < gridHeight; j++ {
		cy := float64(gridOffsetY+j*gridStep) + gridStep/2.0
		for i := 0; i < gridWidth; i++ {
			c := grid[j][i]
			if c == '-' {
				continue
			}
			cx := float64(gridOffsetX+i*gridStep) + gridStep/2.0
			d := (sx-cx)*(sx-cx) + (sy-cy)*(sy-cy)
			if d < nearestDist {
				nearestDist = d
				nearest = c
			}
		}
	}
	return categoryCodes[nearest]
}
