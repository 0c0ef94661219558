// Package sprite holds sprites that draw a single region of a texture
// atlas and animated sprites that swap that region over time.
package sprite

import "github.com/alacrity-engine/core/math/geometry"

// Sprite is a drawable region of a texture atlas.
type Sprite struct {
	TextureID string
	Region    geometry.Rect
}

// Grid slices a sheet of cols by rows cells of
// w by h each into frame regions, row by row.
func Grid(cols, rows int, w, h float64) []geometry.Rect {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	frames := make([]geometry.Rect, 0, cols*rows)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := float64(col)*w, float64(row)*h
			frames = append(frames, geometry.R(x, y, x+w, y+h))
		}
	}

	return frames
}
