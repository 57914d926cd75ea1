package render

import (
	"mazecaster/internal/raycast"
)

const (
	ceilingGlyph = ' '
	floorGlyph   = '.'
	edgeGlyph    = '│'

	// Hits within this band of either end of a wall face are drawn
	// with the edge glyph to delimit wall cells.
	edgeBand = 0.1
)

// fractionalBlocks are the graduated lower-block glyphs used to render
// sub-row wall heights, from empty to seven-eighths full.
var fractionalBlocks = [8]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}

// fractionalBlock buckets x in [0, 1] into the glyph that best
// represents that fraction of a whole block. The epsilon keeps x = 1.0
// inside the last bucket.
func fractionalBlock(x float64) rune {
	i := int(x * (float64(len(fractionalBlocks)) - 1e-6))
	if i < 0 {
		i = 0
	} else if i >= len(fractionalBlocks) {
		i = len(fractionalBlocks) - 1
	}
	return fractionalBlocks[i]
}

// fill writes glyph to every row in [lo, hi) clamped to [0, height).
func fill(s Surface, col, lo, hi, height int, glyph rune, invert bool) {
	if lo < 0 {
		lo = 0
	}
	if hi > height {
		hi = height
	}
	for row := lo; row < hi; row++ {
		s.SetGlyph(col, row, glyph, invert)
	}
}

// DrawColumn renders one screen column for a wall hit: ceiling above,
// an inverted wall strip centered vertically, floor below. With
// smoothing enabled the whole-row wall height is rounded down to even
// and the leftover fraction is split across a partial block at the top
// and its inverted complement at the bottom, keeping the wall centered.
// A non-positive height renders nothing.
func DrawColumn(s Surface, col, height int, hit raycast.Hit, smooth bool) {
	if height <= 0 {
		return
	}

	exact := float64(height) / hit.Distance
	// Very close walls project past the screen; clamping keeps the
	// row arithmetic in range without changing what is drawn.
	if !(exact <= float64(height+2)) {
		exact = float64(height + 2)
	}

	whole := int(exact)
	if smooth {
		whole -= whole % 2
	}

	wallTop := (height-whole)/2 - 1
	wallBottom := wallTop + whole + 2

	wallStart := wallTop
	floorStart := wallBottom
	if smooth {
		wallStart++
		floorStart++
	}

	wallGlyph := rune(' ')
	if hit.TX < edgeBand || hit.TX > 1-edgeBand {
		wallGlyph = edgeGlyph
	}

	fill(s, col, 0, wallTop, height, ceilingGlyph, false)
	fill(s, col, wallStart, wallBottom, height, wallGlyph, true)
	fill(s, col, floorStart, height, height, floorGlyph, false)

	if smooth && wallTop >= 0 {
		fraction := 0.5 * (exact - float64(whole))
		s.SetGlyph(col, wallTop, fractionalBlock(fraction), false)
		if wallBottom < height {
			s.SetGlyph(col, wallBottom, fractionalBlock(1-fraction), true)
		}
	}
}
