package render

import (
	"math"

	"mazecaster/internal/maze"
)

// directionArrows mark the viewer's facing on the overlay, one per
// octant starting at +x and proceeding counter-clockwise.
var directionArrows = [8]rune{'▶', '◥', '▲', '◤', '◀', '◣', '▼', '◢'}

// DrawOverlay draws the maze layout over the scene with the viewer's
// cell marked by a direction arrow. Grid row 0 is drawn at the bottom
// so the overlay matches the layout text top-to-bottom.
func DrawOverlay(s Surface, grid *maze.Grid, v Viewer) {
	_, height := s.Size()

	for y := 0; y < grid.Height(); y++ {
		row := grid.Height() - 1 - y
		if row < 0 || row >= height {
			continue
		}
		for x, c := range grid.Row(y) {
			s.SetGlyph(x, row, c, false)
		}
	}

	cell := v.Pos().Floor()
	row := grid.Height() - 1 - cell.Y
	if row >= 0 && row < height {
		s.SetGlyph(cell.X, row, facingArrow(v), false)
	}
}

// facingArrow picks the arrow for the octant nearest the viewer's
// forward direction.
func facingArrow(v Viewer) rune {
	angle := v.LineOfSight(0.5).Angle()
	octant := int(math.Floor(angle/(math.Pi/4)+0.5)) % 8
	return directionArrows[octant]
}
