package render

import (
	"mazecaster/internal/geom"
	"mazecaster/internal/maze"
	"mazecaster/internal/raycast"
)

// Viewer supplies the scene composer with a ray origin and per-column
// ray directions across the field of view.
type Viewer interface {
	Pos() geom.Vec2
	// LineOfSight returns the ray direction for screen fraction t in
	// [0, 1], left edge to right edge. Only t = 0.5 yields a unit
	// vector.
	LineOfSight(t float64) geom.Vec2
}

// DrawScene casts one ray per surface column and renders the resulting
// wall hit. The surface size is queried fresh each call so resizes take
// effect on the next frame. Columns are independent of each other.
func DrawScene(s Surface, grid *maze.Grid, v Viewer, smooth bool) {
	width, height := s.Size()
	for col := 0; col < width; col++ {
		t := 0.5
		if width > 1 {
			t = float64(col) / float64(width-1)
		}
		hit := raycast.Cast(grid, v.Pos(), v.LineOfSight(t))
		DrawColumn(s, col, height, hit, smooth)
	}
}
