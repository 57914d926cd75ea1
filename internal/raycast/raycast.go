// Package raycast finds the first wall a ray hits by walking the grid
// one cell boundary at a time (DDA), then resolves the hit into a
// distance and a texture coordinate for rendering.
package raycast

import (
	"math"

	"mazecaster/internal/geom"
	"mazecaster/internal/maze"
)

// ddaCoord is the per-axis running state of a cast: the current cell
// index on that axis and the distance traveled along the ray to reach
// the next boundary on that axis.
type ddaCoord struct {
	onGrid   int
	distance float64
}

// add advances the coordinate by one step: cell indexes and ray
// distances both accumulate independently.
func (c ddaCoord) add(step ddaCoord) ddaCoord {
	return ddaCoord{onGrid: c.onGrid + step.onGrid, distance: c.distance + step.distance}
}

// ddaAxis pairs the starting coordinate of one axis with its constant
// per-cell step.
type ddaAxis struct {
	start ddaCoord
	step  ddaCoord
}

// initAxis computes the DDA start/step pair for one axis from the
// origin coordinate and direction component on that axis.
//
// The step cell increment follows the direction sign; the step distance
// is |1/dir|, the ray length spent crossing one full cell on this axis.
// The start distance is that step distance scaled by how far the origin
// sits from the cell edge the ray leaves through.
//
// A zero direction component would divide by zero, so it is mapped to
// an infinite distance on both start and step: the axis simply never
// wins the advance comparison.
func initAxis(pos, dir float64) ddaAxis {
	grid := int(math.Floor(pos))
	if dir == 0 {
		inf := math.Inf(1)
		return ddaAxis{
			start: ddaCoord{onGrid: grid, distance: inf},
			step:  ddaCoord{onGrid: 1, distance: inf},
		}
	}

	step := ddaCoord{onGrid: 1, distance: math.Abs(1 / dir)}
	edgeOffset := float64(grid) + 1 - pos
	if dir < 0 {
		step.onGrid = -1
		edgeOffset = pos - float64(grid)
	}
	return ddaAxis{
		start: ddaCoord{onGrid: grid, distance: step.distance * edgeOffset},
		step:  step,
	}
}

// castResult reports how a cast ended: whether the final advance was on
// the x axis, and the hit cell's coordinate on that axis.
type castResult struct {
	isXStep bool
	onGrid  float64
}

// castRay advances whichever axis has traveled the shorter distance
// until the cursor lands in a wall cell. Ties advance x. The closed
// maze boundary guarantees termination.
func castRay(grid *maze.Grid, x, y ddaAxis) castResult {
	cx, cy := x.start, y.start
	isX := false
	for !grid.IsWall(cx.onGrid, cy.onGrid) {
		isX = cx.distance <= cy.distance
		if isX {
			cx = cx.add(x.step)
		} else {
			cy = cy.add(y.step)
		}
	}
	if isX {
		return castResult{isXStep: true, onGrid: float64(cx.onGrid)}
	}
	return castResult{isXStep: false, onGrid: float64(cy.onGrid)}
}

// Hit is a resolved wall hit: the Euclidean distance from the ray
// origin to the wall face and the fractional position across that face
// in [0, 1), used to mark wall edges when rendering.
type Hit struct {
	Distance float64
	TX       float64
}

// Cast traces a ray from origin along dir through the grid and resolves
// the first wall it enters. The origin must lie in an open cell.
//
// The traveled distance on the hit axis is the hit cell coordinate
// minus the origin coordinate, plus one when stepping negative (the
// cell coordinate names the far edge in that case). Dividing by the
// direction component on the same axis recovers the distance along the
// ray. The texture coordinate is the other axis evaluated at that
// distance, reduced to its fractional part.
func Cast(grid *maze.Grid, origin, dir geom.Vec2) Hit {
	xAxis := initAxis(origin.X, dir.X)
	yAxis := initAxis(origin.Y, dir.Y)

	res := castRay(grid, xAxis, yAxis)

	var distance, tx float64
	if res.isXStep {
		correction := 0.0
		if xAxis.step.onGrid < 0 {
			correction = 1
		}
		distance = (res.onGrid - origin.X + correction) / dir.X
		tx = origin.Y + distance*dir.Y
	} else {
		correction := 0.0
		if yAxis.step.onGrid < 0 {
			correction = 1
		}
		distance = (res.onGrid - origin.Y + correction) / dir.Y
		tx = origin.X + distance*dir.X
	}

	return Hit{Distance: distance, TX: tx - math.Floor(tx)}
}
