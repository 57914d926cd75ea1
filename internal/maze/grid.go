// Package maze holds the immutable occupancy grid the renderer casts
// rays against.
package maze

import (
	"fmt"

	"mazecaster/internal/geom"
)

// Wall is the layout character marking a wall cell.
const Wall = '+'

// Grid is a fixed-size 2D occupancy grid. Cells are wall or open and
// never change after parsing. The boundary ring is guaranteed to be
// wall, so a ray cast from any interior cell always terminates without
// bounds checks.
type Grid struct {
	width  int
	height int
	walls  [][]bool
	layout []string
}

// Parse builds a Grid from a textual layout: one string per row,
// '+' for wall, anything else open. Row 0 is the bottom of the maze.
// Every row must have the same length and the outer ring must be
// entirely wall.
func Parse(layout []string) (*Grid, error) {
	if len(layout) < 3 {
		return nil, fmt.Errorf("maze: layout needs at least 3 rows, got %d", len(layout))
	}
	width := len(layout[0])
	if width < 3 {
		return nil, fmt.Errorf("maze: layout needs at least 3 columns, got %d", width)
	}

	walls := make([][]bool, len(layout))
	for y, row := range layout {
		if len(row) != width {
			return nil, fmt.Errorf("maze: row %d has width %d, want %d", y, len(row), width)
		}
		walls[y] = make([]bool, width)
		for x, c := range row {
			walls[y][x] = c == Wall
		}
	}

	g := &Grid{width: width, height: len(layout), walls: walls, layout: layout}
	if err := g.checkClosed(); err != nil {
		return nil, err
	}
	return g, nil
}

// checkClosed verifies the closed-boundary invariant.
func (g *Grid) checkClosed() error {
	for x := 0; x < g.width; x++ {
		if !g.walls[0][x] || !g.walls[g.height-1][x] {
			return fmt.Errorf("maze: boundary open at column %d", x)
		}
	}
	for y := 0; y < g.height; y++ {
		if !g.walls[y][0] || !g.walls[y][g.width-1] {
			return fmt.Errorf("maze: boundary open at row %d", y)
		}
	}
	return nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Row returns the layout text for row y, used by the map overlay.
func (g *Grid) Row(y int) string { return g.layout[y] }

// IsWall reports whether the cell at (x, y) is a wall. Coordinates
// must be in bounds; the closed boundary keeps the ray caster inside.
func (g *Grid) IsWall(x, y int) bool {
	return g.walls[y][x]
}

// IsWallAt reports whether the cell containing p is a wall.
func (g *Grid) IsWallAt(p geom.Vec2) bool {
	c := p.Floor()
	return g.IsWall(c.X, c.Y)
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}
