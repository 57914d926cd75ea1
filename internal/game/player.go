package game

import (
	"mazecaster/internal/geom"
	"mazecaster/internal/maze"
)

const (
	walkSpeed = 0.5
	turnSpeed = 0.1
)

// Player is the viewer: a position, a unit forward vector, and a
// perpendicular right vector. The right vector's 0.8 length sets the
// field of view; it is used both for strafing and for spreading rays
// across the screen.
type Player struct {
	grid    *maze.Grid
	pos     geom.Vec2
	forward geom.Vec2
	right   geom.Vec2
}

// NewPlayer places a player at the maze start cell facing +y.
func NewPlayer(grid *maze.Grid) *Player {
	return &Player{
		grid:    grid,
		pos:     geom.Vec2{X: 5.5, Y: 5.5},
		forward: geom.Vec2{X: 0, Y: 1},
		right:   geom.Vec2{X: 0.8, Y: 0},
	}
}

// Pos returns the player's position.
func (p *Player) Pos() geom.Vec2 { return p.pos }

// LineOfSight returns the ray direction for screen fraction t in
// [0, 1]: picture a screen one unit ahead, parallel to the right
// vector, with t = 0 at its left edge and t = 1 at its right edge.
func (p *Player) LineOfSight(t float64) geom.Vec2 {
	return p.forward.Add(p.right.Scale(2*t - 1))
}

// Walk moves along the forward vector; factor -1 walks backwards.
func (p *Player) Walk(factor float64) {
	p.move(p.forward.Scale(factor * walkSpeed))
}

// Strafe moves along the right vector; factor -1 strafes left.
func (p *Player) Strafe(factor float64) {
	p.move(p.right.Scale(factor * walkSpeed))
}

// Turn rotates both the forward and right vectors by the same angle,
// keeping them perpendicular. Positive factor turns counter-clockwise.
func (p *Player) Turn(factor float64) {
	p.forward = p.forward.Rotate(factor * turnSpeed)
	p.right = p.right.Rotate(factor * turnSpeed)
}

// move applies v unless the destination cell is a wall. Primitive
// collision: the whole move is rejected, there is no wall sliding.
func (p *Player) move(v geom.Vec2) {
	dest := p.pos.Add(v)
	if !p.grid.IsWallAt(dest) {
		p.pos = dest
	}
}
