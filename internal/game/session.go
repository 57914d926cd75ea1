package game

import "mazecaster/internal/maze"

// Session is the mutable per-run state: the player plus the two render
// toggles. It is passed explicitly wherever it is needed; there is no
// package-level state.
type Session struct {
	Player  *Player
	Smooth  bool
	ShowMap bool
}

// NewSession starts a session in the given maze with smoothing on and
// the map overlay off.
func NewSession(grid *maze.Grid) *Session {
	return &Session{
		Player: NewPlayer(grid),
		Smooth: true,
	}
}

// Apply executes one action against the session. ActionQuit is handled
// by the caller's loop, not here.
func (s *Session) Apply(a Action) {
	switch a {
	case ActionTurnLeft:
		s.Player.Turn(1)
	case ActionTurnRight:
		s.Player.Turn(-1)
	case ActionWalkForward:
		s.Player.Walk(1)
	case ActionWalkBack:
		s.Player.Walk(-1)
	case ActionStrafeRight:
		s.Player.Strafe(1)
	case ActionStrafeLeft:
		s.Player.Strafe(-1)
	case ActionToggleSmoothing:
		s.Smooth = !s.Smooth
	case ActionToggleMap:
		s.ShowMap = !s.ShowMap
	}
}
