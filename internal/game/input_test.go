package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"mazecaster/internal/geom"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func namedKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"a turns left", runeKey('a'), ActionTurnLeft},
		{"D turns right", runeKey('D'), ActionTurnRight},
		{"w walks forward", runeKey('w'), ActionWalkForward},
		{"s walks back", runeKey('s'), ActionWalkBack},
		{"m strafes right", runeKey('m'), ActionStrafeRight},
		{"n strafes left", runeKey('n'), ActionStrafeLeft},
		{"h toggles smoothing", runeKey('h'), ActionToggleSmoothing},
		{"p toggles map", runeKey('p'), ActionToggleMap},
		{"q quits", runeKey('q'), ActionQuit},
		{"escape quits", namedKey(tcell.KeyEscape), ActionQuit},
		{"up arrow walks forward", namedKey(tcell.KeyUp), ActionWalkForward},
		{"down arrow walks back", namedKey(tcell.KeyDown), ActionWalkBack},
		{"left arrow turns left", namedKey(tcell.KeyLeft), ActionTurnLeft},
		{"right arrow turns right", namedKey(tcell.KeyRight), ActionTurnRight},
		{"unmapped rune is none", runeKey('x'), ActionNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keyToAction(tc.ev); got != tc.want {
				t.Errorf("keyToAction = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSessionToggles(t *testing.T) {
	s := NewSession(testGrid(t))
	if !s.Smooth {
		t.Error("smoothing should start enabled")
	}
	if s.ShowMap {
		t.Error("map overlay should start disabled")
	}

	s.Apply(ActionToggleSmoothing)
	if s.Smooth {
		t.Error("smoothing should toggle off")
	}
	s.Apply(ActionToggleSmoothing)
	if !s.Smooth {
		t.Error("smoothing should toggle back on")
	}

	s.Apply(ActionToggleMap)
	if !s.ShowMap {
		t.Error("map overlay should toggle on")
	}
}

func TestSessionMovementActions(t *testing.T) {
	s := NewSession(testGrid(t))
	s.Player.pos = geom.Vec2{X: 3.5, Y: 2.5}

	start := s.Player.Pos()
	s.Apply(ActionWalkForward)
	if s.Player.Pos() == start {
		t.Error("walk forward did not move the player")
	}
	s.Apply(ActionWalkBack)
	got := s.Player.Pos()
	if diff := got.Sub(start).Len(); diff > 1e-9 {
		t.Errorf("walk forward+back drifted by %g", diff)
	}

	s.Apply(ActionNone)
	if s.Player.Pos() != got {
		t.Error("ActionNone moved the player")
	}
}
