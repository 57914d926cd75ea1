package game

import "github.com/gdamore/tcell/v2"

// Action is a player-requested command.
type Action uint8

const (
	ActionNone Action = iota
	ActionTurnLeft
	ActionTurnRight
	ActionWalkForward
	ActionWalkBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionToggleSmoothing
	ActionToggleMap
	ActionQuit
)

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionWalkForward
	case tcell.KeyDown:
		return ActionWalkBack
	case tcell.KeyLeft:
		return ActionTurnLeft
	case tcell.KeyRight:
		return ActionTurnRight
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'a', 'A':
		return ActionTurnLeft
	case 'd', 'D':
		return ActionTurnRight
	case 'w', 'W':
		return ActionWalkForward
	case 's', 'S':
		return ActionWalkBack
	case 'm', 'M':
		return ActionStrafeRight
	case 'n', 'N':
		return ActionStrafeLeft
	case 'h', 'H':
		return ActionToggleSmoothing
	case 'p', 'P':
		return ActionToggleMap
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
