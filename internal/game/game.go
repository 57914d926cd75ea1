// Package game owns the frame loop: render the scene, poll one event,
// apply the resulting action, repeat until quit.
package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"mazecaster/internal/logger"
	"mazecaster/internal/maze"
	"mazecaster/internal/render"
)

// Game ties a screen, a maze, and a session together.
type Game struct {
	screen  tcell.Screen
	surface *render.ScreenSurface
	grid    *maze.Grid
	session *Session
}

// New creates a Game on the local terminal.
func New() (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a Game on an already-initialized screen. The
// SSH server uses this to run a game per connection.
func NewWithScreen(screen tcell.Screen) *Game {
	grid := maze.Default()
	return &Game{
		screen:  screen,
		surface: render.NewScreenSurface(screen),
		grid:    grid,
		session: NewSession(grid),
	}
}

// Run drives the frame loop until the player quits. One frame is
// rendered per event: the scene only changes in response to a command,
// so tcell's event queue stands in for the busy-wait poll a raw
// terminal would need.
func (g *Game) Run() {
	defer g.screen.Fini()

	logger.Log.Info("session started",
		zap.Int("maze_width", g.grid.Width()),
		zap.Int("maze_height", g.grid.Height()))

	for {
		g.drawFrame()

		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			action := keyToAction(ev)
			if action == ActionQuit {
				logger.Log.Info("session ended")
				return
			}
			g.session.Apply(action)
		case nil:
			// Screen finalized under us (SSH disconnect).
			logger.Log.Info("session closed by peer")
			return
		}
	}
}

// drawFrame renders one complete frame. Surface dimensions are
// re-queried inside DrawScene, so a resize applied by tcell takes
// effect here without extra bookkeeping.
func (g *Game) drawFrame() {
	g.screen.Clear()
	render.DrawScene(g.surface, g.grid, g.session.Player, g.session.Smooth)
	if g.session.ShowMap {
		render.DrawOverlay(g.surface, g.grid, g.session.Player)
	}
	g.screen.Show()
}
