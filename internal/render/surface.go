// Package render projects wall hits onto a character-cell surface, one
// column of glyphs at a time.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is the character grid the renderer draws on. Implementations
// ignore writes outside [0, width) x [0, height).
type Surface interface {
	SetGlyph(col, row int, glyph rune, invert bool)
	Size() (width, height int)
}

// ScreenSurface adapts a tcell.Screen to the Surface interface.
// Inverted glyphs are drawn in reverse video, so an inverted space
// reads as a solid block.
type ScreenSurface struct {
	screen tcell.Screen
}

// NewScreenSurface wraps screen as a Surface.
func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	return &ScreenSurface{screen: screen}
}

// SetGlyph draws one glyph at (col, row). Double-width glyphs get their
// trailing column filled to avoid rendering artifacts.
func (s *ScreenSurface) SetGlyph(col, row int, glyph rune, invert bool) {
	style := tcell.StyleDefault
	if invert {
		style = style.Reverse(true)
	}
	s.screen.SetContent(col, row, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		s.screen.SetContent(col+1, row, ' ', nil, style)
	}
}

// Size returns the current screen dimensions.
func (s *ScreenSurface) Size() (int, int) {
	return s.screen.Size()
}
