// Package ssh adapts a gliderlabs SSH session into a tcell Tty so each
// connected client can run its own fullscreen maze session.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of an SSH session's channel.
type SessionTty struct {
	session gossh.Session
	mu      sync.Mutex
	window  gossh.Window
	winCh   <-chan gossh.Window
	resize  func()
}

// NewSessionTty wraps an SSH session. pty carries the initial window
// size; winCh delivers resizes for the lifetime of the session.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

// Read pulls keyboard input from the client.
func (t *SessionTty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write pushes rendered output to the client.
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the SSH channel.
func (t *SessionTty) Close() error { return t.session.Close() }

// Start is a no-op; the channel is already open when the Tty is built.
func (t *SessionTty) Start() error { return nil }

// Stop is a no-op; the server handler goroutine owns the channel.
func (t *SessionTty) Stop() error { return nil }

// Drain is a no-op; SSH writes are not buffered on our side.
func (t *SessionTty) Drain() error { return nil }

// WindowSize reports the client's current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb to run on window-change events and starts
// draining the resize channel for the rest of the session.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			notify := t.resize
			t.mu.Unlock()
			if notify != nil {
				notify()
			}
		}
	}()
}
