// mazecaster-server serves the maze over SSH: every connection gets a
// PTY-backed screen running its own session. Build:
//
//	go build -o mazecaster-server ./cmd/server
//
// Usage:
//
//	./mazecaster-server [--port 2222] [--key server_host_key]
//
// Then connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"

	"mazecaster/internal/game"
	"mazecaster/internal/logger"
	internalssh "mazecaster/internal/ssh"
)

// allowedTerms are TERM values we pass through to terminfo lookup.
// Anything else falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"rxvt-unicode-256color": true,
	"linux":                 true,
	"vt100":                 true,
}

// termMu serializes os.Setenv("TERM") around screen creation; tcell
// reads the environment while building a terminfo screen.
var termMu sync.Mutex

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	logFile := flag.String("log", "mazecaster-server.log", "Path to the server log file")
	flag.Parse()

	logger.Init(*logFile, "info")
	defer logger.Sync()

	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — appropriate for a private home
		// server. Add gossh.PublicKeyAuth for real deployments.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Log.Info("listening", zap.Int("port", *port))
	fmt.Printf("mazecaster SSH server listening on :%d\n", *port)
	fmt.Printf("Connect with:  ssh -p %d localhost\n", *port)
	if err := srv.ListenAndServe(); err != nil {
		logger.Log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

// handleSession runs one game per SSH connection; it blocks until the
// player quits or disconnects.
func handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	screen, err := newSessionScreen(tty, sessionTerm(s))
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		logger.Log.Warn("screen setup failed",
			zap.String("remote", s.RemoteAddr().String()), zap.Error(err))
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	logger.Log.Info("session connected",
		zap.String("remote", s.RemoteAddr().String()),
		zap.String("user", s.User()))

	game.NewWithScreen(screen).Run()

	logger.Log.Info("session finished",
		zap.String("remote", s.RemoteAddr().String()))
}

// sessionTerm extracts a safe TERM value from the session environment.
func sessionTerm(s gossh.Session) string {
	for _, env := range s.Environ() {
		if t, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[t] {
			return t
		}
	}
	return "xterm-256color"
}

// newSessionScreen builds a tcell screen on the given Tty. TERM must be
// set in the process environment while the terminfo screen is created.
func newSessionScreen(tty tcell.Tty, term string) (tcell.Screen, error) {
	termMu.Lock()
	defer termMu.Unlock()
	_ = os.Setenv("TERM", term)
	return tcell.NewTerminfoScreenFromTty(tty)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates
// and persists a new ed25519 key when the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Log.Info("loaded host key", zap.String("path", path))
			return signer
		}
	}

	logger.Log.Info("generating host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate host key: %v\n", err)
		os.Exit(1)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create signer: %v\n", err)
		os.Exit(1)
	}
	// Persist for the next run; failing to write is not fatal.
	if pemBlock, err := xssh.MarshalPrivateKey(key, "mazecaster server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
