// mazecaster renders a first-person view of a maze in the terminal.
//
// Keys: a/d turn, w/s walk, n/m strafe, h toggles edge smoothing,
// p toggles the map overlay, q or Esc quits.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"mazecaster/internal/game"
	"mazecaster/internal/logger"
)

func main() {
	logger.Init(filepath.Join(os.TempDir(), "mazecaster.log"), "info")
	defer logger.Sync()

	g, err := game.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}
