//go:build !ebiten

package app

import (
	"errors"

	"cave-ca/internal/core"
)

// ErrNoDisplay is returned by Run when the binary was built without the
// ebiten tag.
var ErrNoDisplay = errors.New("built without the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New returns a placeholder; the headless build cannot open a window.
func New(core.Sim, core.Size, int, int) *Game { return &Game{} }

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return &DisplayInitError{Err: ErrNoDisplay} }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

// Run reports that no display is available.
func Run(*Game, string, int) error {
	return &DisplayInitError{Err: ErrNoDisplay}
}
