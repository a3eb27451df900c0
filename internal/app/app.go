//go:build ebiten

package app

import (
	"errors"
	"log"
	"time"

	"cave-ca/internal/core"
	"cave-ca/internal/render"
	"cave-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type summarizer interface {
	Summary() string
}

type seedReporter interface {
	Seed() int64
}

// Game adapts a map generator to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	screen   core.Size
	cellSize int
}

// New constructs a Game for the provided generator. screen is the map area
// in pixels; the HUD panel, when hudWidth > 0, is added to its right. The map
// must already be generated; Game only regenerates on request.
func New(sim core.Sim, screen core.Size, cellSize, hudWidth int) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim),
		screen:   screen,
		cellSize: cellSize,
	}
	if hudWidth > 0 {
		g.hud = ui.NewHUD(sim, hudWidth)
	}
	return g
}

// Reset regenerates the map with the provided seed.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	if s, ok := g.sim.(summarizer); ok {
		log.Print(s.Summary())
	}
}

// Update polls input once per tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		var seed int64
		if s, ok := g.sim.(seedReporter); ok {
			seed = s.Seed()
		}
		g.Reset(seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.cellSize)
	g.sim.Step()
	return nil
}

// Draw renders the current map.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), render.WallColor, render.FloorColor, g.cellSize)
	g.overlay.Draw(screen, g.cellSize)
	g.hud.Draw(screen, g.screen.W, g.cellSize)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowSize(g.screen, g.hud.Width())
}

// Run opens the window and blocks until the user closes it. A clean shutdown
// returns nil; anything else is reported as a DisplayInitError.
func Run(g *Game, title string, tps int) error {
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return &DisplayInitError{Err: err}
	}
	return nil
}
