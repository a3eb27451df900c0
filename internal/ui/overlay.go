//go:build ebiten

package ui

import (
	"image/color"

	"cave-ca/internal/core"
	"cave-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type noiseProvider interface {
	Noise() *core.Grid
}

var (
	noiseWall  = color.RGBA{R: 180, G: 30, B: 30, A: 180}
	noiseFloor = color.RGBA{}
)

// Overlay draws the seed noise on top of the smoothed map when toggled on.
type Overlay struct {
	sim       core.Sim
	painter   *render.GridPainter
	showNoise bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	size := sim.Size()
	return &Overlay{sim: sim, painter: render.NewGridPainter(size.W, size.H)}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showNoise = !o.showNoise
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, cellSize int) {
	if !o.showNoise {
		return
	}
	provider, ok := o.sim.(noiseProvider)
	if !ok {
		return
	}
	noise := provider.Noise()
	if noise == nil {
		return
	}
	o.painter.Blit(screen, noise.Cells(), noiseWall, noiseFloor, cellSize)
}
