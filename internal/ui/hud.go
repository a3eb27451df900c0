//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"cave-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 16
)

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudHeading    = color.RGBA{R: 230, G: 200, B: 120, A: 255}
	hudText       = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	hudMuted      = color.RGBA{R: 140, G: 140, B: 150, A: 255}
)

// HUD renders the parameter panel to the right of the map view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
	cursor     string
}

// NewHUD constructs a HUD for the provided sim and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Width reports the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot and the cursor readout.
func (h *HUD) Update(cellSize int) {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	mx, my := ebiten.CursorPosition()
	h.cursor = cursorLabel(h.sim, mx, my, cellSize)
}

// Draw paints the HUD panel at offsetX, the right edge of the map view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, cellSize int) {
	if h == nil || h.width <= 0 {
		return
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	height := h.sim.Size().H * cellSize
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(hudBackground)

	face := basicfont.Face7x13
	y := hudPadding + hudLineHeight
	text.Draw(h.panel, h.title, face, hudPadding, y, hudHeading)
	y += hudLineHeight
	for _, group := range h.snapshot.Groups {
		y += hudLineHeight / 2
		heading := group.Name
		if group.Summary != "" {
			heading = fmt.Sprintf("%s (%s)", group.Name, group.Summary)
		}
		text.Draw(h.panel, heading, face, hudPadding, y, hudHeading)
		y += hudLineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, formatParam(p), face, hudPadding, y, hudText)
			y += hudLineHeight
		}
	}
	if h.cursor != "" {
		y += hudLineHeight / 2
		text.Draw(h.panel, h.cursor, face, hudPadding, y, hudMuted)
		y += hudLineHeight
	}
	y += hudLineHeight / 2
	for _, line := range helpLines {
		text.Draw(h.panel, line, face, hudPadding, y, hudMuted)
		y += hudLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
