//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"voxfield/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a small readout of field statistics in the top-left corner.
type HUD struct {
	visible bool
	panel   *ebiten.Image
	lines   []string
}

// NewHUD constructs a hidden HUD.
func NewHUD() *HUD { return &HUD{} }

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update refreshes the cached lines from snapshot plus per-frame extras.
func (h *HUD) Update(snapshot core.ParameterSnapshot, tps float64, faces int) {
	if h == nil || !h.visible {
		return
	}
	h.lines = h.lines[:0]
	for _, group := range snapshot.Groups {
		h.lines = append(h.lines, group.Name)
		for _, p := range group.Params {
			h.lines = append(h.lines, fmt.Sprintf("  %-14s %s", p.Label, p.Value))
		}
	}
	h.lines = append(h.lines, "Render", fmt.Sprintf("  %-14s %d", "Faces", faces), fmt.Sprintf("  %-14s %.1f", "TPS", tps))
}

// Draw paints the HUD when visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	width := hudPadding*2 + hudColumns*charWidth
	height := hudPadding*2 + len(h.lines)*hudLineHeight
	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := hudPadding + face.Ascent + i*hudLineHeight
		text.Draw(h.panel, line, face, hudPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(panelPadding/2), float64(panelPadding*2))
	screen.DrawImage(h.panel, op)
}

const (
	hudPadding    = 10
	hudColumns    = 30
	hudLineHeight = 16
)
