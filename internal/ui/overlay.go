//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"voxfield/internal/stage"
	"voxfield/internal/theme"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	titleScale    = 3
	subtitleScale = 1
)

// Overlay draws the narrative panel over the field: stage text, the
// previous/next buttons and the progress bars.
type Overlay struct {
	content *stage.Content
	layout  layoutCache
	w, h    int

	stage     int
	first     bool
	last      bool
	changedAt float64
	elapsed   float64

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay showing content.
func NewOverlay(content *stage.Content) *Overlay {
	o := &Overlay{content: content, changedAt: -fadeSeconds, first: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Resize records the logical screen size so clicks are resolved against the
// current geometry before the next Draw.
func (o *Overlay) Resize(w, h int) {
	o.w, o.h = w, h
}

// Update tracks stage changes for the text fade and resolves clicks on the
// panel controls.
func (o *Overlay) Update(stages Stages, elapsed float64) (Action, int) {
	if current := stages.Current(); current != o.stage {
		o.stage = current
		o.changedAt = elapsed
	}
	o.first, o.last = stages.AtFirst(), stages.AtLast()
	o.elapsed = elapsed
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ActionNone, o.stage
	}
	mx, my := ebiten.CursorPosition()
	return o.layout.At(o.w, o.h).Hit(mx, my, stages)
}

// Captures reports whether a press at (x, y) belongs to the panel rather than
// the scene behind it.
func (o *Overlay) Captures(x, y int) bool {
	return o.layout.At(o.w, o.h).Contains(x, y)
}

// Draw renders the panel onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	o.w, o.h = b.Dx(), b.Dy()
	l := o.layout.At(o.w, o.h)
	face := basicfont.Face7x13

	o.drawText(screen, "Interactive Demo", l.W-panelPadding-16*charWidth, panelPadding, 1, theme.RGBA(theme.Bone), 0.5)

	alpha, offset := Fade(o.elapsed - o.changedAt)
	step := o.content.At(o.stage)
	lines := Wrap(step.Description, l.WrapColumns())

	y := l.TextBottom - len(lines)*lineHeight + int(offset)
	for i, line := range lines {
		o.drawText(screen, line, l.TextLeft+12, y+i*lineHeight, 1, theme.RGBA(theme.Bone), 0.9*alpha)
	}
	o.fillRect(screen, image.Rect(l.TextLeft, y-face.Ascent, l.TextLeft+2, y+(len(lines)-1)*lineHeight+4), theme.RGBA(theme.Teal), alpha)

	titleY := y - 2*lineHeight
	o.drawText(screen, step.Title, l.TextLeft, titleY, titleScale, theme.RGBA(theme.Bone), alpha)
	o.drawText(screen, step.Subtitle, l.TextLeft, titleY-titleScale*face.Ascent-lineHeight, subtitleScale, theme.RGBA(theme.Teal), alpha)

	o.drawButton(screen, l.Prev, "Previous Step", !o.first, false)
	o.drawButton(screen, l.Next, NextLabel(o.last), !o.last, true)

	for i, r := range l.Progress {
		c := theme.RGBA(theme.Inactive)
		if ProgressActive(i, o.stage) {
			c = theme.RGBA(theme.Teal)
		}
		o.fillRect(screen, r, c, 0.5)
	}
}

func (o *Overlay) drawButton(screen *ebiten.Image, r image.Rectangle, label string, enabled, primary bool) {
	opacity := 1.0
	if !enabled {
		opacity = 0.3
	}
	fg := theme.RGBA(theme.Bone)
	if primary {
		o.fillRect(screen, r, theme.RGBA(theme.Teal), opacity)
		fg = color.RGBA{R: 0x01, G: 0x01, B: 0x01, A: 0xff}
	} else {
		o.strokeRect(screen, r, theme.RGBA(theme.Bone), opacity)
	}
	bounds := text.BoundString(basicfont.Face7x13, label)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 + bounds.Dy()
	o.drawText(screen, label, x, y, 1, fg, opacity)
}

func (o *Overlay) drawText(screen *ebiten.Image, s string, x, y int, scale float64, c color.RGBA, alpha float64) {
	if s == "" || alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.DrawWithOptions(screen, s, basicfont.Face7x13, op)
}

func (o *Overlay) fillRect(screen *ebiten.Image, r image.Rectangle, c color.RGBA, alpha float64) {
	if r.Empty() || alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) strokeRect(screen *ebiten.Image, r image.Rectangle, c color.RGBA, alpha float64) {
	o.fillRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c, alpha)
	o.fillRect(screen, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c, alpha)
	o.fillRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c, alpha)
	o.fillRect(screen, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c, alpha)
}
