//go:build ebiten

package app

import (
	"voxfield/internal/camera"
	"voxfield/internal/core"
	"voxfield/internal/field"
	"voxfield/internal/render"
	"voxfield/internal/stage"
	"voxfield/internal/theme"
	"voxfield/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const dragRadiansPerPixel = 0.005

// Game adapts the voxel field to the ebiten.Game interface.
type Game struct {
	field   *field.Field
	stages  *stage.Controller
	camera  *camera.Camera
	painter *render.FieldPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.FrameClock

	paused   bool
	dragging bool
	lastX    int
	lastY    int
}

// New constructs a Game for the provided config and stage text.
func New(cfg *Config, content *stage.Content) *Game {
	stages := stage.New()
	seed := cfg.Seed
	rng := core.NewRNG(seed)
	if seed == 0 {
		rng = core.NewTimeRNG()
	}
	f := field.NewWithRNG(cfg.Count, stages, rng)
	return &Game{
		field:   f,
		stages:  stages,
		camera:  camera.New(cfg.Camera),
		painter: render.NewFieldPainter(f.Count()),
		overlay: ui.NewOverlay(content),
		hud:     ui.NewHUD(),
		clock:   core.NewFrameClock(),
	}
}

// Close stops the field; later frames leave it untouched.
func (g *Game) Close() { g.field.Close() }

// Update handles per-frame input and advances the field exactly once.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Close()
		return ebiten.Termination
	}
	g.handleKeys()

	elapsed, dt := g.clock.Tick()

	switch action, target := g.overlay.Update(g.stages, elapsed); action {
	case ui.ActionPrevious:
		g.stages.Previous()
	case ui.ActionNext:
		g.stages.Next()
	case ui.ActionJump:
		g.stages.Jump(target)
	}
	g.handleMouse()

	if !g.paused {
		g.field.Advance(dt)
	}
	g.camera.Update(dt)
	g.hud.Update(g.field.Stats(), ebiten.ActualTPS(), g.painter.Faces())
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.stages.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.stages.Previous()
	}
	digits := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}
	for i, k := range digits {
		if inpututil.IsKeyJustPressed(k) {
			g.stages.Jump(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		if !g.paused {
			g.clock.Skip()
		}
	}
}

func (g *Game) handleMouse() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.Zoom(wy)
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.overlay.Captures(x, y) {
		g.dragging = true
		g.lastX, g.lastY = x, y
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging = false
		return
	}
	if g.dragging {
		g.camera.Orbit(float64(x-g.lastX)*dragRadiansPerPixel, float64(y-g.lastY)*dragRadiansPerPixel)
		g.lastX, g.lastY = x, y
	}
}

// Draw renders the field in one batched draw, then the panel on top.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(theme.RGBA(theme.Background))
	g.painter.Draw(screen, g.field.Render(), g.camera)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout uses the window size as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
