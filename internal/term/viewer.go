package term

import (
	"context"
	"fmt"
	"time"

	"voxfield/internal/camera"
	"voxfield/internal/core"
	"voxfield/internal/field"
	"voxfield/internal/stage"
	"voxfield/internal/theme"
	"voxfield/internal/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// textRows is the number of rows reserved for the stage text at the bottom.
const textRows = 6

// Viewer runs the field in a tcell screen. All field and stage mutation
// happens on the goroutine running Run.
type Viewer struct {
	screen  tcell.Screen
	field   *field.Field
	stages  *stage.Controller
	camera  *camera.Camera
	content *stage.Content
	raster  *Raster
	chime   *Chime
	tps     int
}

// NewViewer wires a viewer around an initialised screen. chime may be nil.
func NewViewer(screen tcell.Screen, f *field.Field, stages *stage.Controller, cam *camera.Camera, content *stage.Content, chime *Chime, tps int) *Viewer {
	if tps <= 0 {
		tps = 60
	}
	return &Viewer{
		screen:  screen,
		field:   f,
		stages:  stages,
		camera:  cam,
		content: content,
		raster:  NewRaster(0, 0),
		chime:   chime,
		tps:     tps,
	}
}

// Run ticks the field until ctx is cancelled or the viewer is asked to quit.
// On return the ticker and the event pump are stopped and the field closed.
func (v *Viewer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer v.field.Close()

	ticker := time.NewTicker(time.Second / time.Duration(v.tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go v.pump(ctx, events)

	clock := core.NewFrameClock()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.handle(ev) {
				return nil
			}
		case <-ticker.C:
			_, dt := clock.Tick()
			v.field.Advance(dt)
			v.camera.Update(dt)
			v.draw()
		}
	}
}

func (v *Viewer) pump(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handle applies one input event and reports whether to keep running.
func (v *Viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		before := v.stages.Current()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight, tcell.KeyEnter:
			v.stages.Next()
		case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
			v.stages.Previous()
		case tcell.KeyUp:
			v.camera.Zoom(1)
		case tcell.KeyDown:
			v.camera.Zoom(-1)
		case tcell.KeyRune:
			switch r := ev.Rune(); {
			case r == 'q':
				return false
			case r == ' ' || r == 'l':
				v.stages.Next()
			case r == 'h':
				v.stages.Previous()
			case r >= '1' && r <= '4':
				v.stages.Jump(int(r - '1'))
			}
		}
		if after := v.stages.Current(); after != before {
			v.chime.Play(after)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) draw() {
	w, h := v.screen.Size()
	v.screen.Clear()
	bg := tcell.StyleDefault.Background(tcellColor(theme.Background))

	fieldRows := max(0, h-textRows)
	v.raster.Resize(w, fieldRows)
	v.raster.Plot(v.field.Render(), v.camera)
	for y := 0; y < v.raster.H; y++ {
		for x := 0; x < v.raster.W; x++ {
			c := v.raster.At(x, y)
			if c.Rune == 0 {
				v.screen.SetContent(x, y, ' ', nil, bg)
				continue
			}
			v.screen.SetContent(x, y, c.Rune, nil, bg.Foreground(tcellColor(c.Color)))
		}
	}

	current := v.stages.Current()
	step := v.content.At(current)
	teal := bg.Foreground(tcellColor(theme.Teal))
	bone := bg.Foreground(tcellColor(theme.Bone))
	row := fieldRows
	v.puts(1, row, step.Subtitle, teal)
	v.puts(1, row+1, step.Title, bone.Bold(true))
	for i, line := range ui.Wrap(step.Description, max(1, w-2)) {
		if i >= textRows-3 {
			break
		}
		v.puts(1, row+2+i, line, bone)
	}

	var progress string
	for i := 0; i < core.StageCount; i++ {
		if ui.ProgressActive(i, current) {
			progress += "■ "
		} else {
			progress += "□ "
		}
	}
	hint := fmt.Sprintf("%s ←/→ step  1-4 jump  ↑/↓ zoom  q quit  [%s]", progress, ui.NextLabel(v.stages.AtLast()))
	v.puts(1, h-1, hint, teal)
	v.screen.Show()
}

func (v *Viewer) puts(x, y int, s string, style tcell.Style) {
	w, h := v.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range s {
		if x >= w {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
