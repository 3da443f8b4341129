package ui

import (
	"image"
	"strings"
	"unicode/utf8"

	"voxfield/internal/core"
)

// Action is a panel interaction resolved from a click.
type Action int

const (
	ActionNone Action = iota
	ActionPrevious
	ActionNext
	ActionJump
)

const (
	panelPadding   = 48
	panelMaxWidth  = 576
	buttonHeight   = 40
	prevWidth      = 150
	nextWidth      = 160
	buttonGap      = 16
	progressHeight = 4
	progressGap    = 8
	progressMargin = 40
	charWidth      = 7
	lineHeight     = 22
	fadeSeconds    = 0.5
	fadeRise       = 20
)

// Stages is the stage position the panel reads its button states from.
type Stages interface {
	Current() int
	AtFirst() bool
	AtLast() bool
}

// PanelLayout places the narrative panel controls on a w×h screen.
type PanelLayout struct {
	W, H      int
	Prev      image.Rectangle
	Next      image.Rectangle
	Progress  [core.StageCount]image.Rectangle
	TextLeft  int
	TextWidth int
	// TextBottom is the baseline limit the text block is stacked above.
	TextBottom int
}

// Layout computes the panel geometry for a screen size.
func Layout(w, h int) PanelLayout {
	l := PanelLayout{W: w, H: h, TextLeft: panelPadding}

	barTop := h - panelPadding - progressHeight
	barSpan := w - 2*panelPadding
	if barSpan < core.StageCount {
		barSpan = core.StageCount
	}
	segment := (barSpan - (core.StageCount-1)*progressGap) / core.StageCount
	if segment < 1 {
		segment = 1
	}
	for i := range l.Progress {
		x := panelPadding + i*(segment+progressGap)
		l.Progress[i] = image.Rect(x, barTop, x+segment, barTop+progressHeight)
	}

	buttonTop := barTop - progressMargin - buttonHeight
	l.Prev = image.Rect(panelPadding, buttonTop, panelPadding+prevWidth, buttonTop+buttonHeight)
	nextLeft := l.Prev.Max.X + buttonGap
	l.Next = image.Rect(nextLeft, buttonTop, nextLeft+nextWidth, buttonTop+buttonHeight)

	l.TextWidth = min(panelMaxWidth, w-2*panelPadding)
	if l.TextWidth < charWidth {
		l.TextWidth = charWidth
	}
	l.TextBottom = buttonTop - 2*buttonGap
	return l
}

// Hit resolves a click at (x, y) against the panel. Disabled buttons at the
// stage bounds resolve to ActionNone. Progress bars jump to their stage.
func (l PanelLayout) Hit(x, y int, stages Stages) (Action, int) {
	stage := stages.Current()
	switch {
	case PointInRect(x, y, l.Prev):
		if stages.AtFirst() {
			return ActionNone, stage
		}
		return ActionPrevious, stage - 1
	case PointInRect(x, y, l.Next):
		if stages.AtLast() {
			return ActionNone, stage
		}
		return ActionNext, stage + 1
	}
	if i, ok := l.progressAt(x, y); ok {
		return ActionJump, i
	}
	return ActionNone, stage
}

// Contains reports whether (x, y) falls on any panel control, enabled or not.
func (l PanelLayout) Contains(x, y int) bool {
	if PointInRect(x, y, l.Prev) || PointInRect(x, y, l.Next) {
		return true
	}
	_, ok := l.progressAt(x, y)
	return ok
}

func (l PanelLayout) progressAt(x, y int) (int, bool) {
	for i, r := range l.Progress {
		// Bars are thin; accept clicks a little above and below.
		grab := image.Rect(r.Min.X, r.Min.Y-progressMargin/4, r.Max.X, r.Max.Y+progressMargin/4)
		if PointInRect(x, y, grab) {
			return i, true
		}
	}
	return 0, false
}

// layoutCache keeps the panel geometry for the last screen size seen.
type layoutCache struct {
	layout PanelLayout
	valid  bool
}

// At returns the layout for a w×h screen, recomputing it when the size changes.
func (c *layoutCache) At(w, h int) PanelLayout {
	if !c.valid || c.layout.W != w || c.layout.H != h {
		c.layout = Layout(w, h)
		c.valid = true
	}
	return c.layout
}

// WrapColumns is the number of characters per description line.
func (l PanelLayout) WrapColumns() int {
	return max(1, l.TextWidth/charWidth)
}

// NextLabel is the caption of the forward button.
func NextLabel(last bool) string {
	if last {
		return "Completed"
	}
	return "Next Stage"
}

// ProgressActive reports whether the progress bar for stage i is lit.
func ProgressActive(i, stage int) bool { return i <= stage }

// Fade returns the opacity and downward offset of the stage text sinceChange
// seconds after the stage switched.
func Fade(sinceChange float64) (alpha, offset float64) {
	if sinceChange >= fadeSeconds {
		return 1, 0
	}
	if sinceChange <= 0 {
		return 0, fadeRise
	}
	t := sinceChange / fadeSeconds
	return t, (1 - t) * fadeRise
}

// Wrap breaks s into lines of at most cols characters on word boundaries.
// Words longer than a line are split between runes.
func Wrap(s string, cols int) []string {
	if cols <= 0 {
		cols = 1
	}
	var lines []string
	var line strings.Builder
	n := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		n = 0
	}
	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		for len(runes) > cols {
			if n > 0 {
				flush()
			}
			lines = append(lines, string(runes[:cols]))
			runes = runes[cols:]
		}
		word = string(runes)
		size := utf8.RuneCountInString(word)
		switch {
		case n == 0:
		case n+1+size <= cols:
			line.WriteByte(' ')
			n++
		default:
			flush()
		}
		line.WriteString(word)
		n += size
	}
	if n > 0 {
		flush()
	}
	return lines
}

// PointInRect reports whether (x, y) lies inside rect.
func PointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
