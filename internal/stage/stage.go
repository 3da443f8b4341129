// Package stage tracks which narrative stage the viewer is on.
package stage

import "voxfield/internal/core"

// Controller holds the current stage index. It only moves one step at a time
// (or jumps to a clamped index) and never wraps around.
type Controller struct {
	index int
}

// New returns a controller on the first stage.
func New() *Controller { return &Controller{} }

// Current returns the current stage index.
func (c *Controller) Current() int { return c.index }

// Next advances one stage, staying put on the last one.
func (c *Controller) Next() {
	c.index = min(core.StageCount-1, c.index+1)
}

// Previous goes back one stage, staying put on the first one.
func (c *Controller) Previous() {
	c.index = max(0, c.index-1)
}

// Jump moves straight to stage k, clamped to the valid range.
func (c *Controller) Jump(k int) {
	c.index = core.ClampStage(k)
}

// AtFirst reports whether Previous would be a no-op.
func (c *Controller) AtFirst() bool { return c.index == 0 }

// AtLast reports whether Next would be a no-op.
func (c *Controller) AtLast() bool { return c.index == core.StageCount-1 }
