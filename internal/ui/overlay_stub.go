//go:build !ebiten

package ui

import "voxfield/internal/stage"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*stage.Content) *Overlay { return &Overlay{} }

// Resize is a no-op in headless builds.
func (o *Overlay) Resize(int, int) {}

// Update reports no interaction in headless builds.
func (o *Overlay) Update(stages Stages, _ float64) (Action, int) { return ActionNone, stages.Current() }

// Captures is always false in headless builds.
func (o *Overlay) Captures(int, int) bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
