//go:build !ebiten

package ui

import "voxfield/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD() *HUD { return nil }

// Toggle is a no-op in the headless build.
func (h *HUD) Toggle() {}

// Update is a no-op in the headless build.
func (h *HUD) Update(core.ParameterSnapshot, float64, int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
