//go:build !ebiten

package ui

import "conway/internal/runner"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*runner.Runner, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(bool, bool) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
