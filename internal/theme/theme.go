// Package theme holds the fixed colours of the voxel scene.
package theme

import (
	"image/color"

	"voxfield/internal/core"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// Background fills the scene behind the voxels and is the fog colour.
	Background = mustHex("#050505")
	// Teal is the accent used for subtitles, buttons and active progress bars.
	Teal = mustHex("#a9ddd3")
	// Bone is the body text colour.
	Bone = mustHex("#e8e3d5")
	// Inactive colours progress bars for stages not reached yet.
	Inactive = mustHex("#333333")
	// Initial is the colour every voxel starts with.
	Initial = mustHex("#ffffff")
)

// stages holds one reference colour per stage.
var stages = [core.StageCount]colorful.Color{
	mustHex("#444444"), // chaos: raw
	mustHex("#a9ddd3"), // grid: brand teal
	mustHex("#e8e3d5"), // towers: brand bone
	mustHex("#ffffff"), // sphere: white
}

// mustHex parses a literal palette colour.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// For returns the theme colour of a stage. Out-of-range indices fall back to
// the chaos colour.
func For(stage int) colorful.Color {
	if stage < 0 || stage >= core.StageCount {
		return stages[core.StageChaos]
	}
	return stages[stage]
}

// RGBA converts a colour to an opaque color.RGBA, clamping out-of-gamut values.
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
