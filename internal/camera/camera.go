// Package camera implements the slowly orbiting perspective camera that frames
// the voxel field.
package camera

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

// Config describes the starting pose and limits of the camera.
type Config struct {
	Eye         mgl64.Vec3 `yaml:"eye"`
	FovY        float64    `yaml:"fov"` // degrees
	Near        float64    `yaml:"near"`
	Far         float64    `yaml:"far"`
	MinDistance float64    `yaml:"min_distance"`
	MaxDistance float64    `yaml:"max_distance"`
	// AutoRotate uses the orbit-controls convention: 1.0 is one turn per 60 s.
	AutoRotate float64 `yaml:"auto_rotate"`
	FogNear    float64 `yaml:"fog_near"`
	FogFar     float64 `yaml:"fog_far"`
	TPS        int     `yaml:"-"`
}

// DefaultConfig returns the standard framing of the field.
func DefaultConfig() Config {
	return Config{
		Eye:         mgl64.Vec3{15, 10, 15},
		FovY:        35,
		Near:        0.1,
		Far:         200,
		MinDistance: 5,
		MaxDistance: 50,
		AutoRotate:  0.5,
		FogNear:     20,
		FogFar:      100,
		TPS:         60,
	}
}

const (
	zoomStep      = 0.95
	springFreq    = 6.0
	springDamping = 1.0
	polarMargin   = 0.01
)

// Camera orbits the origin. Distance changes are eased with a critically
// damped spring; auto-rotation follows wall-clock time.
type Camera struct {
	cfg Config

	azimuth float64
	polar   float64

	radius    float64
	radiusVel float64
	goal      float64
	spring    harmonica.Spring
}

// New places a camera at cfg.Eye looking at the origin.
func New(cfg Config) *Camera {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	r := cfg.Eye.Len()
	if r == 0 {
		r = cfg.MinDistance
	}
	c := &Camera{
		cfg:     cfg,
		azimuth: math.Atan2(cfg.Eye.X(), cfg.Eye.Z()),
		polar:   math.Acos(mgl64.Clamp(cfg.Eye.Y()/r, -1, 1)),
		spring:  harmonica.NewSpring(harmonica.FPS(cfg.TPS), springFreq, springDamping),
	}
	c.radius = c.clampDistance(r)
	c.goal = c.radius
	return c
}

// Update applies auto-rotation for dt seconds and eases the orbit distance.
func (c *Camera) Update(dt float64) {
	if dt > 0 {
		c.azimuth -= 2 * math.Pi / 60 * c.cfg.AutoRotate * dt
	}
	c.radius, c.radiusVel = c.spring.Update(c.radius, c.radiusVel, c.goal)
}

// Zoom moves the orbit distance goal; positive steps move closer.
func (c *Camera) Zoom(steps float64) {
	c.goal = c.clampDistance(c.goal * math.Pow(zoomStep, steps))
}

// Orbit turns the camera by the given azimuth and polar angles in radians.
func (c *Camera) Orbit(dAzimuth, dPolar float64) {
	c.azimuth -= dAzimuth
	c.polar = mgl64.Clamp(c.polar-dPolar, polarMargin, math.Pi-polarMargin)
}

// Distance returns the current orbit distance.
func (c *Camera) Distance() float64 { return c.radius }

// Goal returns the orbit distance the camera is easing toward.
func (c *Camera) Goal() float64 { return c.goal }

// Eye returns the current camera position.
func (c *Camera) Eye() mgl64.Vec3 {
	sinP := math.Sin(c.polar)
	return mgl64.Vec3{
		c.radius * sinP * math.Sin(c.azimuth),
		c.radius * math.Cos(c.polar),
		c.radius * sinP * math.Cos(c.azimuth),
	}
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye(), mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(c.cfg.FovY), aspect, c.cfg.Near, c.cfg.Far)
}

// Projector captures the camera for one frame on a w×h target.
func (c *Camera) Projector(w, h int) Projector {
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / float64(h)
	}
	return Projector{
		view:    c.View(),
		proj:    c.Projection(aspect),
		w:       float64(w),
		h:       float64(h),
		near:    c.cfg.Near,
		fogNear: c.cfg.FogNear,
		fogFar:  c.cfg.FogFar,
	}
}

func (c *Camera) clampDistance(d float64) float64 {
	return mgl64.Clamp(d, c.cfg.MinDistance, c.cfg.MaxDistance)
}

// Projector maps world points to screen pixels for a fixed camera pose.
type Projector struct {
	view, proj mgl64.Mat4
	w, h       float64
	near       float64

	fogNear, fogFar float64
}

// ToView transforms a world point into camera space.
func (p Projector) ToView(pt mgl64.Vec3) mgl64.Vec3 {
	return p.view.Mul4x1(pt.Vec4(1)).Vec3()
}

// ViewToScreen projects a camera-space point. depth is the distance along the
// view axis; ok is false for points behind the near plane.
func (p Projector) ViewToScreen(v mgl64.Vec3) (x, y, depth float64, ok bool) {
	depth = -v.Z()
	if depth < p.near {
		return 0, 0, depth, false
	}
	clip := p.proj.Mul4x1(v.Vec4(1))
	w := clip.W()
	if w == 0 {
		return 0, 0, depth, false
	}
	nx, ny := clip.X()/w, clip.Y()/w
	x = (nx + 1) * 0.5 * p.w
	y = (1 - ny) * 0.5 * p.h
	return x, y, depth, true
}

// Project maps a world point to screen pixels.
func (p Projector) Project(pt mgl64.Vec3) (x, y, depth float64, ok bool) {
	return p.ViewToScreen(p.ToView(pt))
}

// Fog returns how much of the background colour covers a point at depth.
func (p Projector) Fog(depth float64) float64 {
	if p.fogFar <= p.fogNear {
		return 0
	}
	return mgl64.Clamp((depth-p.fogNear)/(p.fogFar-p.fogNear), 0, 1)
}

// Size returns the target dimensions in pixels.
func (p Projector) Size() (w, h float64) { return p.w, p.h }
