package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// polarLimit keeps the camera off the poles, where LookAt with a fixed up vector degenerates.
	polarLimit  = 0.01
	rotateSpeed = 0.005 // radians per pixel dragged
	zoomStep    = 0.95  // radius factor per wheel notch
	minRadius   = 1
)

// Orbit rotates a camera around its target on a sphere. Drag rotates, wheel zooms.
// It stores spherical coordinates: Polar from +Y, Azimuth around Y measured from +Z.
type Orbit struct {
	Target    mgl32.Vec3
	Radius    float32
	Azimuth   float32
	Polar     float32
	MaxRadius float32
}

// NewOrbit derives the orbit state from the camera's current position and target.
func NewOrbit(c Camera) *Orbit {
	off := c.Position.Sub(c.Target)
	r := off.Len()
	o := &Orbit{Target: c.Target, Radius: r, MaxRadius: c.Far / 2}
	if r > 0 {
		o.Polar = math32.Acos(mgl32.Clamp(off.Y()/r, -1, 1))
		o.Azimuth = math32.Atan2(off.X(), off.Z())
	}
	if o.MaxRadius < minRadius {
		o.MaxRadius = minRadius
	}
	o.clamp()
	return o
}

// Rotate applies a pointer drag of (dx, dy) pixels.
func (o *Orbit) Rotate(dx, dy float32) {
	o.Azimuth -= dx * rotateSpeed
	o.Polar -= dy * rotateSpeed
	o.clamp()
}

// Zoom applies wheel notches; positive moves closer.
func (o *Orbit) Zoom(notches float32) {
	o.Radius *= math32.Pow(zoomStep, notches)
	o.clamp()
}

func (o *Orbit) clamp() {
	o.Polar = mgl32.Clamp(o.Polar, polarLimit, math32.Pi-polarLimit)
	o.Radius = mgl32.Clamp(o.Radius, minRadius, o.MaxRadius)
}

// Position returns the camera position implied by the orbit state.
func (o *Orbit) Position() mgl32.Vec3 {
	sp := math32.Sin(o.Polar)
	return o.Target.Add(mgl32.Vec3{
		o.Radius * sp * math32.Sin(o.Azimuth),
		o.Radius * math32.Cos(o.Polar),
		o.Radius * sp * math32.Cos(o.Azimuth),
	})
}

// Apply writes the orbit position and target into c.
func (o *Orbit) Apply(c *Camera) {
	c.Position = o.Position()
	c.Target = o.Target
}
