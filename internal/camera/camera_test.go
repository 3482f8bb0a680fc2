package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-3

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], tol, "component %d of %v", i, got)
	}
}

func TestCenterRayPointsAtTarget(t *testing.T) {
	c := Default()
	r := c.Ray(0, 0, 16.0/9.0)
	assertVec(t, c.Position, r.Origin)
	assertVec(t, c.Target.Sub(c.Position).Normalize(), r.Dir)
	assert.InDelta(t, 1, r.Dir.Len(), 1e-5)
}

func TestRayFollowsNDC(t *testing.T) {
	c := Camera{
		Position: mgl32.Vec3{0, 0, 10},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		Fovy:     90,
		Near:     0.1,
		Far:      100,
	}
	// With a 90° fov and square aspect, NDC (1, 0) is 45° to the right.
	r := c.Ray(1, 0, 1)
	assertVec(t, mgl32.Vec3{1, 0, -1}.Normalize(), r.Dir)

	// Positive NDC y looks up; y = 2 (the tracker's centre value) tilts further up.
	up := c.Ray(0, 1, 1)
	assert.Greater(t, up.Dir.Y(), float32(0))
	higher := c.Ray(0, 2, 1)
	assert.Greater(t, higher.Dir.Y(), up.Dir.Y())
}

func TestOrbitRoundTrip(t *testing.T) {
	c := Default()
	o := NewOrbit(c)
	assertVec(t, c.Position, o.Position())
	assert.InDelta(t, c.Position.Len(), o.Radius, tol)
}

func TestOrbitRotateKeepsRadius(t *testing.T) {
	c := Default()
	o := NewOrbit(c)
	r := o.Radius
	o.Rotate(120, -40)
	o.Apply(&c)
	assert.InDelta(t, r, c.Position.Sub(c.Target).Len(), tol)
}

func TestOrbitClamps(t *testing.T) {
	o := NewOrbit(Default())
	o.Rotate(0, 1e6)
	assert.Greater(t, o.Polar, float32(0))
	o.Rotate(0, -1e6)
	assert.Less(t, o.Polar, float32(3.1416))

	o.Zoom(1000)
	assert.Equal(t, float32(minRadius), o.Radius)
	o.Zoom(-1000)
	assert.Equal(t, o.MaxRadius, o.Radius)
}
