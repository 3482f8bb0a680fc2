package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"scene-demo/internal/raycast"
)

// Camera is a perspective camera looking from Position at Target. Fovy is the vertical field of view in degrees.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Fovy     float32
	Near     float32
	Far      float32
}

// Default returns the demo camera: (10, 30, 30) looking at the origin, 45° fov, near 0.1, far 1000.
func Default() Camera {
	return Camera{
		Position: mgl32.Vec3{10, 30, 30},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		Fovy:     45,
		Near:     0.1,
		Far:      1000,
	}
}

// Basis returns the camera's unit forward, right and up vectors.
func (c Camera) Basis() (forward, right, up mgl32.Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

// Ray builds the picking ray through the NDC point (x, y) for the given width/height aspect.
// The ray starts at the camera and passes through the matching point on the view plane at distance 1,
// so NDC values outside [-1, 1] still give a valid ray.
func (c Camera) Ray(x, y, aspect float32) raycast.Ray {
	if aspect <= 0 {
		aspect = 1
	}
	forward, right, up := c.Basis()
	halfH := math32.Tan(mgl32.DegToRad(c.Fovy) / 2)
	halfW := halfH * aspect
	dir := forward.Add(right.Mul(x * halfW)).Add(up.Mul(y * halfH))
	return raycast.Ray{Origin: c.Position, Dir: dir.Normalize()}
}
