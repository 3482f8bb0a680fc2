package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/scene"
)

const axisLineAlpha = 220

var (
	axisX = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY = rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ = rl.NewColor(80, 80, 220, axisLineAlpha)
)

// drawAxes draws X (red), Y (green) and Z (blue) from the origin out to size.
func drawAxes(size float32) {
	origin := rl.NewVector3(0, 0, 0)
	rl.DrawLine3D(origin, rl.NewVector3(size, 0, 0), axisX)
	rl.DrawLine3D(origin, rl.NewVector3(0, size, 0), axisY)
	rl.DrawLine3D(origin, rl.NewVector3(0, 0, size), axisZ)
}

// drawGrid draws the helper grid on the XZ plane (Y=0).
func drawGrid(g scene.Grid) {
	if g.Divisions <= 0 {
		return
	}
	rl.DrawGrid(int32(g.Divisions), g.Size/float32(g.Divisions))
}

// helperSpokes is how many rim points get a line back to the apex.
const helperSpokes = 4

// drawSpotHelper draws the spot light cone: axis, a few spokes and the rim circle.
func drawSpotHelper(h *scene.SpotHelper) {
	c := rgba(h.Color)
	apex := vec3(h.Apex)
	rl.DrawLine3D(apex, vec3(h.Center), c)
	n := len(h.Rim)
	if n == 0 {
		return
	}
	step := max(n/helperSpokes, 1)
	for i := 0; i < n; i += step {
		rl.DrawLine3D(apex, vec3(h.Rim[i]), c)
	}
	for i := range h.Rim {
		rl.DrawLine3D(vec3(h.Rim[i]), vec3(h.Rim[(i+1)%n]), c)
	}
}
