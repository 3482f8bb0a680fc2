package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"scene-demo/internal/camera"
	"scene-demo/internal/params"
)

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func rgba(c params.Color) color.RGBA {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// rgbFloats returns the color as 0-1 floats for shader uniforms.
func rgbFloats(c params.Color) [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// matrix converts a column-major mgl32 matrix; raylib's Mi fields are also column-major indices.
func matrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func camera3D(c camera.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(c.Position),
		Target:     vec3(c.Target),
		Up:         vec3(c.Up),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
