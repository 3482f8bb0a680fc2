package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"scene-demo/internal/params"
	"scene-demo/internal/raycast"
)

// Shape is the primitive a SceneObject is built from.
type Shape int

const (
	ShapeBox Shape = iota
	ShapePlane
	ShapeSphere
)

// Face indexes follow the cubemap order +X, -X, +Y, -Y, +Z, -Z.
const (
	FacePosX = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
	FaceCount
)

// Material is the surface of an object. Faces, when any entry is set, textures a box per face
// with the named texture key and ignores Color, like an unlit basic material.
type Material struct {
	Color       params.Color
	Wireframe   bool
	DoubleSided bool
	Faces       [FaceCount]string
}

// Textured reports whether any face has a texture key.
func (m Material) Textured() bool {
	for _, f := range m.Faces {
		if f != "" {
			return true
		}
	}
	return false
}

// Object is one renderable mesh in the catalog.
// Size is (w, h, d) for boxes, (w, d, 0) for planes and (radius, 0, 0) for spheres.
// Rotation is Euler XYZ in radians. Planes are generated in the XY plane facing +Z, as in
// the usual engine convention, and laid flat by rotating -π/2 around X.
type Object struct {
	Name          string
	Shape         Shape
	Size          mgl32.Vec3
	Segments      int // sphere rings and slices
	Position      mgl32.Vec3
	Rotation      mgl32.Vec3
	Material      Material
	CastShadow    bool
	ReceiveShadow bool
}

// Transform returns the object's model matrix (rotate X, Y, Z then translate).
func (o *Object) Transform() mgl32.Mat4 {
	rot := mgl32.AnglesToQuat(o.Rotation[0], o.Rotation[1], o.Rotation[2], mgl32.XYZ).Mat4()
	return mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2]).Mul4(rot)
}

// Pick returns the raycast shape matching the object's current transform.
// Boxes are treated as axis-aligned; none of the demo boxes are rotated.
func (o *Object) Pick() raycast.Shape {
	switch o.Shape {
	case ShapeSphere:
		return raycast.Sphere{Center: o.Position, Radius: o.Size[0]}
	case ShapeBox:
		return raycast.Box{Center: o.Position, Half: o.Size.Mul(0.5)}
	case ShapePlane:
		m := o.Transform()
		return raycast.Plane{
			Center:      o.Position,
			Normal:      m.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3().Normalize(),
			U:           m.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3().Normalize(),
			V:           m.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3().Normalize(),
			HalfU:       o.Size[0] / 2,
			HalfV:       o.Size[1] / 2,
			DoubleSided: o.Material.DoubleSided,
		}
	}
	return nil
}
