package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"scene-demo/internal/params"
	"scene-demo/internal/raycast"
)

// Texture keys used by the textured cube and the background. graphics maps them to image files.
const (
	TextureNebula = "nebula"
	TextureStars  = "stars"
)

// Object names, also reported in raycast hits.
const (
	NameCube         = "cube"
	NamePlane        = "plane"
	NameSphere       = "sphere"
	NameTexturedCube = "texturedCube"

	NameGrid       = "grid"
	NameAxes       = "axes"
	NameSpotHelper = "spotLightHelper"
)

// HelperPickThreshold is how close (world units) a ray must pass to a helper line to hit it.
const HelperPickThreshold = 1

const (
	gridSize      = 30
	gridDivisions = 30
	axesSize      = 5
	sphereRadius  = 4
	sphereSegs    = 50
)

// Grid is the helper grid on the XZ plane, Size wide with Divisions cells per side.
type Grid struct {
	Size      float32
	Divisions int
}

// Scene is the fixed catalog of demo objects and lights. It is built once by New; objects and lights
// are never added or removed afterwards, only their properties change.
type Scene struct {
	Objects []*Object

	Cube         *Object
	Plane        *Object
	Sphere       *Object
	TexturedCube *Object

	Ambient    *Light
	Spot       *Light
	SpotHelper *SpotHelper

	Grid     Grid
	AxesSize float32
	Fog      Fog

	// Background holds the cubemap texture keys in +X, -X, +Y, -Y, +Z, -Z order.
	Background [FaceCount]string

	GridVisible bool
	// PickHelpers adds the grid, axes and spot helper lines to the pick targets.
	PickHelpers bool
}

// New builds the demo catalog: a small cube at the origin, a 30x30 double-sided ground plane,
// a blue sphere of radius 4 at (-10, 10, 0), a 4x4x4 cube textured per face at (0, 15, 10),
// a dim ambient light and a white spot light at (-100, 100, 0) aimed at the origin.
func New() *Scene {
	s := &Scene{
		Cube: &Object{
			Name:          NameCube,
			Shape:         ShapeBox,
			Size:          mgl32.Vec3{1, 1, 1},
			Material:      Material{Color: params.RGB(0xa0, 0xa8, 0x32)},
			ReceiveShadow: true,
		},
		Plane: &Object{
			Name:          NamePlane,
			Shape:         ShapePlane,
			Size:          mgl32.Vec3{30, 30, 0},
			Rotation:      mgl32.Vec3{-0.5 * math32.Pi, 0, 0},
			Material:      Material{Color: params.RGB(0xff, 0xff, 0xff), DoubleSided: true},
			ReceiveShadow: true,
		},
		Sphere: &Object{
			Name:       NameSphere,
			Shape:      ShapeSphere,
			Size:       mgl32.Vec3{sphereRadius, 0, 0},
			Segments:   sphereSegs,
			Position:   mgl32.Vec3{-10, 10, 0},
			Material:   Material{Color: params.RGB(0x00, 0x00, 0xff)},
			CastShadow: true,
		},
		TexturedCube: &Object{
			Name:     NameTexturedCube,
			Shape:    ShapeBox,
			Size:     mgl32.Vec3{4, 4, 4},
			Position: mgl32.Vec3{0, 15, 10},
			Material: Material{
				Color: params.RGB(0xff, 0xff, 0xff),
				Faces: [FaceCount]string{
					TextureStars, TextureStars, TextureNebula,
					TextureStars, TextureNebula, TextureStars,
				},
			},
		},
		Ambient: &Light{
			Name:      "ambient",
			Kind:      LightAmbient,
			Color:     params.RGB(0x33, 0x33, 0x33),
			Intensity: 1,
		},
		Spot: &Light{
			Name:       "spot",
			Kind:       LightSpot,
			Color:      params.RGB(0xff, 0xff, 0xff),
			Intensity:  1,
			Angle:      0.2,
			Position:   mgl32.Vec3{-100, 100, 0},
			CastShadow: true,
		},
		Grid:     Grid{Size: gridSize, Divisions: gridDivisions},
		AxesSize: axesSize,
		Fog:      Fog{Color: params.RGB(0xff, 0xff, 0xff), Density: 0.01},
		Background: [FaceCount]string{
			TextureNebula, TextureNebula,
			TextureStars, TextureStars, TextureStars, TextureStars,
		},
		GridVisible: true,
	}
	s.Objects = []*Object{s.Cube, s.Plane, s.Sphere, s.TexturedCube}
	s.SpotHelper = NewSpotHelper(s.Spot)
	return s
}

// Object returns the object with the given name.
func (s *Scene) Object(name string) (*Object, bool) {
	for _, o := range s.Objects {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// Targets returns the pickable shapes of all objects at their current positions, followed by the
// helper lines when PickHelpers is set. A hidden grid is never picked.
func (s *Scene) Targets() []raycast.Target {
	out := make([]raycast.Target, 0, len(s.Objects)+3)
	for _, o := range s.Objects {
		out = append(out, raycast.Target{Name: o.Name, Shape: o.Pick()})
	}
	if !s.PickHelpers {
		return out
	}
	if s.GridVisible {
		out = append(out, raycast.Target{Name: NameGrid, Shape: s.Grid.Lines()})
	}
	out = append(out,
		raycast.Target{Name: NameAxes, Shape: axesLines(s.AxesSize)},
		raycast.Target{Name: NameSpotHelper, Shape: s.SpotHelper.Lines()},
	)
	return out
}

// Lines returns the grid as pickable segments on the XZ plane.
func (g Grid) Lines() raycast.Lines {
	l := raycast.Lines{Threshold: HelperPickThreshold}
	if g.Divisions <= 0 {
		return l
	}
	half := g.Size / 2
	step := g.Size / float32(g.Divisions)
	for i := 0; i <= g.Divisions; i++ {
		k := -half + float32(i)*step
		l.Segments = append(l.Segments,
			[2]mgl32.Vec3{{k, 0, -half}, {k, 0, half}},
			[2]mgl32.Vec3{{-half, 0, k}, {half, 0, k}},
		)
	}
	return l
}

func axesLines(size float32) raycast.Lines {
	return raycast.Lines{
		Threshold: HelperPickThreshold,
		Segments: [][2]mgl32.Vec3{
			{{}, {size, 0, 0}},
			{{}, {0, size, 0}},
			{{}, {0, 0, size}},
		},
	}
}

// TextureKeys returns every distinct texture key the scene references, in first-use order.
func (s *Scene) TextureKeys() []string {
	seen := make(map[string]bool)
	var keys []string
	add := func(k string) {
		if k != "" && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, k := range s.Background {
		add(k)
	}
	for _, o := range s.Objects {
		for _, k := range o.Material.Faces {
			add(k)
		}
	}
	return keys
}
