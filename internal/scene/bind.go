package scene

import "scene-demo/internal/params"

// Parameter names shown on the panel.
const (
	ParamSphereColor = "sphereColor"
	ParamWireframe   = "wireFrame"
	ParamSpeed       = "speed"
	ParamAngle       = "angle"
	ParamPenumbra    = "penumbra"
	ParamIntensity   = "intensity"
)

// Settings are the initial panel values.
type Settings struct {
	SphereColor params.Color
	Wireframe   bool
	Speed       float32
	Angle       float32
	Penumbra    float32
	Intensity   float32
}

// DefaultSettings returns the demo's initial panel values.
func DefaultSettings() Settings {
	return Settings{
		SphereColor: params.RGB(0xff, 0xea, 0x00),
		Wireframe:   false,
		Speed:       0.01,
		Angle:       0.2,
		Penumbra:    0,
		Intensity:   1,
	}
}

// Bind registers the demo parameters on pn. sphereColor and wireFrame write through to the sphere's
// material as soon as they change. speed, angle, penumbra and intensity have no callbacks; the frame
// loop reads them every tick.
//
// The sphere keeps its build color until sphereColor is first changed, so the panel can show a color
// the sphere does not have yet.
func Bind(pn *params.Panel, s *Scene, st Settings) {
	pn.AddColor(ParamSphereColor, st.SphereColor).OnChange(func(p *params.Param) {
		s.Sphere.Material.Color = p.Color()
	})
	pn.AddBool(ParamWireframe, st.Wireframe).OnChange(func(p *params.Param) {
		s.Sphere.Material.Wireframe = p.Bool()
	})
	s.Sphere.Material.Wireframe = st.Wireframe
	pn.AddFloat(ParamSpeed, st.Speed, 0, 0.1)
	pn.AddFloat(ParamAngle, st.Angle, 0, 1)
	pn.AddFloat(ParamPenumbra, st.Penumbra, 0, 1)
	pn.AddFloat(ParamIntensity, st.Intensity, 0, 1)
}
