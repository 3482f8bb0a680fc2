package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"scene-demo/internal/params"
	"scene-demo/internal/raycast"
)

// LightKind distinguishes the two light types the demo uses.
type LightKind int

const (
	LightAmbient LightKind = iota
	LightSpot
)

// Light is an ambient or spot light. Angle is the cone half-angle in radians; Penumbra is the
// fraction of the cone (0-1) over which the light fades out. Position/Target/Angle/Penumbra
// only apply to spot lights.
type Light struct {
	Name       string
	Kind       LightKind
	Color      params.Color
	Intensity  float32
	Angle      float32
	Penumbra   float32
	Position   mgl32.Vec3
	Target     mgl32.Vec3
	CastShadow bool
}

// Direction returns the unit vector from the light towards its target.
func (l *Light) Direction() mgl32.Vec3 {
	d := l.Target.Sub(l.Position)
	if d.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return d.Normalize()
}

// ConeCos returns cos of the outer and inner cone angles.
func (l *Light) ConeCos() (outer, inner float32) {
	return math32.Cos(l.Angle), math32.Cos(l.Angle * (1 - l.Penumbra))
}

// Attenuation returns the spot falloff (0-1) for a point p, using
// smoothstep(cosOuter, cosInner, cosθ) where θ is the angle between the light axis and p.
// The fragment shader in graphics evaluates the same expression.
func (l *Light) Attenuation(p mgl32.Vec3) float32 {
	if l.Kind != LightSpot {
		return 1
	}
	toP := p.Sub(l.Position)
	if toP.Len() == 0 {
		return 1
	}
	cosTheta := toP.Normalize().Dot(l.Direction())
	outer, inner := l.ConeCos()
	return smoothstep(outer, inner, cosTheta)
}

func smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := mgl32.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// helperRimPoints is the number of points on the drawn cone rim.
const helperRimPoints = 32

// SpotHelper is the wire cone drawn for a spot light: apex at the light, axis to the target,
// rim at the target distance with radius dist*tan(angle).
type SpotHelper struct {
	Apex   mgl32.Vec3
	Center mgl32.Vec3
	Rim    []mgl32.Vec3
	Color  params.Color
}

// NewSpotHelper returns a helper already matched to l.
func NewSpotHelper(l *Light) *SpotHelper {
	h := &SpotHelper{Rim: make([]mgl32.Vec3, helperRimPoints)}
	h.Update(l)
	return h
}

// Update recomputes the cone from the light's current position, target, angle and color.
func (h *SpotHelper) Update(l *Light) {
	axis := l.Target.Sub(l.Position)
	dist := axis.Len()
	dir := l.Direction()
	radius := dist * math32.Tan(l.Angle)

	// Any vector not parallel to dir gives a basis for the rim circle.
	ref := mgl32.Vec3{0, 1, 0}
	if math32.Abs(dir.Dot(ref)) > 0.99 {
		ref = mgl32.Vec3{1, 0, 0}
	}
	u := dir.Cross(ref).Normalize()
	v := dir.Cross(u)

	h.Apex = l.Position
	h.Center = l.Position.Add(dir.Mul(dist))
	h.Color = l.Color
	for i := range h.Rim {
		a := 2 * math32.Pi * float32(i) / float32(len(h.Rim))
		off := u.Mul(math32.Cos(a) * radius).Add(v.Mul(math32.Sin(a) * radius))
		h.Rim[i] = h.Center.Add(off)
	}
}

// Lines returns the helper as pickable segments: the axis, a spoke to every rim point and the rim loop.
func (h *SpotHelper) Lines() raycast.Lines {
	n := len(h.Rim)
	l := raycast.Lines{Threshold: HelperPickThreshold, Segments: make([][2]mgl32.Vec3, 0, 2*n+1)}
	l.Segments = append(l.Segments, [2]mgl32.Vec3{h.Apex, h.Center})
	for i, p := range h.Rim {
		l.Segments = append(l.Segments, [2]mgl32.Vec3{h.Apex, p}, [2]mgl32.Vec3{p, h.Rim[(i+1)%n]})
	}
	return l
}

// Fog is exponential-squared fog: factor = exp(-(density*distance)^2).
type Fog struct {
	Color   params.Color
	Density float32
}

// Factor returns how much of the surface color survives at distance d (1 = no fog).
func (f Fog) Factor(d float32) float32 {
	x := f.Density * d
	return mgl32.Clamp(math32.Exp(-x*x), 0, 1)
}
