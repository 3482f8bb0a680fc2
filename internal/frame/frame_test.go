package frame

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-demo/internal/camera"
	"scene-demo/internal/params"
	"scene-demo/internal/raycast"
	"scene-demo/internal/scene"
)

type recordRenderer struct {
	frames int
	hits   [][]raycast.Hit
}

func (r *recordRenderer) Render(_ *Session, hits []raycast.Hit) {
	r.frames++
	r.hits = append(r.hits, hits)
}

type recordLog struct {
	lines []string
}

func (l *recordLog) Log(line string) { l.lines = append(l.lines, line) }

func newLoop(t *testing.T) (*Loop, *recordRenderer, *recordLog) {
	t.Helper()
	sc := scene.New()
	pn := params.New()
	scene.Bind(pn, sc, scene.DefaultSettings())
	s := NewSession(sc, pn, camera.Default(), Viewport{Width: 1280, Height: 720})
	r := &recordRenderer{}
	log := &recordLog{}
	return NewLoop(s, r, log), r, log
}

func TestTenFramesAtSpeed005(t *testing.T) {
	l, r, _ := newLoop(t)
	l.Session.Post(ParamFloat{Name: scene.ParamSpeed, Value: 0.05})
	for i := 0; i < 10; i++ {
		l.Tick()
	}
	assert.InDelta(t, 4.794, l.Session.Scene.Sphere.Position.Y(), 1e-3)
	assert.Equal(t, 10, r.frames)
}

func TestBounceMatchesClosedForm(t *testing.T) {
	for _, speed := range []float32{0, 0.003, 0.01, 0.05, 0.1} {
		l, _, _ := newLoop(t)
		p, _ := l.Session.Panel.Get(scene.ParamSpeed)
		p.SetFloat(speed)
		for n := 1; n <= 200; n++ {
			l.Tick()
			h := l.Session.Scene.Sphere.Position.Y()
			want := 10 * math.Abs(math.Sin(float64(n)*float64(speed)))
			require.InDelta(t, want, h, 1e-2, "speed %v frame %d", speed, n)
			require.GreaterOrEqual(t, h, float32(0))
			require.LessOrEqual(t, h, float32(Amplitude))
		}
	}
}

func TestSpotCopiesPanelValues(t *testing.T) {
	l, _, _ := newLoop(t)
	s := l.Session
	s.Post(ParamFloat{Name: scene.ParamAngle, Value: 0.63})
	s.Post(ParamFloat{Name: scene.ParamPenumbra, Value: 0.27})
	s.Post(ParamFloat{Name: scene.ParamIntensity, Value: 0.4})
	l.Tick()

	assert.Equal(t, s.Panel.Float(scene.ParamAngle), s.Scene.Spot.Angle)
	assert.Equal(t, s.Panel.Float(scene.ParamPenumbra), s.Scene.Spot.Penumbra)
	assert.Equal(t, s.Panel.Float(scene.ParamIntensity), s.Scene.Spot.Intensity)
	assert.Equal(t, float32(0.63), s.Scene.Spot.Angle)

	// Helper rim follows the new angle.
	h := s.Scene.SpotHelper
	dist := s.Scene.Spot.Target.Sub(s.Scene.Spot.Position).Len()
	assert.InDelta(t, dist*float32(math.Tan(0.63)), h.Rim[0].Sub(h.Center).Len(), 1e-2)
}

func TestEventsAppliedBeforeFrameInOrder(t *testing.T) {
	l, _, _ := newLoop(t)
	s := l.Session
	s.Post(PointerMoved{X: 100, Y: 100})
	s.Post(PointerMoved{X: 640, Y: 0})
	assert.Equal(t, 2, s.Pending())
	l.Tick()
	assert.Equal(t, 0, s.Pending())
	x, y := s.Pointer.NDC()
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(1), y)
}

func TestResizeChangesPointerScale(t *testing.T) {
	l, _, _ := newLoop(t)
	s := l.Session
	s.Post(Resized{Width: 200, Height: 100})
	s.Post(PointerMoved{X: 200, Y: 50})
	s.Post(Resized{Width: 0, Height: 0})
	l.Tick()
	assert.Equal(t, Viewport{Width: 200, Height: 100}, s.Viewport)
	assert.Equal(t, float32(1), s.Pointer.X)
	assert.Equal(t, float32(2), s.Pointer.Y)
}

func TestWireframeEventReachesSphere(t *testing.T) {
	l, _, _ := newLoop(t)
	s := l.Session
	s.Post(ParamBool{Name: scene.ParamWireframe, Value: true})
	s.Post(ParamColor{Name: scene.ParamSphereColor, Value: params.RGB(1, 2, 3)})
	l.Tick()
	assert.True(t, s.Scene.Sphere.Material.Wireframe)
	assert.False(t, s.Scene.Cube.Material.Wireframe)
	assert.Equal(t, params.RGB(1, 2, 3), s.Scene.Sphere.Material.Color)
}

func TestBadEventsAreLogged(t *testing.T) {
	l, _, log := newLoop(t)
	s := l.Session
	s.Post(ParamFloat{Name: "missing", Value: 1})
	s.Post(ParamBool{Name: scene.ParamSpeed, Value: true})
	s.Post(ParamText{Name: scene.ParamSpeed, Text: "0.07"})
	l.Tick()
	require.GreaterOrEqual(t, len(log.lines), 2)
	assert.Contains(t, log.lines[0], "unknown parameter")
	assert.Contains(t, log.lines[1], "bad parameter value")
	assert.InDelta(t, 0.07, s.Panel.Float(scene.ParamSpeed), 1e-6)
}

func TestPointerRayHitsNearestFirst(t *testing.T) {
	l, r, log := newLoop(t)
	s := l.Session
	// Aim straight down at the cube at the origin from above, bypassing the tracker's +1 offset.
	s.Camera = camera.Camera{
		Position: mgl32.Vec3{0, 40, 0.001},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		Fovy:     45, Near: 0.1, Far: 1000,
	}
	hits := l.Tick()
	require.Len(t, hits, 2)
	assert.Equal(t, scene.NameCube, hits[0].Name)
	assert.Equal(t, scene.NamePlane, hits[1].Name)
	assert.Less(t, hits[0].Distance, hits[1].Distance)
	assert.Equal(t, hits, r.hits[0])
	assert.Equal(t, []string{"pointer: cube,plane"}, log.lines)

	l.Tick()
	assert.Len(t, log.lines, 1, "unchanged hits are not logged again")
}

func TestDefaultPointerMissesEverything(t *testing.T) {
	l, _, log := newLoop(t)
	s := l.Session
	// Centre of the window maps to NDC y = 2, which aims above the scene from the default camera.
	s.Post(PointerMoved{X: 640, Y: 360})
	hits := l.Tick()
	assert.NotNil(t, hits)
	assert.Empty(t, hits)
	assert.Empty(t, log.lines)
}

func TestOrbitEventsMoveCamera(t *testing.T) {
	l, _, _ := newLoop(t)
	s := l.Session
	before := s.Camera.Position
	s.Post(OrbitDragged{DX: 100})
	s.Post(OrbitZoomed{Notches: 2})
	l.Tick()
	assert.NotEqual(t, before, s.Camera.Position)
	assert.Less(t, s.Camera.Position.Len(), before.Len())
}
