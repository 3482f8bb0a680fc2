package frame

import (
	"strings"

	"github.com/chewxy/math32"

	"scene-demo/internal/camera"
	"scene-demo/internal/params"
	"scene-demo/internal/pointer"
	"scene-demo/internal/raycast"
	"scene-demo/internal/scene"
)

// Amplitude is the peak height of the sphere's bounce.
const Amplitude = 10

// BounceHeight returns the sphere height for a clock step: Amplitude * |sin(step)|, always in [0, Amplitude].
func BounceHeight(step float32) float32 {
	return Amplitude * math32.Abs(math32.Sin(step))
}

// Clock is the animation step counter. It only moves forward by the speed given each tick.
type Clock struct {
	Step float32
}

// Advance adds speed to the step and returns the new step.
func (c *Clock) Advance(speed float32) float32 {
	if speed > 0 {
		c.Step += speed
	}
	return c.Step
}

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width, Height float32
}

// Aspect returns width/height, or 1 for an empty viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return v.Width / v.Height
}

// Logger is the subset of logger.Logger the loop needs.
type Logger interface {
	Log(line string)
}

// Session owns all per-run state the loop, the panel and the pointer share. Everything in it is
// touched from one thread; input arrives through Post.
type Session struct {
	Scene    *scene.Scene
	Panel    *params.Panel
	Pointer  *pointer.Tracker
	Camera   camera.Camera
	Orbit    *camera.Orbit
	Clock    Clock
	Viewport Viewport

	events []Event
}

// NewSession wires the scene, the panel and a camera into a session with an empty event queue.
func NewSession(sc *scene.Scene, pn *params.Panel, cam camera.Camera, vp Viewport) *Session {
	return &Session{
		Scene:    sc,
		Panel:    pn,
		Pointer:  pointer.New(),
		Camera:   cam,
		Orbit:    camera.NewOrbit(cam),
		Viewport: vp,
	}
}

// Post queues an event for the next tick.
func (s *Session) Post(ev Event) {
	s.events = append(s.events, ev)
}

// Pending returns the number of queued events.
func (s *Session) Pending() int {
	return len(s.events)
}

// Renderer draws the scene for one frame. hits is the current pointer hit list, nearest-first.
type Renderer interface {
	Render(s *Session, hits []raycast.Hit)
}

// Loop runs one tick per display refresh. Renderer and Log may be nil (headless use).
type Loop struct {
	Session  *Session
	Renderer Renderer
	Log      Logger

	lastHits string
}

// NewLoop returns a loop for s that renders with r.
func NewLoop(s *Session, r Renderer, log Logger) *Loop {
	return &Loop{Session: s, Renderer: r, Log: log}
}

// Tick applies queued input, advances the animation, updates the spot light, casts the pointer ray
// and renders, in that order. It returns the hit list (nearest-first, empty when nothing is hit).
func (l *Loop) Tick() []raycast.Hit {
	s := l.Session
	l.drain()

	step := s.Clock.Advance(s.Panel.Float(scene.ParamSpeed))
	s.Scene.Sphere.Position[1] = BounceHeight(step)

	spot := s.Scene.Spot
	spot.Angle = s.Panel.Float(scene.ParamAngle)
	spot.Penumbra = s.Panel.Float(scene.ParamPenumbra)
	spot.Intensity = s.Panel.Float(scene.ParamIntensity)
	s.Scene.SpotHelper.Update(spot)

	x, y := s.Pointer.NDC()
	ray := s.Camera.Ray(x, y, s.Viewport.Aspect())
	hits := raycast.Intersect(ray, s.Scene.Targets())
	l.logHits(hits)

	if l.Renderer != nil {
		l.Renderer.Render(s, hits)
	}
	return hits
}

func (l *Loop) drain() {
	s := l.Session
	events := s.events
	s.events = nil
	for _, ev := range events {
		if err := ev.apply(s); err != nil && l.Log != nil {
			l.Log.Log("input: " + err.Error())
		}
	}
}

// logHits writes the hit names only when they differ from the previous tick, not every frame,
// so an idle pointer does not grow the log file. Tick still returns the full list each frame.
func (l *Loop) logHits(hits []raycast.Hit) {
	names := make([]string, len(hits))
	for i, h := range hits {
		names[i] = h.Name
	}
	joined := strings.Join(names, ",")
	if joined == l.lastHits {
		return
	}
	l.lastHits = joined
	if l.Log == nil {
		return
	}
	if joined == "" {
		l.Log.Log("pointer: no hits")
		return
	}
	l.Log.Log("pointer: " + joined)
}
