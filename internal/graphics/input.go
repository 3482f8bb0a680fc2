package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/frame"
)

// Input turns raylib's polled input into session events. Call Poll once per frame before Tick.
// Over reports whether a screen point is covered by a 2D widget; drags and wheel there do not orbit.
type Input struct {
	Over func(x, y float32) bool

	last       rl.Vector2
	seen       bool
	panelDrag  bool
	lastWidth  float32
	lastHeight float32
}

// Poll posts resize, pointer-move, orbit drag and zoom events for this frame.
func (in *Input) Poll(s *frame.Session) {
	w, h := ScreenSize()
	if w != in.lastWidth || h != in.lastHeight || rl.IsWindowResized() {
		in.lastWidth, in.lastHeight = w, h
		s.Post(frame.Resized{Width: w, Height: h})
	}

	m := rl.GetMousePosition()
	if !in.seen || m != in.last {
		in.seen = true
		in.last = m
		s.Post(frame.PointerMoved{X: m.X, Y: m.Y})
	}

	over := in.Over != nil && in.Over(m.X, m.Y)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		in.panelDrag = over
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) && !in.panelDrag {
		if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
			s.Post(frame.OrbitDragged{DX: d.X, DY: d.Y})
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !over {
		s.Post(frame.OrbitZoomed{Notches: wheel})
	}
}
