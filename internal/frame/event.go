package frame

import (
	"fmt"

	"scene-demo/internal/params"
)

// Event is an input message posted by the window or the panel and applied by the loop
// at the start of the next tick, in arrival order.
type Event interface {
	apply(s *Session) error
}

// PointerMoved carries a pointer position in client pixels.
type PointerMoved struct {
	X, Y float32
}

func (e PointerMoved) apply(s *Session) error {
	s.Pointer.Move(e.X, e.Y, s.Viewport.Width, s.Viewport.Height)
	return nil
}

// Resized carries a new viewport size in pixels. Non-positive sizes are ignored.
type Resized struct {
	Width, Height float32
}

func (e Resized) apply(s *Session) error {
	if e.Width <= 0 || e.Height <= 0 {
		return nil
	}
	s.Viewport = Viewport{Width: e.Width, Height: e.Height}
	return nil
}

// OrbitDragged rotates the camera around its target by a drag of (DX, DY) pixels.
type OrbitDragged struct {
	DX, DY float32
}

func (e OrbitDragged) apply(s *Session) error {
	s.Orbit.Rotate(e.DX, e.DY)
	s.Orbit.Apply(&s.Camera)
	return nil
}

// OrbitZoomed moves the camera towards (positive) or away from its target.
type OrbitZoomed struct {
	Notches float32
}

func (e OrbitZoomed) apply(s *Session) error {
	s.Orbit.Zoom(e.Notches)
	s.Orbit.Apply(&s.Camera)
	return nil
}

// ParamFloat sets a float parameter from a panel slider.
type ParamFloat struct {
	Name  string
	Value float32
}

func (e ParamFloat) apply(s *Session) error {
	p, err := s.param(e.Name, params.KindFloat)
	if err != nil {
		return err
	}
	p.SetFloat(e.Value)
	return nil
}

// ParamBool sets a bool parameter from a panel checkbox.
type ParamBool struct {
	Name  string
	Value bool
}

func (e ParamBool) apply(s *Session) error {
	p, err := s.param(e.Name, params.KindBool)
	if err != nil {
		return err
	}
	p.SetBool(e.Value)
	return nil
}

// ParamColor sets a color parameter from the panel's color sliders.
type ParamColor struct {
	Name  string
	Value params.Color
}

func (e ParamColor) apply(s *Session) error {
	p, err := s.param(e.Name, params.KindColor)
	if err != nil {
		return err
	}
	p.SetColor(e.Value)
	return nil
}

// ParamText sets any parameter from its textual form (config overrides, scripted input).
type ParamText struct {
	Name, Text string
}

func (e ParamText) apply(s *Session) error {
	return s.Panel.Set(e.Name, e.Text)
}

func (s *Session) param(name string, kind params.Kind) (*params.Param, error) {
	p, ok := s.Panel.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", params.ErrUnknownParam, name)
	}
	if p.Kind != kind {
		return nil, fmt.Errorf("%w: %s is a %s, not a %s", params.ErrBadValue, name, p.Kind, kind)
	}
	return p, nil
}
