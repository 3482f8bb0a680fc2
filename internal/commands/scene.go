package commands

import (
	"fmt"
	"strings"

	"scene-demo/internal/frame"
	"scene-demo/internal/params"
)

// RegisterScene adds the console commands that inspect and edit a running session.
// Reads print straight to out; writes are posted as events so they apply on the next tick.
func RegisterScene(r *Registry, s *frame.Session, out frame.Logger) {
	r.Register("help", "help", nil, func([]string) error {
		for _, n := range r.Names() {
			out.Log("  " + r.Usage(n))
		}
		return nil
	})

	r.Register("list", "list", nil, func([]string) error {
		for _, p := range s.Panel.Params() {
			out.Log(describe(p))
		}
		return nil
	})

	r.Register("get", "get <param>", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("get: want 1 argument, got %d", len(args))
		}
		p, ok := s.Panel.Get(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", params.ErrUnknownParam, args[0])
		}
		out.Log(describe(p))
		return nil
	})

	r.Register("set", "set <param> <value>", nil, func(args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("set: want <param> <value>")
		}
		if _, ok := s.Panel.Get(args[0]); !ok {
			return fmt.Errorf("%w: %q", params.ErrUnknownParam, args[0])
		}
		s.Post(frame.ParamText{Name: args[0], Text: strings.Join(args[1:], " ")})
		return nil
	})

	camFlags := NewFlagSet("camera")
	zoom := camFlags.Float64("zoom", 0, "wheel notches to zoom by (positive zooms in)")
	rotate := camFlags.Float64("rotate", 0, "horizontal drag in pixels")
	r.Register("camera", "camera [-rotate px] [-zoom notches]", camFlags, func([]string) error {
		defer func() { *zoom, *rotate = 0, 0 }()
		if *rotate != 0 {
			s.Post(frame.OrbitDragged{DX: float32(*rotate)})
		}
		if *zoom != 0 {
			s.Post(frame.OrbitZoomed{Notches: float32(*zoom)})
		}
		p := s.Camera.Position
		out.Log(fmt.Sprintf("camera: position (%.2f, %.2f, %.2f) radius %.2f", p[0], p[1], p[2], s.Orbit.Radius))
		return nil
	})
}

func describe(p *params.Param) string {
	if p.Kind == params.KindFloat {
		return fmt.Sprintf("%s = %s [%g, %g]", p.Name, p.String(), p.Min, p.Max)
	}
	return fmt.Sprintf("%s = %s (%s)", p.Name, p.String(), p.Kind)
}
