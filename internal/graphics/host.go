package graphics

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/frame"
	"scene-demo/internal/raycast"
)

// Overlay draws 2D content (panel, debug text) on top of the 3D scene.
type Overlay interface {
	Draw(s *frame.Session, hits []raycast.Hit)
}

// Host renders a session with raylib. It implements frame.Renderer.
type Host struct {
	registry *Registry
	textures *Textures
	overlays []Overlay
}

// NewHost returns a host that will upload images on the first frame and draw overlays in order.
func NewHost(images map[string]*image.RGBA, overlays ...Overlay) *Host {
	return &Host{
		registry: NewRegistry(),
		textures: NewTextures(images),
		overlays: overlays,
	}
}

// Render draws one frame: background, lit objects, helpers, then overlays.
func (h *Host) Render(s *frame.Session, hits []raycast.Hit) {
	textures := h.textures.ensureLoaded()
	cam := camera3D(s.Camera)
	sc := s.Scene

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.BeginMode3D(cam)
	drawSkybox(h.registry, sc, cam, textures)
	h.registry.SetLights(sc, cam.Position)
	for _, o := range sc.Objects {
		h.registry.DrawObject(o, textures)
	}
	if sc.GridVisible {
		drawGrid(sc.Grid)
	}
	drawAxes(sc.AxesSize)
	drawSpotHelper(sc.SpotHelper)
	rl.EndMode3D()

	for _, o := range h.overlays {
		o.Draw(s, hits)
	}
	rl.EndDrawing()
}

// Close frees GPU resources. Call before the window closes.
func (h *Host) Close() {
	h.registry.Unload()
	h.textures.Unload()
}
