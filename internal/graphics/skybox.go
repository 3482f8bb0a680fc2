package graphics

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/scene"
)

// skyboxScale is the edge of the background cube; it stays inside raylib's default far plane.
const skyboxScale = 800

// Textures uploads decoded images to the GPU on first use and keeps them by key.
// Upload is deferred to the first Draw so it runs after the window/OpenGL context exists.
type Textures struct {
	pending map[string]*image.RGBA
	loaded  map[string]rl.Texture2D
}

// NewTextures queues images for upload.
func NewTextures(images map[string]*image.RGBA) *Textures {
	pending := make(map[string]*image.RGBA, len(images))
	for k, v := range images {
		pending[k] = v
	}
	return &Textures{pending: pending, loaded: make(map[string]rl.Texture2D)}
}

// ensureLoaded uploads any pending images.
func (t *Textures) ensureLoaded() map[string]rl.Texture2D {
	for key, img := range t.pending {
		delete(t.pending, key)
		if img == nil {
			continue
		}
		rlImg := rl.NewImageFromImage(img)
		tex := rl.LoadTextureFromImage(rlImg)
		rl.UnloadImage(rlImg)
		if rl.IsTextureValid(tex) {
			t.loaded[key] = tex
		}
	}
	return t.loaded
}

// Unload frees every uploaded texture.
func (t *Textures) Unload() {
	for key, tex := range t.loaded {
		rl.UnloadTexture(tex)
		delete(t.loaded, key)
	}
}

// drawSkybox draws the background as a large cube of six inward-facing textured quads centred on the
// camera. Depth writes are off so everything else draws over it.
func drawSkybox(r *Registry, s *scene.Scene, cam rl.Camera3D, textures map[string]rl.Texture2D) {
	r.ensureFaceMesh()
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	trans := rl.MatrixTranslate(cam.Position.X, cam.Position.Y, cam.Position.Z)
	for i, key := range s.Background {
		tex, ok := textures[key]
		if !ok {
			continue
		}
		m := r.ensureTextured(key, tex)
		face := faceTransform(i, skyboxScale, skyboxScale, skyboxScale)
		rl.DrawMesh(r.faceMesh, m, rl.MatrixMultiply(face, trans))
	}
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}
