package graphics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/scene"
)

// cached holds the GPU mesh for one scene object. Created lazily on first draw.
type cached struct {
	mesh rl.Mesh
	// base orients the raylib mesh into the object's model space before its transform.
	base rl.Matrix
}

// Registry maps scene objects to meshes and owns the lit material they share and one unlit
// material per texture key. Everything is created on first use so that GPU resources are allocated
// after the window/OpenGL context exists.
type Registry struct {
	cache    map[string]cached
	faceMesh rl.Mesh
	faceInit bool

	lit      rl.Material
	litLocs  litLocations
	litReady bool

	textured map[string]rl.Material
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]cached),
		textured: make(map[string]rl.Material),
	}
}

// ensure creates the mesh for o if not yet cached.
func (r *Registry) ensure(o *scene.Object) cached {
	if c, ok := r.cache[o.Name]; ok {
		return c
	}
	c := cached{base: rl.MatrixIdentity()}
	switch o.Shape {
	case scene.ShapeBox:
		c.mesh = rl.GenMeshCube(o.Size[0], o.Size[1], o.Size[2])
	case scene.ShapeSphere:
		segs := o.Segments
		if segs <= 0 {
			segs = defaultSphereSegments
		}
		c.mesh = rl.GenMeshSphere(o.Size[0], segs, segs)
	case scene.ShapePlane:
		// raylib planes lie in XZ facing +Y; scene planes are XY facing +Z.
		c.mesh = rl.GenMeshPlane(o.Size[0], o.Size[1], 1, 1)
		c.base = rl.MatrixRotateX(math32.Pi / 2)
	}
	r.cache[o.Name] = c
	return c
}

// defaultSphereSegments is used when an object does not set Segments.
const defaultSphereSegments = 16

// ensureLit creates the lit material (spot light + ambient + fog) if not yet created.
func (r *Registry) ensureLit() {
	if r.litReady {
		return
	}
	r.lit = rl.LoadMaterialDefault()
	shader := loadLitShader()
	if rl.IsShaderValid(shader) {
		r.lit.Shader = shader
		r.litLocs = lookupLitLocations(shader)
	}
	r.litReady = true
}

// ensureTextured returns the unlit material for a texture key, creating it from tex on first use.
func (r *Registry) ensureTextured(key string, tex rl.Texture2D) rl.Material {
	if m, ok := r.textured[key]; ok {
		return m
	}
	m := rl.LoadMaterialDefault()
	if albedo := m.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	rl.SetMaterialTexture(&m, rl.MapAlbedo, tex)
	r.textured[key] = m
	return m
}

func (r *Registry) ensureFaceMesh() {
	if r.faceInit {
		return
	}
	r.faceMesh = rl.GenMeshPlane(1, 1, 1, 1)
	r.faceInit = true
}

// SetLights uploads the per-frame lighting uniforms. Call once per frame before DrawObject.
func (r *Registry) SetLights(s *scene.Scene, viewPos rl.Vector3) {
	r.ensureLit()
	setLitUniforms(r.lit.Shader, r.litLocs, s, viewPos)
}

// DrawObject draws o with its current transform and material.
// Must be called between BeginMode3D and EndMode3D.
func (r *Registry) DrawObject(o *scene.Object, textures map[string]rl.Texture2D) {
	if o.Material.Textured() {
		r.drawFaces(o, textures)
		return
	}
	if o.Material.Wireframe && o.Shape == scene.ShapeSphere {
		segs := int32(o.Segments)
		if segs <= 0 {
			segs = defaultSphereSegments
		}
		rl.DrawSphereWires(vec3(o.Position), o.Size[0], segs, segs, rgba(o.Material.Color))
		return
	}
	c := r.ensure(o)
	r.ensureLit()
	if albedo := r.lit.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rgba(o.Material.Color)
	}
	transform := rl.MatrixMultiply(c.base, matrix(o.Transform()))
	if o.Material.DoubleSided {
		rl.DisableBackfaceCulling()
		defer rl.EnableBackfaceCulling()
	}
	rl.DrawMesh(c.mesh, r.lit, transform)
}

// drawFaces draws a box as six textured quads, one material per face.
func (r *Registry) drawFaces(o *scene.Object, textures map[string]rl.Texture2D) {
	r.ensureFaceMesh()
	model := matrix(o.Transform())
	for i, key := range o.Material.Faces {
		tex, ok := textures[key]
		if !ok || !rl.IsTextureValid(tex) {
			continue
		}
		m := r.ensureTextured(key, tex)
		face := faceTransform(i, o.Size[0], o.Size[1], o.Size[2])
		rl.DrawMesh(r.faceMesh, m, rl.MatrixMultiply(face, model))
	}
}

// faceTransform places the unit XZ plane (+Y normal) on face i of a w x h x d box centred at the
// origin, normal pointing outwards. Face order is +X, -X, +Y, -Y, +Z, -Z.
func faceTransform(i int, w, h, d float32) rl.Matrix {
	var scale, rot, trans rl.Matrix
	switch i {
	case scene.FacePosX:
		scale = rl.MatrixScale(h, 1, d)
		rot = rl.MatrixRotateZ(-math32.Pi / 2)
		trans = rl.MatrixTranslate(w/2, 0, 0)
	case scene.FaceNegX:
		scale = rl.MatrixScale(h, 1, d)
		rot = rl.MatrixRotateZ(math32.Pi / 2)
		trans = rl.MatrixTranslate(-w/2, 0, 0)
	case scene.FacePosY:
		scale = rl.MatrixScale(w, 1, d)
		rot = rl.MatrixIdentity()
		trans = rl.MatrixTranslate(0, h/2, 0)
	case scene.FaceNegY:
		scale = rl.MatrixScale(w, 1, d)
		rot = rl.MatrixRotateX(math32.Pi)
		trans = rl.MatrixTranslate(0, -h/2, 0)
	case scene.FacePosZ:
		scale = rl.MatrixScale(w, 1, h)
		rot = rl.MatrixRotateX(math32.Pi / 2)
		trans = rl.MatrixTranslate(0, 0, d/2)
	default:
		scale = rl.MatrixScale(w, 1, h)
		rot = rl.MatrixRotateX(-math32.Pi / 2)
		trans = rl.MatrixTranslate(0, 0, -d/2)
	}
	// Order: scale the unit quad, orient it, then push it out to the face.
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}

// Unload frees every mesh, texture material and the lit shader.
func (r *Registry) Unload() {
	for name, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, name)
	}
	if r.faceInit {
		rl.UnloadMesh(&r.faceMesh)
		r.faceInit = false
	}
	if r.litReady && rl.IsShaderValid(r.lit.Shader) {
		rl.UnloadShader(r.lit.Shader)
	}
	r.litReady = false
	clear(r.textured)
}
