package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/scene"
)

// loadLitShader returns the shader used by every untextured object: one spot light with a smooth cone
// edge, an ambient term and exponential-squared fog. Same vertex attributes as raylib meshes.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	// The cone falloff is smoothstep(cosOuter, cosInner, cos(theta)), as in scene.Light.Attenuation.
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 ambient;
uniform vec3 spotPos;
uniform vec3 spotDir;
uniform vec3 spotColor;
uniform float spotIntensity;
uniform float cosOuter;
uniform float cosInner;
uniform vec3 fogColor;
uniform float fogDensity;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) N = -N;
  vec3 L = normalize(spotPos - fragPosition);
  float cosTheta = dot(-L, normalize(spotDir));
  float cone = cosInner - cosOuter > 1e-5 ? smoothstep(cosOuter, cosInner, cosTheta) : step(cosOuter, cosTheta);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * spotColor * spotIntensity * cone;
  vec3 color = ambient * colDiffuse.rgb + diffuse;
  float fd = fogDensity * length(viewPos - fragPosition);
  float fog = clamp(exp(-fd * fd), 0.0, 1.0);
  finalColor = vec4(mix(fogColor, color, fog), colDiffuse.a);
}
`
)

// litLocations caches uniform locations; -1 means the uniform was optimised out.
type litLocations struct {
	viewPos, ambient                     int32
	spotPos, spotDir, spotColor, spotInt int32
	cosOuter, cosInner                   int32
	fogColor, fogDensity                 int32
}

func lookupLitLocations(shader rl.Shader) litLocations {
	return litLocations{
		viewPos:    rl.GetShaderLocation(shader, "viewPos"),
		ambient:    rl.GetShaderLocation(shader, "ambient"),
		spotPos:    rl.GetShaderLocation(shader, "spotPos"),
		spotDir:    rl.GetShaderLocation(shader, "spotDir"),
		spotColor:  rl.GetShaderLocation(shader, "spotColor"),
		spotInt:    rl.GetShaderLocation(shader, "spotIntensity"),
		cosOuter:   rl.GetShaderLocation(shader, "cosOuter"),
		cosInner:   rl.GetShaderLocation(shader, "cosInner"),
		fogColor:   rl.GetShaderLocation(shader, "fogColor"),
		fogDensity: rl.GetShaderLocation(shader, "fogDensity"),
	}
}

func setVec3(shader rl.Shader, loc int32, v [3]float32) {
	if loc >= 0 {
		rl.SetShaderValueV(shader, loc, v[:], rl.ShaderUniformVec3, 1)
	}
}

func setFloat(shader rl.Shader, loc int32, v float32) {
	if loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}

// setLitUniforms uploads camera, light and fog state (cgo-safe: local arrays).
func setLitUniforms(shader rl.Shader, locs litLocations, s *scene.Scene, viewPos rl.Vector3) {
	if !rl.IsShaderValid(shader) {
		return
	}
	amb := rgbFloats(s.Ambient.Color)
	for i := range amb {
		amb[i] *= s.Ambient.Intensity
	}
	spot := s.Spot
	outer, inner := spot.ConeCos()
	dir := spot.Direction()

	setVec3(shader, locs.viewPos, [3]float32{viewPos.X, viewPos.Y, viewPos.Z})
	setVec3(shader, locs.ambient, amb)
	setVec3(shader, locs.spotPos, [3]float32(spot.Position))
	setVec3(shader, locs.spotDir, [3]float32(dir))
	setVec3(shader, locs.spotColor, rgbFloats(spot.Color))
	setFloat(shader, locs.spotInt, spot.Intensity)
	setFloat(shader, locs.cosOuter, outer)
	setFloat(shader, locs.cosInner, inner)
	setVec3(shader, locs.fogColor, rgbFloats(s.Fog.Color))
	setFloat(shader, locs.fogDensity, s.Fog.Density)
}
