package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"scene-demo/internal/camera"
	"scene-demo/internal/params"
	"scene-demo/internal/scene"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/scene.yaml"

// ErrInvalid wraps every problem found in a config file that exists but cannot be used.
var ErrInvalid = errors.New("invalid config")

// Window controls the raylib window.
type Window struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Title      string `yaml:"title"`
	FPS        int32  `yaml:"fps"`
	Fullscreen bool   `yaml:"fullscreen"`
	Resizable  bool   `yaml:"resizable"`
}

// Camera is the initial camera placement.
type Camera struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Fovy     float32    `yaml:"fovy"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
}

// Assets maps texture keys to image files. FaceSize is the edge every face is resized to.
type Assets struct {
	Textures map[string]string `yaml:"textures"`
	FaceSize int               `yaml:"face_size"`
}

// Params holds initial panel values as text so colors can be written as "#ffea00" or "blue".
type Params struct {
	SphereColor string  `yaml:"sphere_color"`
	Wireframe   bool    `yaml:"wireframe"`
	Speed       float32 `yaml:"speed"`
	Angle       float32 `yaml:"angle"`
	Penumbra    float32 `yaml:"penumbra"`
	Intensity   float32 `yaml:"intensity"`
}

// Fog is exponential-squared fog.
type Fog struct {
	Color   string  `yaml:"color"`
	Density float32 `yaml:"density"`
}

// Debug toggles the overlays.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowHits     bool `yaml:"show_hits"`
	GridVisible  bool `yaml:"grid_visible"`
	PickHelpers  bool `yaml:"pick_helpers"`
	ShowPanel    bool `yaml:"show_panel"`
}

// UI selects the overlay font. Font is a file name or family searched under assets/fonts; empty
// keeps raylib's built-in font.
type UI struct {
	Font     string `yaml:"font"`
	FontSize int32  `yaml:"font_size"`
}

// Log configures the log file.
type Log struct {
	Path string `yaml:"path"`
}

// Config is the whole demo configuration. Nothing here is written back; the demo keeps no state across runs.
type Config struct {
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
	Assets Assets `yaml:"assets"`
	Params Params `yaml:"params"`
	Fog    Fog    `yaml:"fog"`
	Debug  Debug  `yaml:"debug"`
	UI     UI     `yaml:"ui"`
	Log    Log    `yaml:"log"`
}

// Default returns the built-in demo configuration.
func Default() Config {
	cam := camera.Default()
	st := scene.DefaultSettings()
	return Config{
		Window: Window{Width: 1280, Height: 720, Title: "scene demo", FPS: 60, Resizable: true},
		Camera: Camera{
			Position: cam.Position,
			Target:   cam.Target,
			Fovy:     cam.Fovy,
			Near:     cam.Near,
			Far:      cam.Far,
		},
		Assets: Assets{
			Textures: map[string]string{
				scene.TextureNebula: "assets/img/nebula.jpg",
				scene.TextureStars:  "assets/img/stars.jpg",
			},
			FaceSize: 512,
		},
		Params: Params{
			SphereColor: st.SphereColor.Hex(),
			Wireframe:   st.Wireframe,
			Speed:       st.Speed,
			Angle:       st.Angle,
			Penumbra:    st.Penumbra,
			Intensity:   st.Intensity,
		},
		Fog:   Fog{Color: "#ffffff", Density: 0.01},
		Debug: Debug{ShowHits: true, GridVisible: true, ShowPanel: true},
		UI:    UI{FontSize: 32},
		Log:   Log{Path: "logs/scene.txt"},
	}
}

// Load reads the YAML file at path (DefaultPath when empty) over Default(), so a file only needs
// the keys it changes. A missing file is not an error. A malformed or invalid file returns
// Default() together with an error wrapping ErrInvalid.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks values the demo cannot run with. Panel values outside their ranges are not
// errors; the panel clamps them.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		return fmt.Errorf("%w: camera fovy %v", ErrInvalid, c.Camera.Fovy)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera near/far %v/%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.Position == c.Camera.Target {
		return fmt.Errorf("%w: camera position equals target", ErrInvalid)
	}
	if c.Assets.FaceSize <= 0 {
		return fmt.Errorf("%w: face_size %d", ErrInvalid, c.Assets.FaceSize)
	}
	if _, ok := params.ParseColor(c.Params.SphereColor); !ok {
		return fmt.Errorf("%w: sphere_color %q", ErrInvalid, c.Params.SphereColor)
	}
	if _, ok := params.ParseColor(c.Fog.Color); !ok {
		return fmt.Errorf("%w: fog color %q", ErrInvalid, c.Fog.Color)
	}
	if c.UI.FontSize <= 0 {
		return fmt.Errorf("%w: ui font_size %d", ErrInvalid, c.UI.FontSize)
	}
	for name, v := range map[string]float32{
		"speed": c.Params.Speed, "angle": c.Params.Angle,
		"penumbra": c.Params.Penumbra, "intensity": c.Params.Intensity,
	} {
		if math.IsNaN(float64(v)) {
			return fmt.Errorf("%w: params %s is not a number", ErrInvalid, name)
		}
	}
	if !(c.Fog.Density >= 0) || math.IsInf(float64(c.Fog.Density), 1) {
		return fmt.Errorf("%w: fog density %v", ErrInvalid, c.Fog.Density)
	}
	return nil
}

// CameraValue returns the configured camera.
func (c Config) CameraValue() camera.Camera {
	cam := camera.Default()
	cam.Position = c.Camera.Position
	cam.Target = c.Camera.Target
	cam.Fovy = c.Camera.Fovy
	cam.Near = c.Camera.Near
	cam.Far = c.Camera.Far
	return cam
}

// Settings returns the initial panel values. Call after Validate; an unparsable color falls back to the default.
func (c Config) Settings() scene.Settings {
	st := scene.DefaultSettings()
	if col, ok := params.ParseColor(c.Params.SphereColor); ok {
		st.SphereColor = col
	}
	st.Wireframe = c.Params.Wireframe
	st.Speed = c.Params.Speed
	st.Angle = c.Params.Angle
	st.Penumbra = c.Params.Penumbra
	st.Intensity = c.Params.Intensity
	return st
}

// ApplyScene copies fog, grid and helper picking settings onto s.
func (c Config) ApplyScene(s *scene.Scene) {
	if col, ok := params.ParseColor(c.Fog.Color); ok {
		s.Fog.Color = col
	}
	s.Fog.Density = c.Fog.Density
	s.GridVisible = c.Debug.GridVisible
	s.PickHelpers = c.Debug.PickHelpers
}
