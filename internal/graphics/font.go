package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Font is an optional overlay font. It loads on first use, after the window exists. A nil Font,
// an empty path or a failed load all draw with raylib's built-in font.
type Font struct {
	path   string
	size   int32
	font   rl.Font
	tried  bool
	onLoad []func(rl.Font)
}

// NewFont returns a font that will be rasterised from path at size pixels.
func NewFont(path string, size int32) *Font {
	return &Font{path: path, size: size}
}

// OnLoad registers fn to run once the font is on the GPU (e.g. to hand it to raygui).
func (f *Font) OnLoad(fn func(rl.Font)) {
	if f == nil {
		return
	}
	f.onLoad = append(f.onLoad, fn)
}

// get returns the loaded font and whether one is usable.
func (f *Font) get() (rl.Font, bool) {
	if f == nil || f.path == "" {
		return rl.Font{}, false
	}
	if !f.tried {
		f.tried = true
		f.font = rl.LoadFontEx(f.path, f.size, nil)
		if f.font.Texture.ID != 0 {
			rl.SetTextureFilter(f.font.Texture, rl.FilterBilinear)
			for _, fn := range f.onLoad {
				fn(f.font)
			}
		}
	}
	return f.font, f.font.Texture.ID != 0
}

// Ensure loads the font now. Call once per frame from an overlay that needs raygui to see it.
func (f *Font) Ensure() {
	f.get()
}

// Draw draws text at (x, y) with height size.
func (f *Font) Draw(text string, x, y, size int32, c rl.Color) {
	if font, ok := f.get(); ok {
		rl.DrawTextEx(font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
		return
	}
	rl.DrawText(text, x, y, size, c)
}

// Measure returns the width of text drawn at height size.
func (f *Font) Measure(text string, size int32) int32 {
	if font, ok := f.get(); ok {
		return int32(rl.MeasureTextEx(font, text, float32(size), 1).X)
	}
	return rl.MeasureText(text, size)
}

// Unload frees the font texture.
func (f *Font) Unload() {
	if f == nil {
		return
	}
	if f.font.Texture.ID != 0 {
		rl.UnloadFont(f.font)
	}
	f.font = rl.Font{}
}
