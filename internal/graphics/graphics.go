package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/config"
)

// Run opens the window and calls tick once per display refresh until the window is closed.
// tick polls input, advances the frame loop and draws; BeginDrawing/EndDrawing happen in Host.Render.
// GPU resources must be created inside tick (after the window/OpenGL context exists) and freed in
// shutdown, which runs before the window closes. shutdown may be nil.
func Run(w config.Window, tick func(), shutdown func()) {
	var flags uint32 = rl.FlagMsaa4xHint
	if w.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.FPS)

	for !rl.WindowShouldClose() {
		tick()
	}
	if shutdown != nil {
		shutdown()
	}
}

// ScreenSize returns the current drawable size in pixels.
func ScreenSize() (width, height float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}
