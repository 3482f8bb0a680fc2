package debug

import (
	"fmt"
	"runtime"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/frame"
	"scene-demo/internal/graphics"
	"scene-demo/internal/raycast"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays (FPS, memory, pointer hits) in the top-left corner. All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowHits     bool

	font         *graphics.Font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
	lastHits     string
	hitsText     string
}

// New returns a Debug overlay with everything hidden. font may be nil (raylib default font).
func New(font *graphics.Font) *Debug {
	return &Debug{font: font}
}

// HitsText formats the pointer hit list the way the overlay shows it.
func HitsText(hits []raycast.Hit) string {
	if len(hits) == 0 {
		return "Hits: none"
	}
	names := make([]string, len(hits))
	for i, h := range hits {
		names[i] = fmt.Sprintf("%s (%.1f)", h.Name, h.Distance)
	}
	return "Hits: " + strings.Join(names, ", ")
}

// Draw renders the enabled overlays. FPS and memory text are only recomputed every updateInterval
// frames; the hit line is rebuilt only when the hit names change.
func (d *Debug) Draw(_ *frame.Session, hits []raycast.Hit) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	y := int32(padding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.font.Draw(d.lastFpsText, padding, y, fontSize, rl.Green)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.font.Draw(d.lastMemText, padding, y, fontSize, rl.Green)
		y += lineHeight
	}
	if d.ShowHits {
		if key := hitKey(hits); key != d.lastHits || d.hitsText == "" {
			d.lastHits = key
			d.hitsText = HitsText(hits)
		}
		d.font.Draw(d.hitsText, padding, y, fontSize, rl.Yellow)
	}
}

func hitKey(hits []raycast.Hit) string {
	names := make([]string, len(hits))
	for i, h := range hits {
		names[i] = h.Name
	}
	return strings.Join(names, ",")
}
