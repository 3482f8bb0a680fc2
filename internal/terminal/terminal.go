package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/commands"
	"scene-demo/internal/frame"
	"scene-demo/internal/graphics"
	"scene-demo/internal/logger"
	"scene-demo/internal/raycast"
)

const (
	BarHeight = 32
	prompt    = "> "
	fontSize  = 18
	padding   = 7
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 10
	lineHeight       = fontSize + 4
	maxLineLen       = 160

	toggleKey    = rl.KeyGrave
	toggleAltKey = rl.KeyF1
)

var (
	// Reused every frame when drawing the console to avoid per-frame color allocations.
	barColor  = rl.NewColor(40, 40, 40, 255)
	lineColor = rl.NewColor(80, 80, 80, 255)
	historyBg = rl.NewColor(24, 24, 24, 230)
)

// Terminal is the console at the bottom of the screen, toggled with ` or F1. Submitted lines are
// echoed to the log and run through the command registry; errors are logged too.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	font     *graphics.Font
	inputBuf string
	open     bool
}

// New returns a closed console that logs to log and runs lines through reg. font may be nil.
func New(log *logger.Logger, reg *commands.Registry, font *graphics.Font) *Terminal {
	return &Terminal{log: log, reg: reg, font: font}
}

// IsOpen reports whether the console is visible and capturing keys.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Submit runs one line as if it had been typed and entered.
func (t *Terminal) Submit(line string) {
	t.log.Log(prompt + line)
	if err := t.reg.ExecuteLine(line); err != nil {
		t.log.Log(err.Error())
	}
}

// Update handles the toggle key and, when open, typing, paste, backspace and enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(toggleKey) || rl.IsKeyPressed(toggleAltKey) {
		t.open = !t.open
		// drop the ` that opened the console
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	if !t.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// bounds returns the area the open console covers: history plus input bar.
func bounds() rl.Rectangle {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	h := float32(BarHeight + maxLinesOnScreen*lineHeight)
	if h > screenH {
		h = screenH
	}
	return rl.NewRectangle(0, screenH-h, screenW, h)
}

// Over reports whether a screen point lies on the open console.
func (t *Terminal) Over(x, y float32) bool {
	return t.open && rl.CheckCollisionPointRec(rl.NewVector2(x, y), bounds())
}

// Draw draws the recent log lines and the input bar when the console is open.
func (t *Terminal) Draw(_ *frame.Session, _ []raycast.Hit) {
	if !t.open {
		return
	}
	area := bounds()
	barY := int32(area.Y+area.Height) - BarHeight
	histY := int32(area.Y)
	rl.DrawRectangle(0, histY, int32(area.Width), barY-histY, historyBg)

	lines := t.log.Tail(maxLinesOnScreen)
	for i, line := range lines {
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		y := histY + int32(i*lineHeight) + padding/2
		t.font.Draw(line, padding, y, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, int32(area.Width), BarHeight, barColor)
	rl.DrawRectangle(0, barY, int32(area.Width), 1, lineColor)
	t.font.Draw(prompt+t.inputBuf+"|", padding, barY+padding, fontSize, rl.White)
}
