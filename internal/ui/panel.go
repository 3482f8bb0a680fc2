package ui

import (
	"fmt"
	"strconv"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/frame"
	"scene-demo/internal/graphics"
	"scene-demo/internal/params"
	"scene-demo/internal/raycast"
)

const (
	panelWidth  = 300
	panelMargin = 10
	padding     = 8
	rowHeight   = 22
	rowGap      = 4
	labelWidth  = 90
	valueWidth  = 48
	titleHeight = 24
	textSize    = 14
)

var (
	panelBg     = rl.NewColor(24, 24, 28, 230)
	panelBorder = rl.NewColor(80, 80, 90, 255)
)

// Panel draws one raygui widget per session parameter in the top-right corner:
// a slider per float, a checkbox per bool and R/G/B sliders plus a swatch per color.
// Widgets never write parameters directly; changes are posted to the session and applied next tick.
type Panel struct {
	Visible bool

	font   *graphics.Font
	styled bool
	bounds rl.Rectangle
}

// NewPanel returns a visible panel. font may be nil; when it loads, raygui widgets use it too.
func NewPanel(font *graphics.Font) *Panel {
	font.OnLoad(gui.SetFont)
	return &Panel{Visible: true, font: font}
}

// initStyle sets up a dark theme for raygui widgets. Runs once, after the window exists.
func (p *Panel) initStyle() {
	if p.styled {
		return
	}
	p.styled = true
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(rl.NewColor(30, 30, 35, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(45, 45, 50, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(60, 60, 70, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(rl.NewColor(70, 80, 90, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(200, 200, 200, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(80, 80, 90, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, textSize)
}

// rows returns how many widget rows the parameters need.
func rows(ps []*params.Param) int {
	n := 0
	for _, p := range ps {
		if p.Kind == params.KindColor {
			n += 3
		} else {
			n++
		}
	}
	return n
}

// Over reports whether the screen point lies on the panel as last drawn.
func (p *Panel) Over(x, y float32) bool {
	if !p.Visible {
		return false
	}
	return rl.CheckCollisionPointRec(rl.NewVector2(x, y), p.bounds)
}

// Draw lays out and draws the widgets, posting a parameter event for every widget the user changed.
func (p *Panel) Draw(s *frame.Session, _ []raycast.Hit) {
	if !p.Visible {
		p.bounds = rl.Rectangle{}
		return
	}
	p.initStyle()
	p.font.Ensure()
	ps := s.Panel.Params()
	screenW := float32(rl.GetScreenWidth())
	height := float32(titleHeight + padding*2 + rows(ps)*(rowHeight+rowGap))
	p.bounds = rl.NewRectangle(screenW-panelWidth-panelMargin, panelMargin, panelWidth, height)

	rl.DrawRectangleRec(p.bounds, panelBg)
	rl.DrawRectangleLinesEx(p.bounds, 1, panelBorder)
	p.font.Draw("Controls", int32(p.bounds.X+padding), int32(p.bounds.Y+padding), textSize+2, rl.RayWhite)

	y := p.bounds.Y + padding + titleHeight
	for _, prm := range ps {
		switch prm.Kind {
		case params.KindFloat:
			p.drawFloat(s, prm, y)
			y += rowHeight + rowGap
		case params.KindBool:
			p.drawBool(s, prm, y)
			y += rowHeight + rowGap
		case params.KindColor:
			p.drawColor(s, prm, y)
			y += 3 * (rowHeight + rowGap)
		}
	}
}

func (p *Panel) sliderBounds(y float32) rl.Rectangle {
	x := p.bounds.X + padding + labelWidth
	w := p.bounds.Width - 2*padding - labelWidth - valueWidth
	return rl.NewRectangle(x, y, w, rowHeight)
}

func (p *Panel) label(text string, y float32) {
	p.font.Draw(text, int32(p.bounds.X+padding), int32(y+4), textSize, rl.LightGray)
}

func (p *Panel) drawFloat(s *frame.Session, prm *params.Param, y float32) {
	p.label(prm.Name, y)
	cur := prm.Float()
	v := gui.Slider(p.sliderBounds(y), "", fmt.Sprintf("%.3f", cur), cur, prm.Min, prm.Max)
	if v != cur {
		s.Post(frame.ParamFloat{Name: prm.Name, Value: v})
	}
}

func (p *Panel) drawBool(s *frame.Session, prm *params.Param, y float32) {
	p.label(prm.Name, y)
	box := rl.NewRectangle(p.bounds.X+padding+labelWidth, y+3, rowHeight-6, rowHeight-6)
	cur := prm.Bool()
	if v := gui.CheckBox(box, "", cur); v != cur {
		s.Post(frame.ParamBool{Name: prm.Name, Value: v})
	}
}

// drawColor draws R, G and B sliders (0-255) and a swatch with the hex value.
func (p *Panel) drawColor(s *frame.Session, prm *params.Param, y float32) {
	p.label(prm.Name, y)
	cur := prm.Color()
	swatch := rl.NewRectangle(p.bounds.X+padding, y+rowHeight+rowGap, labelWidth-2*padding, rowHeight)
	rl.DrawRectangleRec(swatch, rl.NewColor(cur.R, cur.G, cur.B, 255))
	p.font.Draw(cur.Hex(), int32(swatch.X), int32(swatch.Y+rowHeight+rowGap+4), textSize-2, rl.LightGray)

	next := cur
	channels := []*uint8{&next.R, &next.G, &next.B}
	for i, ch := range channels {
		rowY := y + float32(i)*(rowHeight+rowGap)
		v := gui.Slider(p.sliderBounds(rowY), "", strconv.Itoa(int(*ch)), float32(*ch), 0, 255)
		*ch = uint8(v + 0.5)
	}
	if next != cur {
		s.Post(frame.ParamColor{Name: prm.Name, Value: next})
	}
}
