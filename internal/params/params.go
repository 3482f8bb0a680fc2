package params

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrUnknownParam is returned by Set for a name that was never registered.
	ErrUnknownParam = errors.New("unknown parameter")
	// ErrBadValue is returned by Set when the text cannot be parsed for the parameter kind.
	ErrBadValue = errors.New("bad parameter value")
)

// Kind is the value type of a parameter.
type Kind int

const (
	KindFloat Kind = iota
	KindBool
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	}
	return "unknown"
}

// Param is one named, typed value on the panel. Only the field matching Kind is meaningful.
// Floats always hold a value within [Min, Max].
type Param struct {
	Name string
	Kind Kind
	Min  float32
	Max  float32

	f        float32
	on       bool
	color    Color
	onChange []func(*Param)
}

// Float returns the current value of a float parameter.
func (p *Param) Float() float32 { return p.f }

// Bool returns the current value of a bool parameter.
func (p *Param) Bool() bool { return p.on }

// Color returns the current value of a color parameter.
func (p *Param) Color() Color { return p.color }

// OnChange registers fn to run after every change of the value. Returns p for chaining.
func (p *Param) OnChange(fn func(*Param)) *Param {
	p.onChange = append(p.onChange, fn)
	return p
}

// SetFloat clamps v into [Min, Max] and stores it. NaN is ignored. Callbacks fire only if the
// stored value changed.
func (p *Param) SetFloat(v float32) {
	if math.IsNaN(float64(v)) {
		return
	}
	v = clamp(v, p.Min, p.Max)
	if v == p.f {
		return
	}
	p.f = v
	p.fire()
}

// SetBool stores v; callbacks fire only on change.
func (p *Param) SetBool(v bool) {
	if v == p.on {
		return
	}
	p.on = v
	p.fire()
}

// SetColor stores c; callbacks fire only on change.
func (p *Param) SetColor(c Color) {
	if c == p.color {
		return
	}
	p.color = c
	p.fire()
}

func (p *Param) fire() {
	for _, fn := range p.onChange {
		fn(p)
	}
}

// String formats the current value the way Set accepts it.
func (p *Param) String() string {
	switch p.Kind {
	case KindBool:
		return strconv.FormatBool(p.on)
	case KindColor:
		return p.color.Hex()
	}
	return strconv.FormatFloat(float64(p.f), 'g', -1, 32)
}

// Panel holds parameters in registration order. It is not safe for concurrent use; the
// frame loop and the widget callbacks share one thread.
type Panel struct {
	params []*Param
	byName map[string]*Param
}

// New returns an empty panel.
func New() *Panel {
	return &Panel{byName: make(map[string]*Param)}
}

func (pn *Panel) add(p *Param) *Param {
	if old, ok := pn.byName[p.Name]; ok {
		// Re-registering replaces the value but keeps the position in the list.
		*old = *p
		return old
	}
	pn.params = append(pn.params, p)
	pn.byName[p.Name] = p
	return p
}

// AddFloat registers a float parameter with range [min, max]. The initial value is clamped;
// a NaN initial value becomes min.
func (pn *Panel) AddFloat(name string, initial, min, max float32) *Param {
	if min > max {
		min, max = max, min
	}
	return pn.add(&Param{Name: name, Kind: KindFloat, Min: min, Max: max, f: clamp(initial, min, max)})
}

// clamp limits v to [min, max]; NaN maps to min.
func clamp(v, min, max float32) float32 {
	switch {
	case math.IsNaN(float64(v)), v < min:
		return min
	case v > max:
		return max
	}
	return v
}

// AddBool registers a bool parameter.
func (pn *Panel) AddBool(name string, initial bool) *Param {
	return pn.add(&Param{Name: name, Kind: KindBool, on: initial})
}

// AddColor registers a color parameter.
func (pn *Panel) AddColor(name string, initial Color) *Param {
	return pn.add(&Param{Name: name, Kind: KindColor, color: initial})
}

// Get returns the parameter registered under name.
func (pn *Panel) Get(name string) (*Param, bool) {
	p, ok := pn.byName[name]
	return p, ok
}

// Float returns the value of the named float parameter, or 0 if it does not exist.
func (pn *Panel) Float(name string) float32 {
	if p, ok := pn.byName[name]; ok {
		return p.f
	}
	return 0
}

// Params returns the parameters in registration order. The slice must not be modified.
func (pn *Panel) Params() []*Param {
	return pn.params
}

// Set parses text according to the parameter's kind and applies it.
// Floats are clamped (±Inf to the range ends, NaN rejected), bools accept strconv.ParseBool forms, colors accept #rgb, #rrggbb and CSS names.
func (pn *Panel) Set(name, text string) error {
	p, ok := pn.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	text = strings.TrimSpace(text)
	switch p.Kind {
	case KindFloat:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrBadValue, name, text, err)
		}
		if math.IsNaN(v) {
			return fmt.Errorf("%w: %s=%q: not a number", ErrBadValue, name, text)
		}
		p.SetFloat(float32(v))
	case KindBool:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrBadValue, name, text, err)
		}
		p.SetBool(v)
	case KindColor:
		c, ok := ParseColor(text)
		if !ok {
			return fmt.Errorf("%w: %s=%q", ErrBadValue, name, text)
		}
		p.SetColor(c)
	}
	return nil
}
