package params

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatClamp(t *testing.T) {
	pn := New()
	speed := pn.AddFloat("speed", 0.5, 0, 0.1)
	assert.Equal(t, float32(0.1), speed.Float(), "initial value is clamped")

	speed.SetFloat(-3)
	assert.Equal(t, float32(0), speed.Float())
	speed.SetFloat(0.05)
	assert.Equal(t, float32(0.05), speed.Float())
}

func TestOnChangeFiresOnlyOnChange(t *testing.T) {
	pn := New()
	var got []float32
	p := pn.AddFloat("angle", 0.2, 0, 1).OnChange(func(p *Param) {
		got = append(got, p.Float())
	})
	p.SetFloat(0.2)
	p.SetFloat(0.7)
	p.SetFloat(0.7)
	p.SetFloat(2)
	assert.Equal(t, []float32{0.7, 1}, got)

	calls := 0
	w := pn.AddBool("wireFrame", false).OnChange(func(*Param) { calls++ })
	w.SetBool(false)
	w.SetBool(true)
	w.SetBool(true)
	assert.Equal(t, 1, calls)
}

func TestSetText(t *testing.T) {
	pn := New()
	pn.AddFloat("speed", 0.01, 0, 0.1)
	pn.AddBool("wireFrame", false)
	pn.AddColor("sphereColor", RGB(0, 0, 255))

	require.NoError(t, pn.Set("speed", " 0.05 "))
	assert.InDelta(t, 0.05, pn.Float("speed"), 1e-7)

	require.NoError(t, pn.Set("wireFrame", "true"))
	p, ok := pn.Get("wireFrame")
	require.True(t, ok)
	assert.True(t, p.Bool())

	require.NoError(t, pn.Set("sphereColor", "#ffea00"))
	p, _ = pn.Get("sphereColor")
	assert.Equal(t, RGB(0xff, 0xea, 0x00), p.Color())
	assert.Equal(t, "#ffea00", p.String())

	assert.ErrorIs(t, pn.Set("nope", "1"), ErrUnknownParam)
	assert.ErrorIs(t, pn.Set("speed", "fast"), ErrBadValue)
	assert.ErrorIs(t, pn.Set("wireFrame", "maybe"), ErrBadValue)
	assert.ErrorIs(t, pn.Set("sphereColor", "#12"), ErrBadValue)
}

func TestRegistrationOrder(t *testing.T) {
	pn := New()
	pn.AddColor("sphereColor", RGB(1, 2, 3))
	pn.AddBool("wireFrame", false)
	pn.AddFloat("speed", 0.01, 0, 0.1)
	pn.AddFloat("speed", 0.02, 0, 0.1)

	var names []string
	for _, p := range pn.Params() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"sphereColor", "wireFrame", "speed"}, names)
	assert.InDelta(t, 0.02, pn.Float("speed"), 1e-7)
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#ffea00", RGB(255, 234, 0), true},
		{"#FFF", RGB(255, 255, 255), true},
		{"0x333333", RGB(0x33, 0x33, 0x33), true},
		{"white", RGB(255, 255, 255), true},
		{"Blue", RGB(0, 0, 255), true},
		{"#gg0000", Color{}, false},
		{"#1234", Color{}, false},
		{"not-a-color", Color{}, false},
	}
	for _, c := range cases {
		got, ok := ParseColor(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestFloatNonFiniteValues(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	pn := New()
	calls := 0
	angle := pn.AddFloat("angle", 0.2, 0, 1).OnChange(func(*Param) { calls++ })
	angle.SetFloat(nan)
	assert.Equal(t, float32(0.2), angle.Float(), "NaN leaves the value alone")
	assert.Zero(t, calls)
	angle.SetFloat(inf)
	assert.Equal(t, float32(1), angle.Float())
	angle.SetFloat(-inf)
	assert.Equal(t, float32(0), angle.Float())

	speed := pn.AddFloat("speed", nan, 0, 0.1)
	assert.Equal(t, float32(0), speed.Float(), "NaN initial value falls back to min")
	assert.Equal(t, float32(0.1), pn.AddFloat("big", inf, 0, 0.1).Float())
}

func TestSetFloatText(t *testing.T) {
	cases := []struct {
		text string
		want float32
		err  bool
	}{
		{text: "NaN", want: 0.5, err: true},
		{text: "nan", want: 0.5, err: true},
		{text: "Inf", want: 1},
		{text: "+Inf", want: 1},
		{text: "-Inf", want: 0},
		{text: "0.25", want: 0.25},
	}
	for _, c := range cases {
		pn := New()
		pn.AddFloat("penumbra", 0.5, 0, 1)
		err := pn.Set("penumbra", c.text)
		if c.err {
			assert.ErrorIs(t, err, ErrBadValue, c.text)
		} else {
			assert.NoError(t, err, c.text)
		}
		assert.Equal(t, c.want, pn.Float("penumbra"), c.text)
	}
}
