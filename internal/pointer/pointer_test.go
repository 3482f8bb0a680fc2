package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveFormula(t *testing.T) {
	tr := New()
	tr.Move(0, 0, 800, 600)
	x, y := tr.NDC()
	assert.Equal(t, float32(-1), x)
	assert.Equal(t, float32(1), y)

	tr.Move(400, 300, 800, 600)
	x, y = tr.NDC()
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(2), y)

	tr.Move(800, 600, 800, 600)
	x, y = tr.NDC()
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(3), y)
}

func TestXMonotonicAndBounded(t *testing.T) {
	tr := New()
	const w = 1280
	prev := float32(-2)
	for cx := float32(0); cx <= w; cx += 7 {
		tr.Move(cx, 10, w, 720)
		assert.GreaterOrEqual(t, tr.X, float32(-1))
		assert.LessOrEqual(t, tr.X, float32(1))
		assert.Greater(t, tr.X, prev)
		prev = tr.X
	}
}

func TestLastWriteWins(t *testing.T) {
	tr := New()
	assert.False(t, tr.Moved())
	tr.Move(10, 10, 100, 100)
	tr.Move(90, 50, 100, 100)
	assert.True(t, tr.Moved())
	assert.InDelta(t, 0.8, tr.X, 1e-6)
	assert.InDelta(t, 2.0, tr.Y, 1e-6)
}

func TestBadViewportIgnored(t *testing.T) {
	tr := New()
	tr.Move(50, 50, 100, 100)
	tr.Move(10, 10, 0, 100)
	tr.Move(10, 10, 100, -1)
	assert.Equal(t, float32(0), tr.X)
	assert.Equal(t, float32(2), tr.Y)
}
