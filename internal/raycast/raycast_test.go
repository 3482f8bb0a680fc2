package raycast

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func down(from mgl32.Vec3) Ray {
	return Ray{Origin: from, Dir: mgl32.Vec3{0, -1, 0}}
}

func TestSphere(t *testing.T) {
	s := Sphere{Center: mgl32.Vec3{0, 0, 0}, Radius: 2}

	d, ok := s.Intersect(down(mgl32.Vec3{0, 10, 0}))
	require.True(t, ok)
	assert.InDelta(t, 8, d, 1e-5)

	_, ok = s.Intersect(down(mgl32.Vec3{3, 10, 0}))
	assert.False(t, ok, "passes beside the sphere")

	_, ok = s.Intersect(Ray{Origin: mgl32.Vec3{0, 10, 0}, Dir: mgl32.Vec3{0, 1, 0}})
	assert.False(t, ok, "sphere is behind the origin")

	d, ok = s.Intersect(down(mgl32.Vec3{0, 0, 0}))
	require.True(t, ok, "origin inside reports the exit")
	assert.InDelta(t, 2, d, 1e-5)
}

func TestBox(t *testing.T) {
	b := Box{Center: mgl32.Vec3{0, 15, 10}, Half: mgl32.Vec3{2, 2, 2}}

	d, ok := b.Intersect(down(mgl32.Vec3{0, 30, 10}))
	require.True(t, ok)
	assert.InDelta(t, 13, d, 1e-5)

	_, ok = b.Intersect(down(mgl32.Vec3{5, 30, 10}))
	assert.False(t, ok)

	diag := Ray{Origin: mgl32.Vec3{-10, 15, 10}, Dir: mgl32.Vec3{1, 0, 0}}
	d, ok = b.Intersect(diag)
	require.True(t, ok)
	assert.InDelta(t, 8, d, 1e-5)
}

func TestPlane(t *testing.T) {
	ground := Plane{
		Normal: mgl32.Vec3{0, 1, 0},
		U:      mgl32.Vec3{1, 0, 0},
		V:      mgl32.Vec3{0, 0, 1},
		HalfU:  15, HalfV: 15,
	}
	d, ok := ground.Intersect(down(mgl32.Vec3{3, 5, -4}))
	require.True(t, ok)
	assert.InDelta(t, 5, d, 1e-5)

	_, ok = ground.Intersect(down(mgl32.Vec3{20, 5, 0}))
	assert.False(t, ok, "outside the rectangle")

	up := Ray{Origin: mgl32.Vec3{0, -5, 0}, Dir: mgl32.Vec3{0, 1, 0}}
	_, ok = ground.Intersect(up)
	assert.False(t, ok, "back face of a single-sided plane")

	ground.DoubleSided = true
	d, ok = ground.Intersect(up)
	require.True(t, ok)
	assert.InDelta(t, 5, d, 1e-5)
}

func TestIntersectOrdersNearestFirst(t *testing.T) {
	targets := []Target{
		{Name: "plane", Shape: Plane{Normal: mgl32.Vec3{0, 1, 0}, U: mgl32.Vec3{1, 0, 0}, V: mgl32.Vec3{0, 0, 1}, HalfU: 15, HalfV: 15}},
		{Name: "box", Shape: Box{Half: mgl32.Vec3{0.5, 0.5, 0.5}}},
		{Name: "sphere", Shape: Sphere{Center: mgl32.Vec3{0, 6, 0}, Radius: 1}},
		{Name: "empty"},
	}
	hits := Intersect(down(mgl32.Vec3{0, 20, 0}), targets)
	require.Len(t, hits, 3)
	assert.Equal(t, "sphere", hits[0].Name)
	assert.Equal(t, "box", hits[1].Name)
	assert.Equal(t, "plane", hits[2].Name)
	assert.InDelta(t, 13, hits[0].Distance, 1e-5)
	assert.InDelta(t, 7, hits[0].Point.Y(), 1e-5)
}

func TestIntersectNoHits(t *testing.T) {
	hits := Intersect(Ray{Origin: mgl32.Vec3{0, 20, 0}, Dir: mgl32.Vec3{0, 1, 0}}, []Target{
		{Name: "box", Shape: Box{Half: mgl32.Vec3{1, 1, 1}}},
	})
	assert.NotNil(t, hits)
	assert.Empty(t, hits)
}

func TestLinesThreshold(t *testing.T) {
	seg := Lines{Segments: [][2]mgl32.Vec3{{{0, 0, 0}, {5, 0, 0}}}, Threshold: 1}
	above := func(x, z float32) Ray {
		return Ray{Origin: mgl32.Vec3{x, 10, z}, Dir: mgl32.Vec3{0, -1, 0}}
	}

	d, ok := seg.Intersect(above(3, 0.2))
	require.True(t, ok)
	assert.InDelta(t, 10, d, 1e-4)

	_, ok = seg.Intersect(above(3, 1.5))
	assert.False(t, ok, "outside the threshold")

	_, ok = seg.Intersect(above(6.5, 0))
	assert.False(t, ok, "past the segment end")

	d, ok = seg.Intersect(above(5.5, 0))
	require.True(t, ok, "within threshold of the end point")
	assert.InDelta(t, 10, d, 1e-4)

	along := Ray{Origin: mgl32.Vec3{-4, 0, 0.3}, Dir: mgl32.Vec3{1, 0, 0}}
	d, ok = seg.Intersect(along)
	require.True(t, ok, "parallel ray")
	assert.InDelta(t, 4, d, 1e-4, "nearest endpoint along the ray")

	behind := Ray{Origin: mgl32.Vec3{3, -10, 0}, Dir: mgl32.Vec3{0, -1, 0}}
	_, ok = seg.Intersect(behind)
	assert.False(t, ok)
}
