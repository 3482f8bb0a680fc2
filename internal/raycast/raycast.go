package raycast

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// epsilon keeps hits that start exactly on a surface from being reported at distance 0.
const epsilon = 1e-5

// Ray is a half-line from Origin along the unit vector Dir.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Hit is one intersection between a ray and a named shape.
type Hit struct {
	Name     string
	Distance float32
	Point    mgl32.Vec3
}

// Shape is anything a ray can be tested against. Intersect returns the nearest positive distance.
type Shape interface {
	Intersect(r Ray) (t float32, ok bool)
}

// Target pairs a shape with the name reported in hits.
type Target struct {
	Name  string
	Shape Shape
}

// Intersect tests r against every target and returns the hits ordered nearest-first.
// No hits yields an empty, non-nil slice.
func Intersect(r Ray, targets []Target) []Hit {
	hits := make([]Hit, 0, len(targets))
	for _, tg := range targets {
		if tg.Shape == nil {
			continue
		}
		t, ok := tg.Shape.Intersect(r)
		if !ok {
			continue
		}
		hits = append(hits, Hit{Name: tg.Name, Distance: t, Point: r.At(t)})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// Sphere is a solid sphere.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// Intersect solves |o + t*d - c|^2 = r^2 for the smallest t > 0.
func (s Sphere) Intersect(r Ray) (float32, bool) {
	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := -b - sq
	if t <= epsilon {
		t = -b + sq
	}
	if t <= epsilon {
		return 0, false
	}
	return t, true
}

// Box is an axis-aligned box given by its center and half extents.
type Box struct {
	Center mgl32.Vec3
	Half   mgl32.Vec3
}

// Intersect uses the slab method.
func (b Box) Intersect(r Ray) (float32, bool) {
	tmin := float32(math32.Inf(-1))
	tmax := float32(math32.Inf(1))
	for i := 0; i < 3; i++ {
		lo := b.Center[i] - b.Half[i]
		hi := b.Center[i] + b.Half[i]
		if math32.Abs(r.Dir[i]) < epsilon {
			if r.Origin[i] < lo || r.Origin[i] > hi {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Dir[i]
		t1 := (lo - r.Origin[i]) * inv
		t2 := (hi - r.Origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmin > epsilon {
		return tmin, true
	}
	// Origin inside the box: report the exit point.
	if tmax > epsilon {
		return tmax, true
	}
	return 0, false
}

// Plane is a finite rectangle. U and V are unit in-plane axes; HalfU/HalfV its half sizes.
// Single-sided planes only report hits from the side Normal points to.
type Plane struct {
	Center      mgl32.Vec3
	Normal      mgl32.Vec3
	U, V        mgl32.Vec3
	HalfU       float32
	HalfV       float32
	DoubleSided bool
}

// Intersect returns the hit distance when the ray crosses the rectangle.
func (p Plane) Intersect(r Ray) (float32, bool) {
	denom := p.Normal.Dot(r.Dir)
	if math32.Abs(denom) < epsilon {
		return 0, false
	}
	if !p.DoubleSided && denom > 0 {
		return 0, false
	}
	t := p.Center.Sub(r.Origin).Dot(p.Normal) / denom
	if t <= epsilon {
		return 0, false
	}
	local := r.At(t).Sub(p.Center)
	if math32.Abs(local.Dot(p.U)) > p.HalfU || math32.Abs(local.Dot(p.V)) > p.HalfV {
		return 0, false
	}
	return t, true
}

// Lines is a set of line segments picked with a tolerance: a segment is hit when the ray passes
// within Threshold of it. The reported distance is along the ray, at the closest approach.
type Lines struct {
	Segments  [][2]mgl32.Vec3
	Threshold float32
}

// Intersect returns the nearest segment hit.
func (l Lines) Intersect(r Ray) (float32, bool) {
	best, found := float32(0), false
	for _, seg := range l.Segments {
		t, dist := closestApproach(r, seg[0], seg[1])
		if dist > l.Threshold || t <= epsilon {
			continue
		}
		if !found || t < best {
			best, found = t, true
		}
	}
	return best, found
}

// closestApproach returns the ray distance t and the gap between the ray and segment ab at
// their closest points.
func closestApproach(r Ray, a, b mgl32.Vec3) (t, dist float32) {
	seg := b.Sub(a)
	segLen2 := seg.Dot(seg)
	// point on the segment at parameter s, paired with the nearest point on the ray
	at := func(s float32) (float32, float32) {
		p := a.Add(seg.Mul(s))
		t := max(p.Sub(r.Origin).Dot(r.Dir), 0)
		return t, r.At(t).Sub(p).Len()
	}
	if segLen2 < epsilon {
		return at(0)
	}
	w := r.Origin.Sub(a)
	bd := r.Dir.Dot(seg)
	denom := segLen2 - bd*bd
	if denom < epsilon*segLen2 {
		// parallel: the nearer endpoint along the ray wins
		t0, d0 := at(0)
		t1, d1 := at(1)
		if t1 < t0 {
			return t1, d1
		}
		return t0, d0
	}
	s := mgl32.Clamp((seg.Dot(w)-bd*r.Dir.Dot(w))/denom, 0, 1)
	t, dist = at(s)
	if t == 0 {
		// ray origin is the nearest ray point; re-project it onto the segment
		s = mgl32.Clamp(seg.Dot(w)/segLen2, 0, 1)
		t, dist = at(s)
	}
	return t, dist
}
