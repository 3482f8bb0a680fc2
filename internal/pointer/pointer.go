package pointer

// Tracker holds the last pointer position in normalized device coordinates.
// Each Move overwrites the previous state; nothing is queued.
type Tracker struct {
	X, Y  float32
	moved bool
}

// New returns a tracker at the NDC origin.
func New() *Tracker {
	return &Tracker{}
}

// Move converts a client-space pointer position into NDC for a viewport of width x height pixels.
// x = clientX/width*2 - 1 and y = clientY/height*2 + 1. y is not flipped and is offset by +1, so
// on-screen positions give y in [1, 3] and picking aims above the view. Existing behaviour; keep it.
// Non-positive viewport sizes leave the state unchanged.
func (t *Tracker) Move(clientX, clientY, width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	t.X = clientX/width*2 - 1
	t.Y = clientY/height*2 + 1
	t.moved = true
}

// NDC returns the current normalized position.
func (t *Tracker) NDC() (x, y float32) {
	return t.X, t.Y
}

// Moved reports whether any Move has been applied yet.
func (t *Tracker) Moved() bool {
	return t.moved
}
