// Package geometry provides the viewport geometry primitives used by the section tracker and
// the reveal animator. All values are in layout units (px), relative to the top-left of the
// viewport unless stated otherwise.
package geometry

// Rect is an axis aligned bounding box.
type Rect struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (r Rect) Width() float64 {
	return max(0, r.Right-r.Left)
}

func (r Rect) Height() float64 {
	return max(0, r.Bottom-r.Top)
}

func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Empty reports whether the rect covers no area.
func (r Rect) Empty() bool {
	return r.Area() == 0
}

// Offset shifts the rect vertically by dy.
func (r Rect) Offset(dy float64) Rect {
	r.Top += dy
	r.Bottom += dy

	return r
}

// ContainsY reports whether the horizontal line at y falls within the rect, edges inclusive.
func (r Rect) ContainsY(y float64) bool {
	return r.Top <= y && r.Bottom >= y
}

// Intersect returns the overlapping region of r and other. The second return value is false when
// they do not touch at all.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	out := Rect{
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
		Left:   max(r.Left, other.Left),
	}

	if out.Top > out.Bottom || out.Left > out.Right {
		return Rect{}, false
	}

	return out, true
}

// IntersectionRatio returns the fraction of element's area that lies within root, in [0, 1].
// Zero area elements have no meaningful fraction, they count as fully visible when they touch
// the root and invisible otherwise.
func IntersectionRatio(element Rect, root Rect) float64 {
	overlap, ok := element.Intersect(root)
	if !ok {
		return 0
	}

	area := element.Area()
	if area == 0 {
		return 1
	}

	return min(1, overlap.Area()/area)
}
