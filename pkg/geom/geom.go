// Package geom provides integer pixel geometry for the view tree.
//
// All coordinates are device pixels. Rectangles are plain values, copied
// freely and never shared; a rectangle with zero or negative extent on
// either axis is "empty" and means there is nothing to redraw.
package geom

// Point is a position or translation delta in device pixels.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rectangle is an axis-aligned rectangle spanning [Min, Max] inclusive.
type Rectangle struct {
	Min Point
	Max Point
}

// Rect is shorthand for Rectangle{Pt(x0, y0), Pt(x1, y1)}.
func Rect(x0, y0, x1, y1 int) Rectangle {
	return Rectangle{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// Width returns the horizontal extent of the rectangle.
func (r Rectangle) Width() int {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of the rectangle.
func (r Rectangle) Height() int {
	return r.Max.Y - r.Min.Y
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rectangle) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Includes reports whether the point lies inside the rectangle.
// Both interval ends are closed: Min and Max corners are included.
func (r Rectangle) Includes(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Absorb grows r in place to the smallest rectangle containing both r
// and other. Absorbing an empty rectangle is a no-op; an empty receiver
// adopts the operand, so damage accumulation can start from a zero value.
func (r *Rectangle) Absorb(other Rectangle) {
	if other.IsEmpty() {
		return
	}
	if r.IsEmpty() {
		*r = other
		return
	}
	if other.Min.X < r.Min.X {
		r.Min.X = other.Min.X
	}
	if other.Min.Y < r.Min.Y {
		r.Min.Y = other.Min.Y
	}
	if other.Max.X > r.Max.X {
		r.Max.X = other.Max.X
	}
	if other.Max.Y > r.Max.Y {
		r.Max.Y = other.Max.Y
	}
}

// Translate shifts r in place by delta. No clipping is performed.
func (r *Rectangle) Translate(delta Point) {
	r.Min.X += delta.X
	r.Min.Y += delta.Y
	r.Max.X += delta.X
	r.Max.Y += delta.Y
}

// Translated returns a copy of r shifted by delta.
func (r Rectangle) Translated(delta Point) Rectangle {
	r.Translate(delta)
	return r
}

// Intersects reports whether r and other share any point.
func (r Rectangle) Intersects(other Rectangle) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

// Intersection returns the overlap of r and other, or the zero
// Rectangle when they are disjoint.
func (r Rectangle) Intersection(other Rectangle) Rectangle {
	if !r.Intersects(other) {
		return Rectangle{}
	}
	out := r
	if other.Min.X > out.Min.X {
		out.Min.X = other.Min.X
	}
	if other.Min.Y > out.Min.Y {
		out.Min.Y = other.Min.Y
	}
	if other.Max.X < out.Max.X {
		out.Max.X = other.Max.X
	}
	if other.Max.Y < out.Max.Y {
		out.Max.Y = other.Max.Y
	}
	return out
}

// Union returns the smallest rectangle containing both r and other.
func (r Rectangle) Union(other Rectangle) Rectangle {
	out := r
	out.Absorb(other)
	return out
}
