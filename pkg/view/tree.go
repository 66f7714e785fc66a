package view

import "github.com/go-folio/folio/pkg/geom"

// Shift translates a node's rectangle by delta, then recursively every
// descendant by the same delta. Layout code uses it to slide whole
// panels instead of teaching each widget about its neighbours.
func Shift(v View, delta geom.Point) {
	rect := v.Rect()
	rect.Translate(delta)
	v.SetRect(rect)
	for _, child := range v.Children() {
		Shift(child, delta)
	}
}

// Locate scans the immediate children (not recursively) for the first
// child of concrete kind T. Lookups by kind tolerate child lists whose
// length and ordering vary with device capability, which positional
// indices do not.
func Locate[T View](v View) (int, bool) {
	for i, child := range v.Children() {
		if _, ok := child.(T); ok {
			return i, true
		}
	}
	return 0, false
}

// ChildAs returns the child at index as kind T. It is the sanctioned
// replacement for unchecked positional access: the assertion failing
// yields false, never a panic.
func ChildAs[T View](v View, index int) (T, bool) {
	var zero T
	children := v.Children()
	if index < 0 || index >= len(children) {
		return zero, false
	}
	child, ok := children[index].(T)
	return child, ok
}

// LocateByID scans the immediate children for the first child with the
// given logical identity. Identity uniqueness among siblings is a
// caller invariant; a duplicate yields first-match-wins.
func LocateByID(v View, id ID) (int, bool) {
	for i, child := range v.Children() {
		if Identity(child) == id {
			return i, true
		}
	}
	return 0, false
}

// OverlappingRectangle returns the true covering bound of a subtree:
// the node's own rectangle with every descendant's absorbed, including
// children that extend past the nominal parent bound. Structural
// changes use it to compute the exposure rectangle sent to the display.
func OverlappingRectangle(v View) geom.Rectangle {
	rect := v.Rect()
	for _, child := range v.Children() {
		rect.Absorb(OverlappingRectangle(child))
	}
	return rect
}
