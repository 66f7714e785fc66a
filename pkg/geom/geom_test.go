package geom

import "testing"

func TestRectangle_Includes_ClosedIntervals(t *testing.T) {
	r := Rect(10, 20, 30, 40)

	corners := []Point{Pt(10, 20), Pt(30, 40), Pt(10, 40), Pt(30, 20)}
	for _, p := range corners {
		if !r.Includes(p) {
			t.Errorf("expected corner %v to be included", p)
		}
	}
	outside := []Point{Pt(9, 20), Pt(31, 40), Pt(10, 19), Pt(30, 41)}
	for _, p := range outside {
		if r.Includes(p) {
			t.Errorf("expected %v to be outside", p)
		}
	}
}

func TestRectangle_IsEmpty(t *testing.T) {
	cases := []struct {
		rect  Rectangle
		empty bool
	}{
		{Rectangle{}, true},
		{Rect(10, 10, 10, 20), true},
		{Rect(10, 10, 20, 10), true},
		{Rect(10, 10, 5, 20), true},
		{Rect(0, 0, 1, 1), false},
	}
	for _, c := range cases {
		if got := c.rect.IsEmpty(); got != c.empty {
			t.Errorf("IsEmpty(%v) = %v, want %v", c.rect, got, c.empty)
		}
	}
}

func TestRectangle_Absorb_Minimality(t *testing.T) {
	r := Rect(10, 10, 20, 20)
	r.Absorb(Rect(15, 5, 25, 18))

	want := Rect(10, 5, 25, 20)
	if r != want {
		t.Fatalf("Absorb = %v, want %v", r, want)
	}
}

func TestRectangle_Absorb_EmptyReceiverAdoptsOperand(t *testing.T) {
	var damage Rectangle
	damage.Absorb(Rect(3, 4, 5, 6))
	if damage != Rect(3, 4, 5, 6) {
		t.Fatalf("empty receiver should adopt operand, got %v", damage)
	}
}

func TestRectangle_Absorb_EmptyOperandIsNoOp(t *testing.T) {
	r := Rect(10, 10, 20, 20)
	r.Absorb(Rectangle{})
	if r != Rect(10, 10, 20, 20) {
		t.Fatalf("absorbing empty should not change receiver, got %v", r)
	}
}

func TestRectangle_Translate(t *testing.T) {
	r := Rect(1, 2, 3, 4)
	r.Translate(Pt(10, -2))
	if r != Rect(11, 0, 13, 2) {
		t.Fatalf("Translate = %v", r)
	}

	base := Rect(1, 2, 3, 4)
	moved := base.Translated(Pt(5, 5))
	if base != Rect(1, 2, 3, 4) {
		t.Fatalf("Translated mutated the receiver: %v", base)
	}
	if moved != Rect(6, 7, 8, 9) {
		t.Fatalf("Translated = %v", moved)
	}
}

func TestRectangle_IntersectsAndIntersection(t *testing.T) {
	a := Rect(0, 0, 10, 10)
	b := Rect(5, 5, 15, 15)
	if !a.Intersects(b) {
		t.Fatal("expected overlap")
	}
	if got := a.Intersection(b); got != Rect(5, 5, 10, 10) {
		t.Fatalf("Intersection = %v", got)
	}

	// Shared edge counts: intervals are closed.
	c := Rect(10, 0, 20, 10)
	if !a.Intersects(c) {
		t.Fatal("expected edge-sharing rectangles to intersect")
	}

	d := Rect(11, 11, 20, 20)
	if a.Intersects(d) {
		t.Fatal("expected disjoint rectangles not to intersect")
	}
	if got := a.Intersection(d); got != (Rectangle{}) {
		t.Fatalf("Intersection of disjoint = %v, want zero", got)
	}
}

func TestRectangle_Union(t *testing.T) {
	a := Rect(0, 0, 10, 10)
	b := Rect(20, 5, 30, 8)
	if got := a.Union(b); got != Rect(0, 0, 30, 10) {
		t.Fatalf("Union = %v", got)
	}
	if a != Rect(0, 0, 10, 10) {
		t.Fatalf("Union mutated the receiver: %v", a)
	}
}
