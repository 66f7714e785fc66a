package font

import (
	"strings"
	"testing"

	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/geom"
)

func TestPlan_UnboundedKeepsText(t *testing.T) {
	fonts := NewFonts()
	plan := fonts.Plan("Frontlight", 0)
	if plan.Text != "Frontlight" {
		t.Fatalf("Text = %q", plan.Text)
	}
	if plan.Width <= 0 {
		t.Fatalf("Width = %d, want positive", plan.Width)
	}
}

func TestPlan_TruncatesWithEllipsis(t *testing.T) {
	fonts := NewFonts()
	full := fonts.Plan("a very long preset caption", 0)
	maxWidth := full.Width / 2

	plan := fonts.Plan("a very long preset caption", maxWidth)
	if plan.Width > maxWidth {
		t.Fatalf("Width = %d exceeds max %d", plan.Width, maxWidth)
	}
	if !strings.HasSuffix(plan.Text, "…") {
		t.Fatalf("expected an ellipsis suffix, got %q", plan.Text)
	}
}

func TestPlan_ImpossibleWidthYieldsEmpty(t *testing.T) {
	fonts := NewFonts()
	plan := fonts.Plan("abc", 1)
	if plan.Text != "" || plan.Width != 0 {
		t.Fatalf("expected an empty plan, got %q width %d", plan.Text, plan.Width)
	}
}

func TestMetrics_ArePositive(t *testing.T) {
	fonts := NewFonts()
	if fonts.Em() <= 0 {
		t.Errorf("Em = %d", fonts.Em())
	}
	if fonts.XHeight() <= 0 {
		t.Errorf("XHeight = %d", fonts.XHeight())
	}
}

func TestRender_PaintsInk(t *testing.T) {
	fonts := NewFonts()
	fb := display.NewImageFramebuffer(100, 40)
	plan := fonts.Plan("mm", 0)

	fonts.Render(fb, geom.Pt(10, 20), plan, display.Black)

	painted := false
	for y := 0; y < 40 && !painted; y++ {
		for x := 0; x < 100; x++ {
			if fb.GrayAt(x, y).Y != 0xff {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Fatal("expected rendered glyphs to change pixels")
	}
}
