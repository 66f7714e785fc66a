// Package font is the text collaborator boundary: it lays out a string
// into a measured plan and blits the plan onto a drawing surface. The
// engine consumes only the plan's width and hands the plan back opaque;
// glyph internals stay behind golang.org/x/image/font.
package font

import (
	"image"
	"image/color"
	"image/draw"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/geom"
)

const ellipsis = "…"

// Fonts resolves faces and produces text plans. A single instance is
// created at startup and carried in the device context.
type Fonts struct {
	face xfont.Face
}

// NewFonts returns a Fonts backed by the bundled bitmap face.
func NewFonts() *Fonts {
	return &Fonts{face: basicfont.Face7x13}
}

// NewFontsWithFace returns a Fonts using the given face, e.g. an
// opentype face loaded from device storage.
func NewFontsWithFace(face xfont.Face) *Fonts {
	return &Fonts{face: face}
}

// TextPlan is a laid-out run: the (possibly truncated) text and its
// total advance width in pixels.
type TextPlan struct {
	Text  string
	Width int
	face  xfont.Face
}

// Plan lays out text, truncating with an ellipsis when the advance
// would exceed maxWidth. A maxWidth of zero or less means unbounded.
func (f *Fonts) Plan(text string, maxWidth int) TextPlan {
	width := f.measure(text)
	if maxWidth > 0 && width > maxWidth {
		runes := []rune(text)
		for len(runes) > 0 {
			runes = runes[:len(runes)-1]
			candidate := string(runes) + ellipsis
			if w := f.measure(candidate); w <= maxWidth {
				text, width = candidate, w
				break
			}
		}
		if len(runes) == 0 {
			text, width = "", 0
		}
	}
	return TextPlan{Text: text, Width: width, face: f.face}
}

// Em returns the advance width of "m", used as the layout padding unit.
func (f *Fonts) Em() int {
	return f.measure("m")
}

// XHeight returns the face's x-height in pixels.
func (f *Fonts) XHeight() int {
	return f.face.Metrics().XHeight.Ceil()
}

// Render draws the plan with its baseline origin at pt.
func (f *Fonts) Render(dst draw.Image, pt geom.Point, plan TextPlan, c display.Color) {
	face := plan.face
	if face == nil {
		face = f.face
	}
	drawer := &xfont.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Gray{Y: uint8(c)}),
		Face: face,
		Dot:  fixed.P(pt.X, pt.Y),
	}
	drawer.DrawString(plan.Text)
}

func (f *Fonts) measure(s string) int {
	return xfont.MeasureString(f.face, s).Ceil()
}
