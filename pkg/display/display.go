// Package display defines the e-paper refresh policy and the drawing
// surface contract the view tree renders against.
//
// The display hardware offers a small set of legal partial-refresh
// classes with very different costs. A full repaint flashes the panel
// and is visibly slow; the partial classes trade fidelity for latency.
// The engine never touches the hardware itself: it attaches an
// UpdateMode to each render request and an external collaborator
// interprets it.
package display

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/go-folio/folio/pkg/geom"
)

// UpdateMode selects the refresh class for a committed region.
type UpdateMode int

const (
	// UpdateFull repaints the whole waveform cycle. Ghost-free and
	// crisp, but the panel flashes black. Reserved for page turns and
	// recovery from accumulated ghosting.
	UpdateFull UpdateMode = iota
	// UpdateGui is the partial class for content the user directly
	// manipulated or that must stay crisp: text, borders, final
	// control positions.
	UpdateGui
	// UpdateFast is the low-fidelity class for ephemeral interaction
	// feedback such as press highlights and slider drags. Near-zero
	// latency, tolerates artifacts.
	UpdateFast
)

func (m UpdateMode) String() string {
	switch m {
	case UpdateFull:
		return "full"
	case UpdateGui:
		return "gui"
	case UpdateFast:
		return "fast"
	default:
		return "unknown"
	}
}

// Color is an 8-bit gray level in the device's pixel space.
type Color uint8

const (
	Black Color = 0x00
	White Color = 0xff
	// GrayDisabled is the level used for disabled control chrome.
	GrayDisabled Color = 0xaa
)

// BorderSpec describes a rectangle border.
type BorderSpec struct {
	Thickness int
	Color     Color
}

// Framebuffer is the drawing surface collaborator. Rendering writes
// pixels synchronously through the draw.Image side; Update commits a
// region to the panel under the given refresh class. Commits are
// applied in submission order.
type Framebuffer interface {
	draw.Image
	Update(rect geom.Rectangle, mode UpdateMode) error
}

// ImageRect converts a geometry rectangle to its stdlib image
// counterpart. The Max corner of a geom.Rectangle is inclusive, so the
// image rectangle extends one pixel past it on both axes.
func ImageRect(r geom.Rectangle) image.Rectangle {
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X+1, r.Max.Y+1)
}

// FillRect paints the rectangle with a uniform gray level.
func FillRect(dst draw.Image, r geom.Rectangle, c Color) {
	draw.Draw(dst, ImageRect(r).Intersect(dst.Bounds()), image.NewUniform(color.Gray{Y: uint8(c)}), image.Point{}, draw.Src)
}

// DrawRoundedRect paints a filled rectangle with circular corners of
// the given radius.
func DrawRoundedRect(dst draw.Image, r geom.Rectangle, radius int, fill Color) {
	drawRounded(dst, r, radius, nil, fill)
}

// DrawRoundedRectWithBorder paints a filled rounded rectangle with a
// border stroked inside the rectangle bounds.
func DrawRoundedRectWithBorder(dst draw.Image, r geom.Rectangle, radius int, border BorderSpec, fill Color) {
	drawRounded(dst, r, radius, &border, fill)
}

func drawRounded(dst draw.Image, r geom.Rectangle, radius int, border *BorderSpec, fill Color) {
	if r.IsEmpty() {
		return
	}
	if radius < 0 {
		radius = 0
	}
	maxRadius := minInt(r.Width(), r.Height())/2 + 1
	if radius > maxRadius {
		radius = maxRadius
	}
	bounds := ImageRect(r).Intersect(dst.Bounds())
	fillColor := color.Gray{Y: uint8(fill)}
	var borderColor color.Gray
	thickness := 0
	if border != nil {
		borderColor = color.Gray{Y: uint8(border.Color)}
		thickness = border.Thickness
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := cornerDistance(r, geom.Pt(x, y), radius)
			if d > 0 {
				continue
			}
			if thickness > 0 && (d > -thickness || onEdgeBand(r, geom.Pt(x, y), thickness)) {
				dst.Set(x, y, borderColor)
			} else {
				dst.Set(x, y, fillColor)
			}
		}
	}
}

// cornerDistance returns a negative value for pixels inside the rounded
// outline, zero on it, positive outside. Away from the corner arcs the
// interior is uniformly -radius-1.
func cornerDistance(r geom.Rectangle, p geom.Point, radius int) int {
	cx, inX := cornerAxis(p.X, r.Min.X+radius, r.Max.X-radius)
	cy, inY := cornerAxis(p.Y, r.Min.Y+radius, r.Max.Y-radius)
	if inX || inY {
		return -radius - 1
	}
	dx, dy := p.X-cx, p.Y-cy
	return isqrt(dx*dx+dy*dy) - radius
}

func cornerAxis(v, lo, hi int) (center int, inside bool) {
	if v < lo {
		return lo, false
	}
	if v > hi {
		return hi, false
	}
	return v, true
}

func onEdgeBand(r geom.Rectangle, p geom.Point, thickness int) bool {
	return p.X < r.Min.X+thickness || p.X > r.Max.X-thickness ||
		p.Y < r.Min.Y+thickness || p.Y > r.Max.Y-thickness
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
