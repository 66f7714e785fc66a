// Package widgets provides the concrete leaf and list nodes the
// composite windows are assembled from. Every widget satisfies the
// view contract: it owns its rectangle, consumes only events it can
// place, and follows every visible mutation with exactly one render or
// expose request covering at least the affected rectangle.
package widgets

// Stroke and corner dimensions in pixels at the 300 DPI reference
// density; scale with ScaleByDPI.
const (
	ThicknessLarge     = 3.0
	BorderRadiusMedium = 9.0
)

// ScaleByDPI converts a dimension at the reference density to device
// pixels.
func ScaleByDPI(value float64, dpi int) int {
	scaled := value * float64(dpi) / 300.0
	if scaled < 1 {
		return 1
	}
	return int(scaled + 0.5)
}

// Align positions content horizontally inside a box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Offset returns the left inset for content of the given width.
func (a Align) Offset(contentWidth, boxWidth, padding int) int {
	switch a {
	case AlignCenter:
		return (boxWidth - contentWidth) / 2
	case AlignRight:
		return boxWidth - contentWidth - padding
	default:
		return padding
	}
}
