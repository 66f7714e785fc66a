package view

import (
	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/geom"
)

// Event is a tagged immutable value describing a raw input occurrence,
// a derived gesture, or an application-level request. Events carry no
// identity beyond tag and payload.
type Event interface {
	isEvent()
}

// FingerStatus distinguishes the phases of one touch.
type FingerStatus int

const (
	FingerDown FingerStatus = iota
	FingerMotion
	FingerUp
)

// Direction is a swipe or pagination direction.
type Direction int

const (
	DirNext Direction = iota
	DirPrevious
)

// SliderID names a continuous control.
type SliderID int

const (
	SliderLightIntensity SliderID = iota
	SliderLightWarmth
)

// Label returns the user-facing name of the control.
func (id SliderID) Label() string {
	switch id {
	case SliderLightWarmth:
		return "Warmth"
	default:
		return "Intensity"
	}
}

// Finger is a raw touch sample. ID increases monotonically and
// distinguishes overlapping touches.
type Finger struct {
	ID       int64
	Status   FingerStatus
	Position geom.Point
}

// Tap is a derived single-tap gesture.
type Tap struct {
	Center geom.Point
}

// HoldFinger is a derived long-press gesture.
type HoldFinger struct {
	Center geom.Point
}

// Swipe is a derived swipe gesture.
type Swipe struct {
	Dir   Direction
	Start geom.Point
	End   geom.Point
}

// Render requests that a rectangle be repainted and committed under
// the given refresh class.
type Render struct {
	Rect geom.Rectangle
	Mode display.UpdateMode
}

// Expose requests that a rectangle be erased: content was removed and
// whatever lies beneath must repaint. It carries no new pixels.
type Expose struct {
	Rect geom.Rectangle
}

// Close requests removal of the named overlay.
type Close struct {
	ID ID
}

// Open requests attachment of the named overlay.
type Open struct {
	ID ID
}

// Save requests capturing the current frontlight state as a preset.
type Save struct{}

// Guess requests inferring frontlight levels from the preset history.
type Guess struct{}

// LoadPreset requests restoring the preset at Index.
type LoadPreset struct {
	Index int
}

// RemovePreset requests deleting the preset at Index.
type RemovePreset struct {
	Index int
}

// Page requests pagination of a list widget.
type Page struct {
	Dir Direction
}

// Slider reports a continuous control's value during and after a drag.
type Slider struct {
	ID     SliderID
	Value  float64
	Status FingerStatus
}

// NetworkChanged is a broadcast lifecycle event: it is delivered to
// every node regardless of consumption.
type NetworkChanged struct {
	Online bool
}

func (Finger) isEvent()         {}
func (Tap) isEvent()            {}
func (HoldFinger) isEvent()     {}
func (Swipe) isEvent()          {}
func (Render) isEvent()         {}
func (Expose) isEvent()         {}
func (Close) isEvent()          {}
func (Open) isEvent()           {}
func (Save) isEvent()           {}
func (Guess) isEvent()          {}
func (LoadPreset) isEvent()     {}
func (RemovePreset) isEvent()   {}
func (Page) isEvent()           {}
func (Slider) isEvent()         {}
func (NetworkChanged) isEvent() {}

func (NetworkChanged) isBroadcast() {}

// broadcaster marks events delivered to every node.
type broadcaster interface {
	isBroadcast()
}

// IsBroadcast reports whether evt is delivered tree-wide regardless of
// consumption.
func IsBroadcast(evt Event) bool {
	_, ok := evt.(broadcaster)
	return ok
}

// Position extracts the screen position of a positional event. The
// second result is false for application-level events.
func Position(evt Event) (geom.Point, bool) {
	switch e := evt.(type) {
	case Finger:
		return e.Position, true
	case Tap:
		return e.Center, true
	case HoldFinger:
		return e.Center, true
	case Swipe:
		return e.Start, true
	}
	return geom.Point{}, false
}
