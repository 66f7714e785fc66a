package widgets

import (
	"github.com/go-folio/folio/pkg/device"
	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/font"
	"github.com/go-folio/folio/pkg/geom"
	"github.com/go-folio/folio/pkg/view"
)

// Slider is a horizontal continuous control. Dragging repaints the
// knob under the fast refresh class and reports the value through
// Slider events on the Bus; releasing reports the final value with
// FingerUp and repaints crisply.
type Slider struct {
	view.Base
	SliderID view.SliderID
	Value    float64
	Min      float64
	Max      float64
	active   bool
	dpi      int
}

func NewSlider(ctx *device.Context, rect geom.Rectangle, id view.SliderID, value, min, max float64) *Slider {
	if max <= min {
		max = min + 1
	}
	return &Slider{Base: view.NewBase(rect), SliderID: id, Value: value, Min: min, Max: max, dpi: ctx.DPI}
}

func (s *Slider) HandleEvent(evt view.Event, hub *view.Hub, bus *view.Bus, ctx *device.Context) bool {
	finger, ok := evt.(view.Finger)
	if !ok {
		return false
	}
	switch finger.Status {
	case view.FingerDown:
		if !s.Rect().Includes(finger.Position) {
			return false
		}
		s.active = true
		s.Value = s.valueAt(finger.Position.X)
		hub.Send(view.Render{Rect: s.Rect(), Mode: display.UpdateFast})
		bus.Push(view.Slider{ID: s.SliderID, Value: s.Value, Status: view.FingerDown})
		return true
	case view.FingerMotion:
		if !s.active {
			return false
		}
		s.Value = s.valueAt(finger.Position.X)
		hub.Send(view.Render{Rect: s.Rect(), Mode: display.UpdateFast})
		bus.Push(view.Slider{ID: s.SliderID, Value: s.Value, Status: view.FingerMotion})
		return true
	case view.FingerUp:
		if !s.active {
			return false
		}
		s.active = false
		s.Value = s.valueAt(finger.Position.X)
		hub.Send(view.Render{Rect: s.Rect(), Mode: display.UpdateGui})
		bus.Push(view.Slider{ID: s.SliderID, Value: s.Value, Status: view.FingerUp})
		return true
	}
	return false
}

// SetValue moves the knob programmatically (e.g. when a preset is
// loaded) and requests a crisp repaint.
func (s *Slider) SetValue(value float64, hub *view.Hub) {
	s.Value = clamp(value, s.Min, s.Max)
	hub.Send(view.Render{Rect: s.Rect(), Mode: display.UpdateGui})
}

// valueAt maps a screen x coordinate to the control's range.
func (s *Slider) valueAt(x int) float64 {
	rect := s.Rect()
	knob := s.knobRadius()
	lo, hi := rect.Min.X+knob, rect.Max.X-knob
	if hi <= lo {
		return s.Min
	}
	fraction := float64(x-lo) / float64(hi-lo)
	return clamp(s.Min+fraction*(s.Max-s.Min), s.Min, s.Max)
}

func (s *Slider) knobRadius() int {
	return ScaleByDPI(BorderRadiusMedium, s.dpi)
}

func (s *Slider) Render(fb display.Framebuffer, fonts *font.Fonts) {
	rect := s.Rect()
	display.FillRect(fb, rect, display.White)

	knob := s.knobRadius()
	thickness := ScaleByDPI(ThicknessLarge, s.dpi)
	midY := (rect.Min.Y + rect.Max.Y) / 2

	track := geom.Rect(rect.Min.X+knob, midY-thickness/2, rect.Max.X-knob, midY+thickness/2)
	display.FillRect(fb, track, display.Black)

	lo, hi := rect.Min.X+knob, rect.Max.X-knob
	fraction := (s.Value - s.Min) / (s.Max - s.Min)
	centerX := lo + int(fraction*float64(hi-lo)+0.5)
	knobRect := geom.Rect(centerX-knob, midY-knob, centerX+knob, midY+knob)
	display.DrawRoundedRect(fb, knobRect, knob, display.Black)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
