package widgets

import (
	"github.com/go-folio/folio/pkg/device"
	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/font"
	"github.com/go-folio/folio/pkg/geom"
	"github.com/go-folio/folio/pkg/view"
)

// Filler is an opaque uniform background rectangle. The root of a
// screen is typically a white Filler the overlays stack onto.
type Filler struct {
	view.Base
	Color display.Color
}

func NewFiller(rect geom.Rectangle, c display.Color) *Filler {
	return &Filler{Base: view.NewBase(rect), Color: c}
}

func (f *Filler) HandleEvent(evt view.Event, hub *view.Hub, bus *view.Bus, ctx *device.Context) bool {
	return false
}

func (f *Filler) Render(fb display.Framebuffer, fonts *font.Fonts) {
	display.FillRect(fb, f.Rect(), f.Color)
}

func (f *Filler) IsBackground() bool {
	return true
}
