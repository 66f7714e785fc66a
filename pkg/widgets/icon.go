package widgets

import (
	"github.com/go-folio/folio/pkg/device"
	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/font"
	"github.com/go-folio/folio/pkg/geom"
	"github.com/go-folio/folio/pkg/view"
)

// iconGlyphs maps icon names to their glyphs.
var iconGlyphs = map[string]string{
	"close":       "×",
	"arrow-left":  "<",
	"arrow-right": ">",
	"check":       "*",
}

// Icon is a tappable glyph control, a Button with a symbol instead of
// a text label.
type Icon struct {
	view.Base
	Name   string
	Event  view.Event
	Active bool
	corner int
	dpi    int
}

func NewIcon(ctx *device.Context, rect geom.Rectangle, name string, evt view.Event) *Icon {
	return &Icon{Base: view.NewBase(rect), Name: name, Event: evt, dpi: ctx.DPI}
}

// WithCorners overrides the corner radius in device pixels.
func (i *Icon) WithCorners(radius int) *Icon {
	i.corner = radius
	return i
}

func (i *Icon) HandleEvent(evt view.Event, hub *view.Hub, bus *view.Bus, ctx *device.Context) bool {
	switch e := evt.(type) {
	case view.Finger:
		switch {
		case e.Status == view.FingerDown && i.Rect().Includes(e.Position):
			i.Active = true
			hub.Send(view.Render{Rect: i.Rect(), Mode: display.UpdateFast})
			return true
		case e.Status == view.FingerUp && i.Active:
			i.Active = false
			hub.Send(view.Render{Rect: i.Rect(), Mode: display.UpdateGui})
			return true
		}
	case view.Tap:
		if i.Rect().Includes(e.Center) {
			bus.Push(i.Event)
			return true
		}
	}
	return false
}

func (i *Icon) Render(fb display.Framebuffer, fonts *font.Fonts) {
	rect := i.Rect()
	radius := i.corner
	if radius == 0 {
		radius = ScaleByDPI(BorderRadiusMedium, i.dpi)
	}

	fill, ink := display.White, display.Black
	if i.Active {
		fill, ink = display.Black, display.White
	}
	display.DrawRoundedRect(fb, rect, radius, fill)

	glyph, ok := iconGlyphs[i.Name]
	if !ok {
		glyph = "?"
	}
	plan := fonts.Plan(glyph, 0)
	dx := AlignCenter.Offset(plan.Width, rect.Width(), 0)
	dy := (rect.Height() - fonts.XHeight()) / 2
	fonts.Render(fb, geom.Pt(rect.Min.X+dx, rect.Max.Y-dy), plan, ink)
}
