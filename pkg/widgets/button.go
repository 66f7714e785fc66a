package widgets

import (
	"github.com/go-folio/folio/pkg/device"
	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/font"
	"github.com/go-folio/folio/pkg/geom"
	"github.com/go-folio/folio/pkg/view"
)

// Button is a tappable text control. A press highlights it with the
// fast refresh class; a completed tap pushes the configured event onto
// the Bus. Disabled buttons draw grayed and emit nothing.
type Button struct {
	view.Base
	Text     string
	Event    view.Event
	Disabled bool
	Active   bool
	id       view.ID
	dpi      int
}

func NewButton(ctx *device.Context, rect geom.Rectangle, text string, evt view.Event) *Button {
	return &Button{Base: view.NewBase(rect), Text: text, Event: evt, dpi: ctx.DPI}
}

// WithID tags the button with a logical identity for cross-tree lookup.
func (b *Button) WithID(id view.ID) *Button {
	b.id = id
	return b
}

func (b *Button) ID() view.ID {
	return b.id
}

// SetDisabled flips the disabled state and requests a repaint.
func (b *Button) SetDisabled(disabled bool, hub *view.Hub) {
	if b.Disabled == disabled {
		return
	}
	b.Disabled = disabled
	hub.Send(view.Render{Rect: b.Rect(), Mode: display.UpdateGui})
}

func (b *Button) HandleEvent(evt view.Event, hub *view.Hub, bus *view.Bus, ctx *device.Context) bool {
	switch e := evt.(type) {
	case view.Finger:
		switch {
		case e.Status == view.FingerDown && b.Rect().Includes(e.Position) && !b.Disabled:
			b.Active = true
			hub.Send(view.Render{Rect: b.Rect(), Mode: display.UpdateFast})
			return true
		case e.Status == view.FingerUp && b.Active:
			b.Active = false
			hub.Send(view.Render{Rect: b.Rect(), Mode: display.UpdateGui})
			return true
		}
	case view.Tap:
		if b.Rect().Includes(e.Center) && !b.Disabled {
			bus.Push(b.Event)
			return true
		}
	}
	return false
}

func (b *Button) Render(fb display.Framebuffer, fonts *font.Fonts) {
	rect := b.Rect()
	radius := ScaleByDPI(BorderRadiusMedium, b.dpi)
	thickness := ScaleByDPI(ThicknessLarge, b.dpi)

	fill, ink := display.White, display.Black
	if b.Active {
		fill, ink = display.Black, display.White
	}
	border := display.BorderSpec{Thickness: thickness, Color: display.Black}
	if b.Disabled {
		ink = display.GrayDisabled
		border.Color = display.GrayDisabled
	}
	display.DrawRoundedRectWithBorder(fb, rect, radius, border, fill)

	padding := fonts.Em()
	plan := fonts.Plan(b.Text, rect.Width()-padding)
	dx := AlignCenter.Offset(plan.Width, rect.Width(), padding/2)
	dy := (rect.Height() - fonts.XHeight()) / 2
	fonts.Render(fb, geom.Pt(rect.Min.X+dx, rect.Max.Y-dy), plan, ink)
}
