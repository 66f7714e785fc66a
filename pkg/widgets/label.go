package widgets

import (
	"github.com/go-folio/folio/pkg/device"
	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/font"
	"github.com/go-folio/folio/pkg/geom"
	"github.com/go-folio/folio/pkg/view"
)

// Label is a static, non-interactive text node.
type Label struct {
	view.Base
	Text  string
	Align Align
}

func NewLabel(rect geom.Rectangle, text string, align Align) *Label {
	return &Label{Base: view.NewBase(rect), Text: text, Align: align}
}

// Update replaces the text and requests a crisp repaint.
func (l *Label) Update(text string, hub *view.Hub) {
	l.Text = text
	hub.Send(view.Render{Rect: l.Rect(), Mode: display.UpdateGui})
}

func (l *Label) HandleEvent(evt view.Event, hub *view.Hub, bus *view.Bus, ctx *device.Context) bool {
	return false
}

func (l *Label) Render(fb display.Framebuffer, fonts *font.Fonts) {
	rect := l.Rect()
	display.FillRect(fb, rect, display.White)

	padding := fonts.Em()
	plan := fonts.Plan(l.Text, rect.Width()-padding)

	dx := l.Align.Offset(plan.Width, rect.Width(), padding/2)
	dy := (rect.Height() - fonts.XHeight()) / 2
	fonts.Render(fb, geom.Pt(rect.Min.X+dx, rect.Max.Y-dy), plan, display.Black)
}
