package widgets

import (
	"github.com/go-folio/folio/pkg/device"
	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/font"
	"github.com/go-folio/folio/pkg/geom"
	"github.com/go-folio/folio/pkg/view"
)

// PresetKind distinguishes the two entry shapes in a presets row.
type PresetKind interface {
	isPresetKind()
}

// NormalPreset is a saved-preset entry: tapping loads it, holding
// removes it. Index addresses the preset in the settings history.
type NormalPreset struct {
	Text  string
	Index int
}

// PagePreset is a pagination arrow at either end of the row.
type PagePreset struct {
	Dir view.Direction
}

func (NormalPreset) isPresetKind() {}
func (PagePreset) isPresetKind()   {}

// Preset is one entry in a PresetsList.
type Preset struct {
	view.Base
	Kind   PresetKind
	active bool
	dpi    int
}

func NewPreset(ctx *device.Context, rect geom.Rectangle, kind PresetKind) *Preset {
	return &Preset{Base: view.NewBase(rect), Kind: kind, dpi: ctx.DPI}
}

func (p *Preset) HandleEvent(evt view.Event, hub *view.Hub, bus *view.Bus, ctx *device.Context) bool {
	switch e := evt.(type) {
	case view.Finger:
		switch {
		case e.Status == view.FingerDown && p.Rect().Includes(e.Position):
			p.active = true
			hub.Send(view.Render{Rect: p.Rect(), Mode: display.UpdateFast})
			return true
		case e.Status == view.FingerUp && p.active:
			p.active = false
			hub.Send(view.Render{Rect: p.Rect(), Mode: display.UpdateGui})
			return true
		}
	case view.Tap:
		if !p.Rect().Includes(e.Center) {
			return false
		}
		switch kind := p.Kind.(type) {
		case NormalPreset:
			bus.Push(view.LoadPreset{Index: kind.Index})
		case PagePreset:
			bus.Push(view.Page{Dir: kind.Dir})
		}
		return true
	case view.HoldFinger:
		if !p.Rect().Includes(e.Center) {
			return false
		}
		if kind, ok := p.Kind.(NormalPreset); ok {
			bus.Push(view.RemovePreset{Index: kind.Index})
		}
		return true
	}
	return false
}

func (p *Preset) Render(fb display.Framebuffer, fonts *font.Fonts) {
	rect := p.Rect()

	ink := display.Black
	if p.active {
		radius := ScaleByDPI(BorderRadiusMedium, p.dpi)
		display.DrawRoundedRect(fb, rect, radius, display.Black)
		ink = display.White
	} else {
		display.FillRect(fb, rect, display.White)
	}

	text := "…"
	switch kind := p.Kind.(type) {
	case NormalPreset:
		text = kind.Text
	case PagePreset:
		if kind.Dir == view.DirPrevious {
			text = "<"
		} else {
			text = ">"
		}
	}

	padding := fonts.Em()
	plan := fonts.Plan(text, rect.Width()-padding)
	dx := AlignCenter.Offset(plan.Width, rect.Width(), padding/2)
	dy := (rect.Height() - fonts.XHeight()) / 2
	fonts.Render(fb, geom.Pt(rect.Min.X+dx, rect.Max.Y-dy), plan, ink)
}
