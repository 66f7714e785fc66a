package widgets

import (
	"github.com/go-folio/folio/pkg/device"
	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/font"
	"github.com/go-folio/folio/pkg/geom"
	"github.com/go-folio/folio/pkg/settings"
	"github.com/go-folio/folio/pkg/view"
)

// presetTimeFormat labels an entry with its capture time.
const presetTimeFormat = "Jan 2, 15:04"

// PresetsList is a horizontal row of saved frontlight presets with
// pagination arrows when the history exceeds one page. Entries load on
// tap and remove on hold; the list itself only consumes Page events.
type PresetsList struct {
	view.Base
	page int
	dpi  int
}

func NewPresetsList(ctx *device.Context, rect geom.Rectangle) *PresetsList {
	return &PresetsList{Base: view.NewBase(rect), dpi: ctx.DPI}
}

func (p *PresetsList) ID() view.ID {
	return view.IDPresetsList
}

// Update rebuilds the entry children from the preset history and
// requests a repaint of the whole row. Call it after every history
// mutation. A nil hub skips the repaint request, for use during
// initial construction when the window renders as a whole anyway.
func (p *PresetsList) Update(presets []settings.LightPreset, hub *view.Hub, fonts *font.Fonts) {
	rect := p.Rect()
	arrowWidth := 2 * fonts.Em()
	entryWidth := 10 * fonts.Em()

	available := rect.Width() - 2*arrowWidth
	perPage := available / entryWidth
	if perPage < 1 {
		perPage = 1
	}
	pages := (len(presets) + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	if p.page >= pages {
		p.page = pages - 1
	}
	if p.page < 0 {
		p.page = 0
	}

	var children []view.View

	if p.page > 0 {
		arrowRect := geom.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+arrowWidth, rect.Max.Y)
		children = append(children, &Preset{Base: view.NewBase(arrowRect), Kind: PagePreset{Dir: view.DirPrevious}, dpi: p.dpi})
	}

	start := p.page * perPage
	end := start + perPage
	if end > len(presets) {
		end = len(presets)
	}
	x := rect.Min.X + arrowWidth
	for i := start; i < end; i++ {
		entryRect := geom.Rect(x, rect.Min.Y, x+entryWidth, rect.Max.Y)
		kind := NormalPreset{
			Text:  presets[i].Timestamp.Format(presetTimeFormat),
			Index: i,
		}
		children = append(children, &Preset{Base: view.NewBase(entryRect), Kind: kind, dpi: p.dpi})
		x += entryWidth
	}

	if end < len(presets) {
		arrowRect := geom.Rect(rect.Max.X-arrowWidth, rect.Min.Y, rect.Max.X, rect.Max.Y)
		children = append(children, &Preset{Base: view.NewBase(arrowRect), Kind: PagePreset{Dir: view.DirNext}, dpi: p.dpi})
	}

	p.SetChildren(children)
	if hub != nil {
		hub.Send(view.Render{Rect: rect, Mode: display.UpdateGui})
	}
}

func (p *PresetsList) HandleEvent(evt view.Event, hub *view.Hub, bus *view.Bus, ctx *device.Context) bool {
	page, ok := evt.(view.Page)
	if !ok {
		return false
	}
	if page.Dir == view.DirNext {
		p.page++
	} else if p.page > 0 {
		p.page--
	}
	p.Update(ctx.Settings.FrontlightPresets, hub, ctx.Fonts)
	return true
}

func (p *PresetsList) Render(fb display.Framebuffer, fonts *font.Fonts) {
	display.FillRect(fb, p.Rect(), display.White)
}
