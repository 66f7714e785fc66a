package frontlight

import (
	"time"

	"github.com/go-folio/folio/pkg/device"
	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/font"
	"github.com/go-folio/folio/pkg/geom"
	"github.com/go-folio/folio/pkg/settings"
	"github.com/go-folio/folio/pkg/view"
	"github.com/go-folio/folio/pkg/widgets"
)

const (
	labelSave  = "Save"
	labelGuess = "Guess"
	labelTitle = "Frontlight"
)

// Window is the modal frontlight panel: a close icon, a title,
// intensity (and, with natural-light hardware, warmth) sliders,
// Save/Guess buttons, and an optional presets row that appears with
// the first saved preset. It is a composite node built entirely from
// the generic tree machinery and the leaf widgets.
type Window struct {
	view.Base
	smallHeight int
	padding     int
	thickness   int
	dpi         int
}

// NewWindow builds the window centered on the panel described by ctx.
// Tree shape depends on device capability: no warmth hardware means no
// warmth row, and an empty preset history means no presets row.
func NewWindow(ctx *device.Context) *Window {
	fonts := ctx.Fonts
	presets := ctx.Settings.FrontlightPresets
	levels := ctx.Frontlight.Levels()

	padding := fonts.Em()
	smallHeight := 4 * padding
	thickness := widgets.ScaleByDPI(widgets.ThicknessLarge, ctx.DPI)
	borderRadius := widgets.ScaleByDPI(widgets.BorderRadiusMedium, ctx.DPI)

	windowWidth := ctx.Dims.X - 2*padding
	windowHeight := smallHeight*3 + 2*padding
	if ctx.HasNaturalLight {
		windowHeight += smallHeight
	}
	if len(presets) > 0 {
		windowHeight += smallHeight
	}

	dx := (ctx.Dims.X - windowWidth) / 2
	dy := (ctx.Dims.Y - windowHeight) / 3
	rect := geom.Rect(dx, dy, dx+windowWidth, dy+windowHeight)

	w := &Window{
		Base:        view.NewBase(rect),
		smallHeight: smallHeight,
		padding:     padding,
		thickness:   thickness,
		dpi:         ctx.DPI,
	}

	var children []view.View

	closeIcon := widgets.NewIcon(ctx,
		geom.Rect(rect.Max.X-smallHeight, rect.Min.Y+thickness,
			rect.Max.X-thickness, rect.Min.Y+smallHeight),
		"close", view.Close{ID: view.IDFrontlight}).
		WithCorners(borderRadius - thickness)
	children = append(children, closeIcon)

	title := widgets.NewLabel(
		geom.Rect(rect.Min.X+smallHeight, rect.Min.Y+thickness,
			rect.Max.X-smallHeight, rect.Min.Y+smallHeight),
		labelTitle, widgets.AlignCenter)
	children = append(children, title)

	buttonY := rect.Min.Y + 2*smallHeight

	if ctx.HasNaturalLight {
		maxLabelWidth := maxPlanWidth(fonts,
			view.SliderLightIntensity.Label(), view.SliderLightWarmth.Label())

		for i, sliderID := range []view.SliderID{view.SliderLightIntensity, view.SliderLightWarmth} {
			minY := rect.Min.Y + (i+1)*smallHeight
			rowLabel := widgets.NewLabel(
				geom.Rect(rect.Min.X+padding, minY,
					rect.Min.X+2*padding+maxLabelWidth, minY+smallHeight),
				sliderID.Label(), widgets.AlignRight)
			children = append(children, rowLabel)

			value := levels.Intensity
			if sliderID == view.SliderLightWarmth {
				value = levels.Warmth
			}
			slider := widgets.NewSlider(ctx,
				geom.Rect(rect.Min.X+maxLabelWidth+3*padding, minY,
					rect.Max.X-padding, minY+smallHeight),
				sliderID, value, 0, 100)
			children = append(children, slider)
		}
		buttonY += smallHeight
	} else {
		minY := rect.Min.Y + smallHeight
		slider := widgets.NewSlider(ctx,
			geom.Rect(rect.Min.X+padding, minY, rect.Max.X-padding, minY+smallHeight),
			view.SliderLightIntensity, levels.Intensity, 0, 100)
		children = append(children, slider)
	}

	maxButtonWidth := maxPlanWidth(fonts, labelSave, labelGuess)
	buttonHeight := 4 * fonts.XHeight()

	save := widgets.NewButton(ctx,
		geom.Rect(rect.Min.X+3*padding, buttonY+smallHeight-buttonHeight,
			rect.Min.X+5*padding+maxButtonWidth, buttonY+smallHeight),
		labelSave, view.Save{}).
		WithID(view.IDSaveButton)
	children = append(children, save)

	guess := widgets.NewButton(ctx,
		geom.Rect(rect.Max.X-5*padding-maxButtonWidth, buttonY+smallHeight-buttonHeight,
			rect.Max.X-3*padding, buttonY+smallHeight),
		labelGuess, view.Guess{}).
		WithID(view.IDGuessButton)
	guess.Disabled = len(presets) < 2
	children = append(children, guess)

	if len(presets) > 0 {
		list := widgets.NewPresetsList(ctx, w.presetsRect())
		list.Update(presets, nil, fonts)
		children = append(children, list)
	}

	w.SetChildren(children)
	return w
}

func (w *Window) ID() view.ID {
	return view.IDFrontlight
}

func (w *Window) IsBackground() bool {
	return true
}

func (w *Window) HandleEvent(evt view.Event, hub *view.Hub, bus *view.Bus, ctx *device.Context) bool {
	switch e := evt.(type) {
	case view.Slider:
		if e.Status != view.FingerUp {
			return false
		}
		switch e.ID {
		case view.SliderLightIntensity:
			ctx.Frontlight.SetIntensity(e.Value)
		case view.SliderLightWarmth:
			ctx.Frontlight.SetWarmth(e.Value)
		}
		return true

	case view.Tap:
		// The window is modal: a tap inside it that no control claimed
		// dies here. Taps that miss the window entirely never reach it;
		// the engine dismisses the topmost modal on those.
		return true

	case view.HoldFinger, view.Swipe:
		return true

	case view.Save:
		preset := settings.LightPreset{
			Timestamp:        time.Now(),
			LightsensorLevel: ctx.AmbientLevel(),
			LightLevels:      ctx.Frontlight.Levels(),
		}
		ctx.Settings.FrontlightPresets = append(ctx.Settings.FrontlightPresets, preset)
		ctx.Settings.SortPresets()
		switch len(ctx.Settings.FrontlightPresets) {
		case 1:
			w.togglePresets(true, hub, ctx)
		case 2:
			w.setGuessDisabled(false, hub)
			w.updatePresets(hub, ctx)
		default:
			w.updatePresets(hub, ctx)
		}
		return true

	case view.RemovePreset:
		presets := ctx.Settings.FrontlightPresets
		if e.Index >= 0 && e.Index < len(presets) {
			ctx.Settings.FrontlightPresets = append(presets[:e.Index], presets[e.Index+1:]...)
			if len(ctx.Settings.FrontlightPresets) == 0 {
				w.togglePresets(false, hub, ctx)
			} else {
				if len(ctx.Settings.FrontlightPresets) == 1 {
					w.setGuessDisabled(true, hub)
				}
				w.updatePresets(hub, ctx)
			}
		}
		return true

	case view.LoadPreset:
		presets := ctx.Settings.FrontlightPresets
		if e.Index >= 0 && e.Index < len(presets) {
			w.setFrontlightLevels(presets[e.Index].LightLevels, hub, ctx)
		}
		return true

	case view.Guess:
		if levels, ok := settings.GuessFrontlight(ctx.AmbientLevel(), ctx.Settings.FrontlightPresets); ok {
			w.setFrontlightLevels(levels, hub, ctx)
		}
		return true
	}
	return false
}

func (w *Window) Render(fb display.Framebuffer, fonts *font.Fonts) {
	borderRadius := widgets.ScaleByDPI(widgets.BorderRadiusMedium, w.dpi)
	display.DrawRoundedRectWithBorder(fb, w.Rect(), borderRadius,
		display.BorderSpec{Thickness: w.thickness, Color: display.Black}, display.White)
}

// togglePresets adds or removes the presets row. Adding shifts the
// whole window up by half the row height and grows its bottom by the
// full height, then renders the new footprint; removing pops the row,
// exposes the old footprint, and only then shifts and shrinks. Doing
// either half out of order leaves a visible seam.
func (w *Window) togglePresets(enable bool, hub *view.Hub, ctx *device.Context) {
	h := w.smallHeight
	if enable {
		view.Shift(w, geom.Pt(0, -h/2))
		rect := w.Rect()
		rect.Max.Y += h
		w.SetRect(rect)

		list := widgets.NewPresetsList(ctx, w.presetsRect())
		list.Update(ctx.Settings.FrontlightPresets, nil, ctx.Fonts)
		w.SetChildren(append(w.Children(), list))

		hub.Send(view.Render{Rect: w.Rect(), Mode: display.UpdateGui})
	} else {
		if i, ok := view.Locate[*widgets.PresetsList](w); ok {
			children := w.Children()
			w.SetChildren(append(children[:i:i], children[i+1:]...))
		}
		hub.Send(view.Expose{Rect: w.Rect()})
		view.Shift(w, geom.Pt(0, h/2))
		rect := w.Rect()
		rect.Max.Y -= h
		w.SetRect(rect)
	}
}

// presetsRect is the row slot at the current bottom of the window.
func (w *Window) presetsRect() geom.Rectangle {
	rect := w.Rect()
	return geom.Rect(
		rect.Min.X+w.thickness+4*w.padding,
		rect.Max.Y-w.smallHeight-2*w.padding,
		rect.Max.X-w.thickness-4*w.padding,
		rect.Max.Y-w.thickness-2*w.padding)
}

func (w *Window) setGuessDisabled(disabled bool, hub *view.Hub) {
	if i, ok := view.LocateByID(w, view.IDGuessButton); ok {
		if button, ok := view.ChildAs[*widgets.Button](w, i); ok {
			button.SetDisabled(disabled, hub)
		}
	}
}

func (w *Window) setFrontlightLevels(levels settings.LightLevels, hub *view.Hub, ctx *device.Context) {
	ctx.Frontlight.SetIntensity(levels.Intensity)
	ctx.Frontlight.SetWarmth(levels.Warmth)
	for _, child := range w.Children() {
		slider, ok := child.(*widgets.Slider)
		if !ok {
			continue
		}
		switch slider.SliderID {
		case view.SliderLightIntensity:
			slider.SetValue(levels.Intensity, hub)
		case view.SliderLightWarmth:
			slider.SetValue(levels.Warmth, hub)
		}
	}
}

func (w *Window) updatePresets(hub *view.Hub, ctx *device.Context) {
	if i, ok := view.Locate[*widgets.PresetsList](w); ok {
		if list, ok := view.ChildAs[*widgets.PresetsList](w, i); ok {
			list.Update(ctx.Settings.FrontlightPresets, hub, ctx.Fonts)
		}
	}
}

func maxPlanWidth(fonts *font.Fonts, texts ...string) int {
	max := 0
	for _, text := range texts {
		if w := fonts.Plan(text, 0).Width; w > max {
			max = w
		}
	}
	return max
}
