// Command folio-demo exercises the engine against an in-memory
// framebuffer. It opens the frontlight window over a blank page, drags
// the intensity slider, saves a couple of presets, asks for a guess,
// and dismisses the window, then writes the final frame as a PNG and
// prints the commit log summary.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/go-folio/folio/pkg/device"
	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/engine"
	"github.com/go-folio/folio/pkg/errors"
	"github.com/go-folio/folio/pkg/font"
	"github.com/go-folio/folio/pkg/frontlight"
	"github.com/go-folio/folio/pkg/geom"
	"github.com/go-folio/folio/pkg/lightsensor"
	"github.com/go-folio/folio/pkg/settings"
	"github.com/go-folio/folio/pkg/view"
	"github.com/go-folio/folio/pkg/widgets"
)

func main() {
	var (
		width        = flag.Int("width", 1404, "panel width in pixels")
		height       = flag.Int("height", 1872, "panel height in pixels")
		dpi          = flag.Int("dpi", 300, "panel density in dots per inch")
		naturalLight = flag.Bool("natural-light", true, "emulate warmth-capable frontlight hardware")
		sensorLevel  = flag.Int("sensor", 120, "emulated ambient light sensor reading")
		settingsPath = flag.String("settings", "", "settings file to load and save")
		out          = flag.String("out", "folio-demo.png", "output PNG path")
		logPath      = flag.String("log", "", "append reported errors to a rotating log file instead of stderr")
		verbose      = flag.Bool("verbose", false, "include stack traces in reported errors")
	)
	flag.Parse()

	if *logPath != "" {
		errors.SetHandler(errors.NewFileHandler(*logPath))
	} else {
		errors.SetHandler(&errors.LogHandler{Verbose: *verbose})
	}

	if err := run(*width, *height, *dpi, *naturalLight, *sensorLevel, *settingsPath, *out); err != nil {
		fmt.Fprintln(os.Stderr, "folio-demo:", err)
		os.Exit(1)
	}
}

func run(width, height, dpi int, naturalLight bool, sensorLevel int, settingsPath, out string) error {
	cfg := settings.Default()
	if settingsPath != "" {
		loaded, err := settings.LoadOptional(settingsPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	fb := display.NewImageFramebuffer(width, height)
	ctx := &device.Context{
		DPI:             dpi,
		Dims:            geom.Pt(width, height),
		HasNaturalLight: naturalLight,
		HasLightSensor:  true,
		Settings:        cfg,
		Fonts:           font.NewFonts(),
		Frontlight:      &frontlight.Fake{},
		Sensor:          &lightsensor.Fake{Value: sensorLevel},
	}

	root := widgets.NewFiller(geom.Rect(0, 0, width-1, height-1), display.White)
	hub := view.NewHub()
	eng := engine.New(root, hub, fb, ctx)

	pump(eng, hub, view.Render{Rect: root.Rect(), Mode: display.UpdateFull})
	pump(eng, hub, view.Open{ID: view.IDFrontlight})

	windowIndex, ok := view.LocateByID(root, view.IDFrontlight)
	if !ok {
		return fmt.Errorf("frontlight window did not open")
	}
	window, ok := view.ChildAs[*frontlight.Window](root, windowIndex)
	if !ok {
		return fmt.Errorf("frontlight overlay has unexpected kind")
	}

	// Drag the intensity slider to three quarters of its track.
	if index, ok := view.Locate[*widgets.Slider](window); ok {
		if slider, ok := view.ChildAs[*widgets.Slider](window, index); ok {
			rect := slider.Rect()
			y := (rect.Min.Y + rect.Max.Y) / 2
			from := geom.Pt((rect.Min.X+rect.Max.X)/2, y)
			to := geom.Pt(rect.Min.X+3*rect.Width()/4, y)
			pump(eng, hub,
				view.Finger{ID: 1, Status: view.FingerDown, Position: from},
				view.Finger{ID: 1, Status: view.FingerMotion, Position: to},
				view.Finger{ID: 1, Status: view.FingerUp, Position: to})
		}
	}

	// Two saved presets: the row appears after the first, the Guess
	// button enables after the second.
	tap(eng, hub, window, view.IDSaveButton)
	ctx.Frontlight.SetIntensity(25)
	tap(eng, hub, window, view.IDSaveButton)
	tap(eng, hub, window, view.IDGuessButton)

	// A tap outside the window dismisses it.
	pump(eng, hub, view.Tap{Center: geom.Pt(1, 1)})

	if settingsPath != "" {
		if err := cfg.Save(settingsPath); err != nil {
			return err
		}
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, fb.Gray); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	levels := ctx.Frontlight.Levels()
	fmt.Printf("%d commits, %d presets, frontlight %.0f%%/%.0f%%, frame written to %s\n",
		len(fb.Commits()), len(cfg.FrontlightPresets), levels.Intensity, levels.Warmth, out)
	return nil
}

// tap dispatches a tap at the center of the identified child of v.
func tap(eng *engine.Engine, hub *view.Hub, v view.View, id view.ID) {
	index, ok := view.LocateByID(v, id)
	if !ok {
		return
	}
	rect := v.Children()[index].Rect()
	center := geom.Pt((rect.Min.X+rect.Max.X)/2, (rect.Min.Y+rect.Max.Y)/2)
	pump(eng, hub, view.Tap{Center: center})
}

// pump feeds events through the engine synchronously, draining every
// follow-up the tree sends back through the hub before returning.
func pump(eng *engine.Engine, hub *view.Hub, events ...view.Event) {
	for _, evt := range events {
		eng.HandleEvent(evt)
		drain(eng, hub)
	}
}

func drain(eng *engine.Engine, hub *view.Hub) {
	for {
		select {
		case evt := <-hub.Receive():
			eng.HandleEvent(evt)
		default:
			return
		}
	}
}
