// Package device carries the explicit device context: capability
// flags, settings, and handles to the light collaborators. One Context
// is built at startup and passed to every constructor; capability
// flags are read-only thereafter.
package device

import (
	"github.com/go-folio/folio/pkg/font"
	"github.com/go-folio/folio/pkg/geom"
	"github.com/go-folio/folio/pkg/settings"
)

// Frontlight is the frontlight driver boundary. Both setters are
// fire-and-forget; the engine never observes a result.
type Frontlight interface {
	SetIntensity(value float64)
	SetWarmth(value float64)
	Levels() settings.LightLevels
}

// LightSensor is the ambient light sensor boundary. A failed read
// means "no ambient reading" to every caller, never a fatal condition.
type LightSensor interface {
	Level() (int, error)
}

// Context is the shared context threaded through construction and
// event handling.
type Context struct {
	// DPI is the panel density in dots per inch.
	DPI int
	// Dims is the panel size in device pixels.
	Dims geom.Point
	// HasNaturalLight reports warmth-capable frontlight hardware;
	// it decides whether a warmth slider exists at all.
	HasNaturalLight bool
	// HasLightSensor reports a readable ambient light sensor.
	HasLightSensor bool

	Settings   *settings.Settings
	Fonts      *font.Fonts
	Frontlight Frontlight
	Sensor     LightSensor
}

// AmbientLevel reads the light sensor, folding absence and read
// failures into a nil reading.
func (c *Context) AmbientLevel() *int {
	if !c.HasLightSensor || c.Sensor == nil {
		return nil
	}
	level, err := c.Sensor.Level()
	if err != nil {
		return nil
	}
	return &level
}
