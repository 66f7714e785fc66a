// Package frontlight drives the panel frontlight and provides the
// frontlight settings window, the engine's canonical composite node.
package frontlight

import (
	"fmt"
	"os"

	"github.com/go-folio/folio/pkg/errors"
	"github.com/go-folio/folio/pkg/settings"
)

// Sysfs drives the frontlight through sysfs brightness nodes. Both
// setters are fire-and-forget: a write failure is reported at this
// boundary and never surfaces into the view tree.
type Sysfs struct {
	intensityPath string
	warmthPath    string
	levels        settings.LightLevels
}

// NewSysfs returns a driver writing to the given brightness nodes.
// warmthPath may be empty on devices without natural-light hardware.
func NewSysfs(intensityPath, warmthPath string) *Sysfs {
	return &Sysfs{intensityPath: intensityPath, warmthPath: warmthPath}
}

func (s *Sysfs) SetIntensity(value float64) {
	s.levels.Intensity = clampPercent(value)
	s.write(s.intensityPath, s.levels.Intensity)
}

func (s *Sysfs) SetWarmth(value float64) {
	if s.warmthPath == "" {
		return
	}
	s.levels.Warmth = clampPercent(value)
	s.write(s.warmthPath, s.levels.Warmth)
}

func (s *Sysfs) Levels() settings.LightLevels {
	return s.levels
}

func (s *Sysfs) write(path string, percent float64) {
	data := []byte(fmt.Sprintf("%d\n", int(percent+0.5)))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		errors.Report(&errors.FolioError{
			Op:   "frontlight.write",
			Kind: errors.KindDisplay,
			Err:  err,
		})
	}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Fake is a recording frontlight for tests and the demo binary.
type Fake struct {
	LightLevels settings.LightLevels
	SetCalls    int
}

func (f *Fake) SetIntensity(value float64) {
	f.LightLevels.Intensity = value
	f.SetCalls++
}

func (f *Fake) SetWarmth(value float64) {
	f.LightLevels.Warmth = value
	f.SetCalls++
}

func (f *Fake) Levels() settings.LightLevels {
	return f.LightLevels
}
