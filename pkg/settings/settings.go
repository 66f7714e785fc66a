// Package settings holds the persisted device settings consumed by the
// view tree, currently the saved frontlight presets. Persistence is a
// plain YAML document; the schema version is gated with semver so a
// settings file written by a newer incompatible build is refused
// instead of silently misread.
package settings

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the settings document version written by this build.
const SchemaVersion = "v1.0.0"

// LightLevels is a frontlight state: both channels in percent.
type LightLevels struct {
	Intensity float64 `yaml:"intensity"`
	Warmth    float64 `yaml:"warmth"`
}

// LightPreset is a saved frontlight state, optionally tagged with the
// ambient sensor reading captured alongside it.
type LightPreset struct {
	Timestamp        time.Time   `yaml:"timestamp"`
	LightsensorLevel *int        `yaml:"lightsensor-level,omitempty"`
	LightLevels      LightLevels `yaml:"frontlight-levels"`
}

// Settings is the persisted settings document.
type Settings struct {
	Version           string        `yaml:"version"`
	FrontlightPresets []LightPreset `yaml:"frontlight-presets,omitempty"`
}

// Default returns a fresh settings document.
func Default() *Settings {
	return &Settings{Version: SchemaVersion}
}

// LoadOptional reads the settings file if present. A missing file
// yields defaults, not an error.
func LoadOptional(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := checkVersion(s.Version); err != nil {
		return nil, err
	}
	if s.Version == "" {
		s.Version = SchemaVersion
	}
	return &s, nil
}

// Save writes the settings document, stamping the current schema version.
func (s *Settings) Save(path string) error {
	s.Version = SchemaVersion
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// SortPresets orders presets by capture time, oldest first.
func (s *Settings) SortPresets() {
	sort.SliceStable(s.FrontlightPresets, func(i, j int) bool {
		return s.FrontlightPresets[i].Timestamp.Before(s.FrontlightPresets[j].Timestamp)
	})
}

// checkVersion accepts empty (legacy) versions and any valid semver
// sharing SchemaVersion's major.
func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid settings version %q", version)
	}
	if semver.Major(version) != semver.Major(SchemaVersion) {
		return fmt.Errorf("settings version %s is incompatible with %s", version, SchemaVersion)
	}
	return nil
}

// GuessFrontlight infers light levels from the preset history. With an
// ambient reading, the preset whose recorded sensor level is nearest
// wins. Without one, the preset captured closest to the current time of
// day wins. Returns false when the history offers nothing usable.
func GuessFrontlight(sensorLevel *int, presets []LightPreset) (LightLevels, bool) {
	return guessFrontlightAt(time.Now(), sensorLevel, presets)
}

func guessFrontlightAt(now time.Time, sensorLevel *int, presets []LightPreset) (LightLevels, bool) {
	if len(presets) == 0 {
		return LightLevels{}, false
	}
	if sensorLevel != nil {
		if levels, ok := nearestBySensor(*sensorLevel, presets); ok {
			return levels, true
		}
	}
	return nearestByTimeOfDay(now, presets)
}

func nearestBySensor(level int, presets []LightPreset) (LightLevels, bool) {
	best := -1
	bestDist := 0
	for i, preset := range presets {
		if preset.LightsensorLevel == nil {
			continue
		}
		dist := abs(*preset.LightsensorLevel - level)
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return LightLevels{}, false
	}
	return presets[best].LightLevels, true
}

func nearestByTimeOfDay(now time.Time, presets []LightPreset) (LightLevels, bool) {
	const dayMinutes = 24 * 60
	nowMinute := now.Hour()*60 + now.Minute()
	best := -1
	bestDist := 0
	for i, preset := range presets {
		ts := preset.Timestamp
		minute := ts.Hour()*60 + ts.Minute()
		dist := abs(minute - nowMinute)
		if dayMinutes-dist < dist {
			dist = dayMinutes - dist
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return LightLevels{}, false
	}
	return presets[best].LightLevels, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
