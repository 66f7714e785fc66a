package frontlight

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSysfs_SetIntensity_WritesClampedPercent(t *testing.T) {
	dir := t.TempDir()
	intensity := filepath.Join(dir, "intensity")
	warmth := filepath.Join(dir, "warmth")
	driver := NewSysfs(intensity, warmth)

	driver.SetIntensity(150)
	if got := driver.Levels().Intensity; got != 100 {
		t.Fatalf("intensity = %v, want clamped 100", got)
	}
	data, err := os.ReadFile(intensity)
	if err != nil {
		t.Fatalf("read intensity node: %v", err)
	}
	if string(data) != "100\n" {
		t.Fatalf("intensity node = %q", data)
	}

	driver.SetWarmth(-5)
	if got := driver.Levels().Warmth; got != 0 {
		t.Fatalf("warmth = %v, want clamped 0", got)
	}
}

func TestSysfs_SetWarmth_NoNodeIsNoOp(t *testing.T) {
	driver := NewSysfs(filepath.Join(t.TempDir(), "intensity"), "")
	driver.SetWarmth(50)
	if got := driver.Levels().Warmth; got != 0 {
		t.Fatalf("warmth = %v, want untouched without hardware", got)
	}
}

func TestSysfs_RoundsToNearestInteger(t *testing.T) {
	dir := t.TempDir()
	intensity := filepath.Join(dir, "intensity")
	driver := NewSysfs(intensity, "")

	driver.SetIntensity(42.6)
	data, err := os.ReadFile(intensity)
	if err != nil {
		t.Fatalf("read intensity node: %v", err)
	}
	if string(data) != "43\n" {
		t.Fatalf("intensity node = %q", data)
	}
	if got := driver.Levels().Intensity; got != 42.6 {
		t.Fatalf("levels keep the exact value, got %v", got)
	}
}

func TestFake_RecordsCalls(t *testing.T) {
	fake := &Fake{}
	fake.SetIntensity(30)
	fake.SetWarmth(60)
	if fake.SetCalls != 2 {
		t.Fatalf("SetCalls = %d", fake.SetCalls)
	}
	levels := fake.Levels()
	if levels.Intensity != 30 || levels.Warmth != 60 {
		t.Fatalf("levels = %+v", levels)
	}
}
