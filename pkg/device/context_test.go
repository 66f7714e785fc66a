package device

import (
	"errors"
	"testing"

	"github.com/go-folio/folio/pkg/lightsensor"
)

func TestAmbientLevel_ReadsSensor(t *testing.T) {
	ctx := &Context{HasLightSensor: true, Sensor: &lightsensor.Fake{Value: 88}}
	level := ctx.AmbientLevel()
	if level == nil || *level != 88 {
		t.Fatalf("AmbientLevel = %v, want 88", level)
	}
}

func TestAmbientLevel_FoldsFailuresToNil(t *testing.T) {
	noSensor := &Context{HasLightSensor: false, Sensor: &lightsensor.Fake{Value: 88}}
	if noSensor.AmbientLevel() != nil {
		t.Fatal("expected nil without sensor hardware")
	}

	unwired := &Context{HasLightSensor: true}
	if unwired.AmbientLevel() != nil {
		t.Fatal("expected nil with a missing sensor handle")
	}

	failing := &Context{HasLightSensor: true, Sensor: &lightsensor.Fake{Err: errors.New("bus error")}}
	if failing.AmbientLevel() != nil {
		t.Fatal("expected a read failure to fold to nil")
	}
}
