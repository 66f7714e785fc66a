package widgets

import (
	"testing"

	"github.com/go-folio/folio/pkg/device"
	"github.com/go-folio/folio/pkg/geom"
	"github.com/go-folio/folio/pkg/view"

	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/font"
)

func testContext() *device.Context {
	return &device.Context{
		DPI:   300,
		Dims:  geom.Pt(600, 800),
		Fonts: font.NewFonts(),
	}
}

// recvRender pops one event from the hub and asserts it is a render
// request with the given refresh class.
func recvRender(t *testing.T, hub *view.Hub, mode display.UpdateMode) view.Render {
	t.Helper()
	select {
	case evt := <-hub.Receive():
		render, ok := evt.(view.Render)
		if !ok {
			t.Fatalf("expected a render request, got %T", evt)
		}
		if render.Mode != mode {
			t.Fatalf("render mode = %v, want %v", render.Mode, mode)
		}
		return render
	default:
		t.Fatal("expected an event on the hub")
		return view.Render{}
	}
}

func assertHubEmpty(t *testing.T, hub *view.Hub) {
	t.Helper()
	select {
	case evt := <-hub.Receive():
		t.Fatalf("expected no event on the hub, got %#v", evt)
	default:
	}
}

func TestButton_PressHighlightsFast_ReleaseRepaintsCrisp(t *testing.T) {
	ctx := testContext()
	hub := view.NewHub()
	rect := geom.Rect(10, 10, 110, 50)
	button := NewButton(ctx, rect, "Save", view.Save{})

	inside := geom.Pt(50, 30)
	if !button.HandleEvent(view.Finger{ID: 1, Status: view.FingerDown, Position: inside}, hub, &view.Bus{}, ctx) {
		t.Fatal("expected the press to be consumed")
	}
	if !button.Active {
		t.Fatal("expected the button to highlight")
	}
	if got := recvRender(t, hub, display.UpdateFast); got.Rect != rect {
		t.Fatalf("press render rect = %v, want %v", got.Rect, rect)
	}

	if !button.HandleEvent(view.Finger{ID: 1, Status: view.FingerUp, Position: inside}, hub, &view.Bus{}, ctx) {
		t.Fatal("expected the release to be consumed")
	}
	if button.Active {
		t.Fatal("expected the highlight to clear")
	}
	recvRender(t, hub, display.UpdateGui)
}

func TestButton_ReleaseOutsideRect_ClearsHighlight(t *testing.T) {
	ctx := testContext()
	hub := view.NewHub()
	rect := geom.Rect(10, 10, 110, 50)
	button := NewButton(ctx, rect, "Save", view.Save{})

	button.HandleEvent(view.Finger{ID: 1, Status: view.FingerDown, Position: geom.Pt(50, 30)}, hub, &view.Bus{}, ctx)
	recvRender(t, hub, display.UpdateFast)

	// The finger slid off the button before lifting; the highlight
	// still clears.
	if !button.HandleEvent(view.Finger{ID: 1, Status: view.FingerUp, Position: geom.Pt(300, 300)}, hub, &view.Bus{}, ctx) {
		t.Fatal("expected the stray release to be consumed")
	}
	if button.Active {
		t.Fatal("expected the highlight to clear")
	}
	recvRender(t, hub, display.UpdateGui)
}

func TestButton_TapPushesItsEvent(t *testing.T) {
	ctx := testContext()
	hub := view.NewHub()
	bus := &view.Bus{}
	button := NewButton(ctx, geom.Rect(10, 10, 110, 50), "Guess", view.Guess{})

	if !button.HandleEvent(view.Tap{Center: geom.Pt(50, 30)}, hub, bus, ctx) {
		t.Fatal("expected the tap to be consumed")
	}
	drained := bus.Drain()
	if len(drained) != 1 {
		t.Fatalf("expected one follow-up, got %d", len(drained))
	}
	if _, ok := drained[0].(view.Guess); !ok {
		t.Fatalf("expected Guess, got %T", drained[0])
	}
}

func TestButton_TapOutsideIsIgnored(t *testing.T) {
	ctx := testContext()
	hub := view.NewHub()
	bus := &view.Bus{}
	button := NewButton(ctx, geom.Rect(10, 10, 110, 50), "Save", view.Save{})

	if button.HandleEvent(view.Tap{Center: geom.Pt(200, 200)}, hub, bus, ctx) {
		t.Fatal("expected a tap outside to stay unconsumed")
	}
	if bus.Len() != 0 {
		t.Fatal("expected no follow-up")
	}
}

func TestButton_DisabledEmitsNothing(t *testing.T) {
	ctx := testContext()
	hub := view.NewHub()
	bus := &view.Bus{}
	button := NewButton(ctx, geom.Rect(10, 10, 110, 50), "Guess", view.Guess{})
	button.Disabled = true

	inside := geom.Pt(50, 30)
	if button.HandleEvent(view.Finger{ID: 1, Status: view.FingerDown, Position: inside}, hub, bus, ctx) {
		t.Fatal("expected a disabled button not to consume the press")
	}
	if button.HandleEvent(view.Tap{Center: inside}, hub, bus, ctx) {
		t.Fatal("expected a disabled button not to consume the tap")
	}
	if bus.Len() != 0 {
		t.Fatal("expected no follow-up")
	}
	assertHubEmpty(t, hub)
}

func TestButton_SetDisabled_RepaintsOnlyOnChange(t *testing.T) {
	ctx := testContext()
	hub := view.NewHub()
	button := NewButton(ctx, geom.Rect(10, 10, 110, 50), "Guess", view.Guess{}).WithID(view.IDGuessButton)

	button.SetDisabled(true, hub)
	recvRender(t, hub, display.UpdateGui)

	button.SetDisabled(true, hub)
	assertHubEmpty(t, hub)

	if button.ID() != view.IDGuessButton {
		t.Fatalf("ID = %v", button.ID())
	}
}
