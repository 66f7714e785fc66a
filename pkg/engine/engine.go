// Package engine owns the view tree: it drains the hub, dispatches
// events one at a time, and turns render and expose requests into
// framebuffer commits. A single logical thread performs all dispatch
// and rendering; the hub is the only boundary where outside producers
// (input capture, timers) enter.
package engine

import (
	"context"

	"github.com/go-folio/folio/pkg/device"
	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/errors"
	"github.com/go-folio/folio/pkg/frontlight"
	"github.com/go-folio/folio/pkg/geom"
	"github.com/go-folio/folio/pkg/view"
)

// Engine routes events between the hub, the view tree, and the
// framebuffer.
type Engine struct {
	root view.View
	hub  *view.Hub
	fb   display.Framebuffer
	ctx  *device.Context
}

func New(root view.View, hub *view.Hub, fb display.Framebuffer, ctx *device.Context) *Engine {
	return &Engine{root: root, hub: hub, fb: fb, ctx: ctx}
}

// Root returns the tree root.
func (e *Engine) Root() view.View {
	return e.root
}

// Run drains the hub until ctx is cancelled or the hub closes. Events
// are processed one at a time, synchronously; the loop never yields
// mid-dispatch.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt, ok := <-e.hub.Receive():
			if !ok {
				return nil
			}
			e.HandleEvent(evt)
		}
	}
}

// HandleEvent processes one event: render and expose requests commit
// to the framebuffer, overlay open/close mutates the root's children,
// and everything else dispatches into the tree. A panicking handler is
// recovered and reported; the loop survives.
func (e *Engine) HandleEvent(evt view.Event) {
	defer errors.Recover("engine.HandleEvent")

	switch ev := evt.(type) {
	case view.Render:
		e.render(ev.Rect, ev.Mode)
	case view.Expose:
		e.expose(ev.Rect)
	case view.Open:
		e.openOverlay(ev.ID)
	case view.Close:
		e.closeOverlay(ev.ID)
	default:
		if !view.Dispatch(e.root, evt, e.hub, e.ctx) {
			e.dismissOnMiss(evt)
		}
	}
}

// dismissOnMiss closes the topmost modal overlay when a tap lands on
// nothing. Positional dispatch never offers a tap to a child that does
// not contain it, so "tap anywhere outside the window" surfaces here
// as an unconsumed event.
func (e *Engine) dismissOnMiss(evt view.Event) {
	if _, ok := evt.(view.Tap); !ok {
		return
	}
	children := e.root.Children()
	if len(children) == 0 {
		return
	}
	top := children[len(children)-1]
	background, ok := top.(view.Background)
	if !ok || !background.IsBackground() {
		return
	}
	if id := view.Identity(top); id != view.IDNone {
		e.closeOverlay(id)
	}
}

// render repaints the damaged region and commits it under the
// requested refresh class.
func (e *Engine) render(rect geom.Rectangle, mode display.UpdateMode) {
	if rect.IsEmpty() {
		return
	}
	e.paint(e.root, rect)
	e.commit(rect, mode)
}

// expose erases a region content was removed from: background first,
// then whatever still overlaps it, committed crisp.
func (e *Engine) expose(rect geom.Rectangle) {
	if rect.IsEmpty() {
		return
	}
	display.FillRect(e.fb, rect, display.White)
	e.paint(e.root, rect)
	e.commit(rect, display.UpdateGui)
}

// paint walks the tree in painter's order (parents under children,
// later siblings on top), skipping subtrees whose covering rectangle
// misses the damage.
func (e *Engine) paint(v view.View, damage geom.Rectangle) {
	if !view.OverlappingRectangle(v).Intersects(damage) {
		return
	}
	if v.Rect().Intersects(damage) {
		v.Render(e.fb, e.ctx.Fonts)
	}
	for _, child := range v.Children() {
		e.paint(child, damage)
	}
}

func (e *Engine) commit(rect geom.Rectangle, mode display.UpdateMode) {
	if err := e.fb.Update(rect, mode); err != nil {
		errors.Report(&errors.FolioError{
			Op:   "engine.commit",
			Kind: errors.KindDisplay,
			Err:  err,
		})
	}
}

// openOverlay attaches the named overlay to the root and renders its
// covering rectangle. Opening an overlay that is already attached is a
// no-op.
func (e *Engine) openOverlay(id view.ID) {
	if _, ok := view.LocateByID(e.root, id); ok {
		return
	}
	switch id {
	case view.IDFrontlight:
		window := frontlight.NewWindow(e.ctx)
		e.root.SetChildren(append(e.root.Children(), window))
		e.render(view.OverlappingRectangle(window), display.UpdateGui)
	}
}

// closeOverlay removes the named overlay. The covering rectangle of
// the removed subtree is exposed in the same pass, so no stale pixels
// survive even when children extended past the overlay's own bound.
func (e *Engine) closeOverlay(id view.ID) {
	index, ok := view.LocateByID(e.root, id)
	if !ok {
		return
	}
	children := e.root.Children()
	covering := view.OverlappingRectangle(children[index])
	e.root.SetChildren(append(children[:index:index], children[index+1:]...))
	e.expose(covering)
}
