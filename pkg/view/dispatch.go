package view

import "github.com/go-folio/folio/pkg/device"

// Dispatch routes one event through the tree rooted at root and
// reports whether any node consumed it.
//
// Positional events (touches, gestures) are offered to the children
// whose rectangle contains the position, topmost first (last child
// first), and to the node itself only when no child consumed. The
// window-level catch-all a modal uses to swallow gestures therefore
// cannot starve its own controls.
//
// Finger motion and release are the exception: they are offered to
// every child regardless of position, so the control that claimed the
// press keeps the drag after the finger leaves its rectangle and
// always sees the release. Controls gate those on their own pressed
// state.
//
// Non-positional events are offered to the node first, then to its
// children in insertion order, stopping at the first consumer.
// Broadcast events reach every node and ignore consumption.
//
// After any node's turn its Bus is drained in insertion order and each
// follow-up event is redispatched from the root to completion, before
// the next sibling of the originating node is tried. A node's own
// requests are thus visible before its neighbours react.
func Dispatch(root View, evt Event, hub *Hub, ctx *device.Context) bool {
	if IsBroadcast(evt) {
		broadcast(root, root, evt, hub, ctx)
		return true
	}
	return dispatch(root, root, evt, hub, ctx)
}

func dispatch(root, v View, evt Event, hub *Hub, ctx *device.Context) bool {
	if position, ok := Position(evt); ok {
		targeted := isTargeted(evt)
		children := v.Children()
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			if targeted && !child.Rect().Includes(position) {
				continue
			}
			if dispatch(root, child, evt, hub, ctx) {
				return true
			}
		}
		return handle(root, v, evt, hub, ctx)
	}

	if handle(root, v, evt, hub, ctx) {
		return true
	}
	for _, child := range v.Children() {
		if dispatch(root, child, evt, hub, ctx) {
			return true
		}
	}
	return false
}

// isTargeted reports whether a positional event is delivered only to
// nodes containing its position. Finger motion and release follow the
// node that captured the press instead.
func isTargeted(evt Event) bool {
	if finger, ok := evt.(Finger); ok {
		return finger.Status == FingerDown
	}
	return true
}

func broadcast(root, v View, evt Event, hub *Hub, ctx *device.Context) {
	handle(root, v, evt, hub, ctx)
	for _, child := range v.Children() {
		broadcast(root, child, evt, hub, ctx)
	}
}

// handle gives v its turn with a fresh Bus, then drains the Bus,
// feeding each follow-up back through a full dispatch from the root.
func handle(root, v View, evt Event, hub *Hub, ctx *device.Context) bool {
	bus := &Bus{}
	consumed := v.HandleEvent(evt, hub, bus, ctx)
	for _, followUp := range bus.Drain() {
		Dispatch(root, followUp, hub, ctx)
	}
	return consumed
}
