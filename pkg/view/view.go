// Package view is the core of the engine: the polymorphic node
// abstraction, the event vocabulary with its two delivery primitives
// (Hub and Bus), the dispatcher, and the generic tree algorithms.
//
// A node owns a rectangle and an ordered list of exclusively-owned
// children. Ownership is strict: a child belongs to exactly one parent,
// there are no back-references and no cycles, and children are
// destroyed and recreated rather than transplanted. Generic code
// manipulates nodes only through the View interface plus the optional
// capabilities below, never through positional child indices.
package view

import (
	"github.com/go-folio/folio/pkg/device"
	"github.com/go-folio/folio/pkg/display"
	"github.com/go-folio/folio/pkg/font"
	"github.com/go-folio/folio/pkg/geom"
)

// ID is an optional stable logical identity used for cross-tree lookup
// independent of a node's position or concrete kind.
type ID int

const (
	IDNone ID = iota
	IDFrontlight
	IDMainMenu
	IDPresetsList
	IDSaveButton
	IDGuessButton
)

func (id ID) String() string {
	switch id {
	case IDFrontlight:
		return "frontlight"
	case IDMainMenu:
		return "main-menu"
	case IDPresetsList:
		return "presets-list"
	case IDSaveButton:
		return "save-button"
	case IDGuessButton:
		return "guess-button"
	default:
		return "none"
	}
}

// View is the capability set every node implements.
type View interface {
	// HandleEvent reacts to one incoming event. The node may mutate
	// its own state and the shared context, push follow-up events onto
	// bus, or send globally-originating events through hub. It returns
	// whether it consumed the event, stopping further propagation at
	// the current dispatch step. It must not panic on malformed
	// geometry; an event it cannot place is simply unconsumed.
	HandleEvent(evt Event, hub *Hub, bus *Bus, ctx *device.Context) bool

	// Render paints the node's current state. It must not mutate node
	// state or emit events.
	Render(fb display.Framebuffer, fonts *font.Fonts)

	Rect() geom.Rectangle
	SetRect(geom.Rectangle)

	// Children returns the ordered child list; the last child is
	// topmost in z-order. Empty for leaf widgets.
	Children() []View
	SetChildren([]View)
}

// Identified is the optional identity capability.
type Identified interface {
	ID() ID
}

// Background marks nodes rendered as an opaque canvas, relevant for
// composite windows layered over page content.
type Background interface {
	IsBackground() bool
}

// Base supplies the rectangle and child storage shared by concrete
// nodes. Embed it and implement HandleEvent and Render.
type Base struct {
	rect     geom.Rectangle
	children []View
}

func NewBase(rect geom.Rectangle) Base {
	return Base{rect: rect}
}

func (b *Base) Rect() geom.Rectangle {
	return b.rect
}

func (b *Base) SetRect(rect geom.Rectangle) {
	b.rect = rect
}

func (b *Base) Children() []View {
	return b.children
}

func (b *Base) SetChildren(children []View) {
	b.children = children
}

// Identity returns a node's logical identity, or IDNone when the node
// carries none.
func Identity(v View) ID {
	if identified, ok := v.(Identified); ok {
		return identified.ID()
	}
	return IDNone
}
