package view

import (
	"fmt"
	"sync"

	"github.com/go-folio/folio/pkg/errors"
)

// defaultHubCapacity bounds the number of events in flight. Producers
// never block: past this the oldest-undelivered semantics do not
// matter because a send simply fails.
const defaultHubCapacity = 128

// Hub is the process-wide injection point for events: a multi-producer
// single-consumer ordered channel. Raw input and lifecycle events
// enter the tree through it, and nodes use it for events that should
// appear to originate globally (a forced full-window render) rather
// than as a local follow-up. It lives for the whole process, unlike
// the per-pass Bus.
type Hub struct {
	mu     sync.RWMutex
	ch     chan Event
	closed bool
}

// NewHub returns a hub with the default capacity.
func NewHub() *Hub {
	return NewHubWithCapacity(defaultHubCapacity)
}

// NewHubWithCapacity returns a hub buffering up to capacity events.
func NewHubWithCapacity(capacity int) *Hub {
	if capacity < 1 {
		capacity = 1
	}
	return &Hub{ch: make(chan Event, capacity)}
}

// Send enqueues an event without blocking. It returns false when the
// hub is closed or full; callers treat it as fire-and-forget and never
// propagate a failure into business logic. A drop on a full buffer is
// a real loss and is reported here at the boundary; a drop after Close
// is normal shutdown and stays silent.
func (h *Hub) Send(evt Event) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return false
	}
	select {
	case h.ch <- evt:
		return true
	default:
		errors.Report(&errors.FolioError{
			Op:   "hub.send",
			Kind: errors.KindDispatch,
			Err:  fmt.Errorf("dropping %T: buffer full", evt),
		})
		return false
	}
}

// Receive returns the consumer end. The single consumer drains events
// one at a time, synchronously, never yielding mid-dispatch.
func (h *Hub) Receive() <-chan Event {
	return h.ch
}

// Close shuts the hub down. Subsequent sends fail silently; the
// consumer sees the channel close after the remaining events drain.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	close(h.ch)
}
