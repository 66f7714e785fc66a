package view

// Bus is the per-dispatch outbound queue. A node handling an event
// pushes follow-up events here instead of reentering the dispatcher
// synchronously; the dispatcher drains the queue in insertion order
// right after the node's turn, before any sibling is tried. A Bus is
// scoped to one node's turn and never persisted.
type Bus struct {
	events []Event
}

// Push appends an event to the queue.
func (b *Bus) Push(evt Event) {
	b.events = append(b.events, evt)
}

// Len returns the number of queued events.
func (b *Bus) Len() int {
	return len(b.events)
}

// Drain returns the queued events in insertion order and empties the
// queue.
func (b *Bus) Drain() []Event {
	events := b.events
	b.events = nil
	return events
}
