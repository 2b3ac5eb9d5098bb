package input

import "sync"

// Provider hands out buffered input events in arrival order.
type Provider interface {
	// Peek returns the oldest buffered event without removing it.
	Peek() (Event, bool)
	// Pop removes and returns the oldest buffered event.
	Pop() (Event, bool)
	// PopAll removes and returns all buffered events in arrival order.
	PopAll() []Event
	// Clear discards all buffered events.
	Clear()
}

// Buffer is a FIFO event queue safe for concurrent use. The zero value
// is ready to use.
type Buffer struct {
	mu     sync.Mutex
	events []Event
}

// Push appends an event to the buffer.
func (b *Buffer) Push(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *Buffer) Peek() (Event, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.events) == 0 {
		return Event{}, false
	}
	return b.events[0], true
}

func (b *Buffer) Pop() (Event, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.events) == 0 {
		return Event{}, false
	}
	event := b.events[0]
	b.events = b.events[1:]
	return event, true
}

func (b *Buffer) PopAll() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = nil
}

// Len reports the number of buffered events.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}
