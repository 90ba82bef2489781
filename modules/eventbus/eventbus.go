// Package eventbus provides the in-process change event bus for task
// mutations. Delivery is synchronous and at-most-once per publish: handlers
// run inline on the publisher's goroutine, a panicking handler is recovered
// so it neither unwinds into the caller nor starves other handlers, and the
// mutation that triggered the event has already committed by the time
// handlers run.
package eventbus

import (
	"log"
	"sync"

	"github.com/example/taskboard/domain/task"
)

// Handler is a function that handles task change events.
type Handler func(event task.Event)

// Bus provides publish-subscribe functionality for task change events.
type Bus struct {
	handlers map[task.EventKind][]Handler
	mu       sync.RWMutex
}

// New creates a new Bus.
func New() *Bus {
	return &Bus{
		handlers: make(map[task.EventKind][]Handler),
	}
}

// Subscribe registers a handler for a specific event kind.
func (b *Bus) Subscribe(kind task.EventKind, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[kind] = append(b.handlers[kind], handler)
}

// SubscribeAll registers a handler for all event kinds.
func (b *Bus) SubscribeAll(handler Handler) {
	kinds := []task.EventKind{
		task.EventCreated,
		task.EventUpdated,
		task.EventCompleted,
		task.EventDeleted,
	}
	for _, kind := range kinds {
		b.Subscribe(kind, handler)
	}
}

// Publish delivers an event to every handler registered for its kind, in
// registration order.
func (b *Bus) Publish(event task.Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Kind]))
	copy(handlers, b.handlers[event.Kind])
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.deliver(handler, event)
	}
}

func (b *Bus) deliver(handler Handler, event task.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[eventbus] Handler panic for %s event on task %s: %v", event.Kind, event.TaskID, r)
		}
	}()
	handler(event)
}

// HandlerCount returns the number of handlers for an event kind.
func (b *Bus) HandlerCount(kind task.EventKind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[kind])
}
