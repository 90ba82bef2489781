// Package broadcast rebroadcasts task change events to connected
// WebSocket clients under one stable event name per kind.
package broadcast

import (
	"context"
	"log"

	"github.com/go-monolith/mono"

	domain "github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/modules/eventbus"
)

// Module subscribes to the change event bus and fans every event out
// through the WebSocket hub.
type Module struct {
	hub       *Hub
	bus       *eventbus.Bus
	cancelHub context.CancelFunc
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new broadcast module.
func NewModule(bus *eventbus.Bus) *Module {
	return &Module{
		hub: NewHub(),
		bus: bus,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "broadcast"
}

// Start runs the hub and subscribes to all event kinds.
func (m *Module) Start(_ context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelHub = cancel
	go m.hub.Run(ctx)

	m.bus.SubscribeAll(m.handleEvent)

	log.Println("[broadcast] Module started - WebSocket hub running")
	return nil
}

// Stop shuts down the hub.
func (m *Module) Stop(_ context.Context) error {
	clientCount := m.hub.ClientCount()
	if m.cancelHub != nil {
		m.cancelHub()
		m.hub.Wait()
	}
	log.Printf("[broadcast] Module stopped - %d clients were connected", clientCount)
	return nil
}

// Health returns the health status.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"connected_clients": m.hub.ClientCount(),
		},
	}
}

// Hub returns the WebSocket hub for the API module to attach connections.
func (m *Module) Hub() *Hub {
	return m.hub
}

// handleEvent rebroadcasts one change event. Deleted events carry only the
// identifier; everything else carries the task snapshot.
func (m *Module) handleEvent(event domain.Event) {
	if event.Kind == domain.EventDeleted {
		m.hub.Broadcast(string(event.Kind), map[string]string{"task_id": event.TaskID})
		return
	}
	m.hub.Broadcast(string(event.Kind), event.Task)
}
