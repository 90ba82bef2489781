package eventbus

import (
	"context"
	"log"

	"github.com/go-monolith/mono"
)

// Module wraps the Bus as a mono module.
type Module struct {
	bus *Bus
}

// Compile-time interface check.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new eventbus module around an existing Bus.
func NewModule(bus *Bus) *Module {
	return &Module{bus: bus}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "eventbus"
}

// Start starts the module.
func (m *Module) Start(_ context.Context) error {
	log.Println("[eventbus] Module started")
	return nil
}

// Stop stops the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[eventbus] Module stopped")
	return nil
}

// Bus returns the underlying event bus.
func (m *Module) Bus() *Bus {
	return m.bus
}
