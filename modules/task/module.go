// Package task implements the task store: CRUD with field-level merge
// semantics, the lifecycle operations (complete, move-priority, move-date)
// and the rollover sweep entry point, all backed by GORM.
package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	"github.com/example/taskboard/modules/eventbus"
	"github.com/example/taskboard/modules/store"
)

// Module provides task management as a mono module, exposing the store and
// lifecycle operations as request-reply services for automation callers.
type Module struct {
	store   *store.Module
	bus     *eventbus.Bus
	repo    *Repository
	service *Service
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new task module. The store module must be registered
// before this one so the database handle exists when Start runs.
func NewModule(storeModule *store.Module, bus *eventbus.Bus) *Module {
	return &Module{
		store: storeModule,
		bus:   bus,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "task"
}

// RegisterServices registers the task operations in the service container.
// The framework prefixes service names with "services.task.".
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	services := []struct {
		name     string
		register func() error
	}{
		{"create", func() error {
			return helper.RegisterTypedRequestReplyService(container, "create", json.Unmarshal, json.Marshal, m.createTask)
		}},
		{"get", func() error {
			return helper.RegisterTypedRequestReplyService(container, "get", json.Unmarshal, json.Marshal, m.getTask)
		}},
		{"list", func() error {
			return helper.RegisterTypedRequestReplyService(container, "list", json.Unmarshal, json.Marshal, m.listTasks)
		}},
		{"update", func() error {
			return helper.RegisterTypedRequestReplyService(container, "update", json.Unmarshal, json.Marshal, m.updateTask)
		}},
		{"delete", func() error {
			return helper.RegisterTypedRequestReplyService(container, "delete", json.Unmarshal, json.Marshal, m.deleteTask)
		}},
		{"move-priority", func() error {
			return helper.RegisterTypedRequestReplyService(container, "move-priority", json.Unmarshal, json.Marshal, m.movePriority)
		}},
		{"move-date", func() error {
			return helper.RegisterTypedRequestReplyService(container, "move-date", json.Unmarshal, json.Marshal, m.moveDate)
		}},
		{"complete", func() error {
			return helper.RegisterTypedRequestReplyService(container, "complete", json.Unmarshal, json.Marshal, m.completeTask)
		}},
		{"rollover", func() error {
			return helper.RegisterTypedRequestReplyService(container, "rollover", json.Unmarshal, json.Marshal, m.rollover)
		}},
	}

	for _, svc := range services {
		if err := svc.register(); err != nil {
			return fmt.Errorf("failed to register %s service: %w", svc.name, err)
		}
	}

	log.Println("[task] Registered services: services.task.{create,get,list,update,delete,move-priority,move-date,complete,rollover}")
	return nil
}

// Start wires the repository and service against the shared database.
func (m *Module) Start(_ context.Context) error {
	db := m.store.DB()
	if db == nil {
		return fmt.Errorf("store module not started")
	}

	m.repo = NewRepository(db)
	m.service = NewService(m.repo, m.bus)

	log.Println("[task] Module started")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[task] Module stopped")
	return nil
}

// Health reports whether the module is wired.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if m.service == nil {
		return mono.HealthStatus{Healthy: false, Message: "service not initialized"}
	}
	return mono.HealthStatus{Healthy: true, Message: "operational"}
}

// Service returns the task service for in-process callers.
func (m *Module) Service() *Service {
	return m.service
}
