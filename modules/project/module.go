// Package project implements project grouping for tasks: CRUD plus a
// derived task count. Deleting a project unassigns its tasks instead of
// cascading.
package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	domain "github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/modules/store"
)

// Module provides project management as a mono module.
type Module struct {
	store   *store.Module
	repo    *Repository
	service *Service
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)

// NewModule creates a new project module.
func NewModule(storeModule *store.Module) *Module {
	return &Module{store: storeModule}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "project"
}

// RegisterServices registers the project operations in the service
// container under "services.project.".
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.createProject,
	); err != nil {
		return fmt.Errorf("failed to register create service: %w", err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, "get", json.Unmarshal, json.Marshal, m.getProject,
	); err != nil {
		return fmt.Errorf("failed to register get service: %w", err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listProjects,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, "update", json.Unmarshal, json.Marshal, m.updateProject,
	); err != nil {
		return fmt.Errorf("failed to register update service: %w", err)
	}
	if err := helper.RegisterTypedRequestReplyService(
		container, "delete", json.Unmarshal, json.Marshal, m.deleteProject,
	); err != nil {
		return fmt.Errorf("failed to register delete service: %w", err)
	}

	log.Println("[project] Registered services: services.project.{create,get,list,update,delete}")
	return nil
}

// Start wires the repository and service against the shared database.
func (m *Module) Start(_ context.Context) error {
	db := m.store.DB()
	if db == nil {
		return fmt.Errorf("store module not started")
	}

	m.repo = NewRepository(db)
	m.service = NewService(m.repo)

	log.Println("[project] Module started")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[project] Module stopped")
	return nil
}

// Service returns the project service for in-process callers.
func (m *Module) Service() *Service {
	return m.service
}

// Request-reply handlers.

func (m *Module) createProject(_ context.Context, req CreateProjectRequest, _ *mono.Msg) (*domain.Project, error) {
	return m.service.Create(req)
}

func (m *Module) getProject(_ context.Context, req GetProjectRequest, _ *mono.Msg) (*domain.Project, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("id is required: %w", domain.ErrValidation)
	}
	return m.service.Get(req.ID, req.OwnerID)
}

func (m *Module) listProjects(_ context.Context, req ListProjectsRequest, _ *mono.Msg) (ListProjectsResponse, error) {
	projects, err := m.service.List(req.OwnerID)
	if err != nil {
		return ListProjectsResponse{}, err
	}
	return ListProjectsResponse{Projects: projects, Total: len(projects)}, nil
}

func (m *Module) updateProject(_ context.Context, req updateProjectEnvelope, _ *mono.Msg) (*domain.Project, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("id is required: %w", domain.ErrValidation)
	}
	return m.service.Update(req.ID, req.UpdateProjectRequest)
}

func (m *Module) deleteProject(_ context.Context, req DeleteProjectRequest, _ *mono.Msg) (DeleteProjectResponse, error) {
	if req.ID == "" {
		return DeleteProjectResponse{}, fmt.Errorf("id is required: %w", domain.ErrValidation)
	}
	if err := m.service.Delete(req.ID, req.OwnerID); err != nil {
		return DeleteProjectResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteProjectResponse{Deleted: true, ID: req.ID}, nil
}

type updateProjectEnvelope struct {
	ID string `json:"id"`
	UpdateProjectRequest
}
