package project

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	domain "github.com/example/taskboard/domain/task"
)

// Service implements project CRUD. Names are trimmed and must be non-empty.
type Service struct {
	repo *Repository
}

// NewService creates a new project service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new project.
func (s *Service) Create(req CreateProjectRequest) (*domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("project name is required: %w", domain.ErrValidation)
	}

	p := &domain.Project{
		ID:          uuid.New().String(),
		OwnerID:     req.OwnerID,
		Name:        name,
		Description: deref(req.Description),
		Status:      domain.ProjectOpen,
	}

	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns a project by id with its derived task count.
func (s *Service) Get(id, ownerID string) (*domain.Project, error) {
	return s.repo.FindByID(id, ownerID)
}

// List returns all projects ordered by name.
func (s *Service) List(ownerID string) ([]*domain.Project, error) {
	return s.repo.FindAll(ownerID)
}

// Update merges the supplied fields over the existing record.
func (s *Service) Update(id string, req UpdateProjectRequest) (*domain.Project, error) {
	if req.Name == nil && req.Description == nil && req.Status == nil {
		return nil, fmt.Errorf("at least one field must be provided: %w", domain.ErrValidation)
	}

	existing, err := s.repo.FindByID(id, req.OwnerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("project name cannot be empty: %w", domain.ErrValidation)
		}
		existing.Name = name
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Status != nil {
		if !domain.ValidProjectStatus(*req.Status) {
			return nil, fmt.Errorf("unknown project status %q: %w", *req.Status, domain.ErrValidation)
		}
		existing.Status = *req.Status
	}

	if err := s.repo.Save(existing); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id, req.OwnerID)
}

// Delete removes a project; its tasks become unassigned.
func (s *Service) Delete(id, ownerID string) error {
	return s.repo.Delete(id, ownerID)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
