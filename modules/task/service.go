package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/example/taskboard/domain/task"
)

// Publisher publishes task change events after a mutation commits.
type Publisher interface {
	Publish(event domain.Event)
}

// Service implements the task store operations and the lifecycle operations
// layered on top of it. Every mutation publishes exactly one event after
// the write commits; a failed write publishes nothing.
type Service struct {
	repo *Repository
	bus  Publisher
	now  func() time.Time
}

// NewService creates a new task service.
func NewService(repo *Repository, bus Publisher) *Service {
	return &Service{
		repo: repo,
		bus:  bus,
		now:  time.Now,
	}
}

// Create validates input, applies defaults (urgency P3, due date today,
// status Open) and persists a new task. Publishes a created event.
func (s *Service) Create(req CreateTaskRequest) (*domain.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required: %w", domain.ErrValidation)
	}

	urgency := domain.DefaultUrgency
	if req.Urgency != nil {
		if !domain.ValidUrgency(*req.Urgency) {
			return nil, fmt.Errorf("unknown urgency %q: %w", *req.Urgency, domain.ErrValidation)
		}
		urgency = *req.Urgency
	}

	dueDate := domain.StartOfDay(s.now())
	if req.DueDate != nil {
		parsed, err := domain.ParseDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		dueDate = parsed
	}

	if req.ProjectID != nil {
		if err := s.checkProject(*req.ProjectID, req.OwnerID); err != nil {
			return nil, err
		}
	}

	t := &domain.Task{
		ID:          uuid.New().String(),
		OwnerID:     req.OwnerID,
		Title:       title,
		Description: deref(req.Description),
		Status:      domain.StatusOpen,
		Urgency:     urgency,
		DueDate:     dueDate,
		ProjectID:   req.ProjectID,
		FollowUp:    req.FollowUp != nil && *req.FollowUp,
		URL1:        deref(req.URL1),
		URL2:        deref(req.URL2),
		URL3:        deref(req.URL3),
	}

	if err := s.repo.Create(t); err != nil {
		return nil, err
	}

	created, err := s.repo.FindByID(t.ID, req.OwnerID)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(domain.NewEvent(domain.EventCreated, created))
	return created, nil
}

// Get returns a task by id.
func (s *Service) Get(id, ownerID string) (*domain.Task, error) {
	return s.repo.FindByID(id, ownerID)
}

// List returns tasks matching the filter.
func (s *Service) List(filter domain.ListFilter) ([]*domain.Task, error) {
	return s.repo.List(filter)
}

// Update merges the supplied fields over the existing record; unsupplied
// fields keep their prior value. A payload with zero recognized fields
// fails validation. Publishes an updated event with the post-update record.
func (s *Service) Update(id string, req UpdateTaskRequest) (*domain.Task, error) {
	if !req.HasChanges() {
		return nil, fmt.Errorf("at least one field must be provided: %w", domain.ErrValidation)
	}

	existing, err := s.repo.FindByID(id, req.OwnerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("title cannot be empty: %w", domain.ErrValidation)
		}
		existing.Title = title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Urgency != nil {
		if !domain.ValidUrgency(*req.Urgency) {
			return nil, fmt.Errorf("unknown urgency %q: %w", *req.Urgency, domain.ErrValidation)
		}
		existing.Urgency = *req.Urgency
	}
	if req.DueDate != nil {
		parsed, err := domain.ParseDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		existing.DueDate = parsed
	}
	if req.FollowUp != nil {
		existing.FollowUp = *req.FollowUp
	}
	if req.URL1 != nil {
		existing.URL1 = *req.URL1
	}
	if req.URL2 != nil {
		existing.URL2 = *req.URL2
	}
	if req.URL3 != nil {
		existing.URL3 = *req.URL3
	}

	// A projectId key set to null clears the relation; an omitted key
	// leaves it untouched.
	if req.ProjectID.Set {
		if req.ProjectID.Value == nil {
			existing.ProjectID = nil
			existing.Project = nil
		} else {
			if err := s.checkProject(*req.ProjectID.Value, req.OwnerID); err != nil {
				return nil, err
			}
			existing.ProjectID = req.ProjectID.Value
		}
	}

	if req.Status != nil {
		if !domain.ValidStatus(*req.Status) {
			return nil, fmt.Errorf("unknown status %q: %w", *req.Status, domain.ErrValidation)
		}
		existing.Status = *req.Status
		if *req.Status == domain.StatusCompleted {
			now := s.now().UTC()
			existing.CompletedAt = &now
		} else {
			existing.CompletedAt = nil
		}
	}

	if err := s.saveWithRelation(existing); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(id, req.OwnerID)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(domain.NewEvent(domain.EventUpdated, updated))
	return updated, nil
}

// Delete removes a task permanently. Publishes a deleted event carrying
// only the identifier.
func (s *Service) Delete(id, ownerID string) error {
	if err := s.repo.Delete(id, ownerID); err != nil {
		return err
	}
	s.bus.Publish(domain.NewDeletedEvent(id))
	return nil
}

// MovePriority moves a task one step up or down the urgency ladder. At
// either end it fails without mutating the record.
func (s *Service) MovePriority(id, ownerID, direction string) (*domain.Task, error) {
	t, err := s.repo.FindByID(id, ownerID)
	if err != nil {
		return nil, err
	}

	var next domain.Urgency
	switch direction {
	case DirectionUp:
		next, err = domain.IncreaseUrgency(t.Urgency)
	case DirectionDown:
		next, err = domain.DecreaseUrgency(t.Urgency)
	default:
		return nil, fmt.Errorf("unknown direction %q: %w", direction, domain.ErrValidation)
	}
	if err != nil {
		return nil, err
	}

	t.Urgency = next
	if err := s.saveWithRelation(t); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(id, ownerID)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(domain.NewEvent(domain.EventUpdated, updated))
	return updated, nil
}

// MoveDueDate applies a date offset to a task's current due date.
func (s *Service) MoveDueDate(id, ownerID, kind string) (*domain.Task, error) {
	t, err := s.repo.FindByID(id, ownerID)
	if err != nil {
		return nil, err
	}

	current := domain.StartOfDay(t.DueDate)
	switch kind {
	case MoveNextDay:
		t.DueDate = domain.NextDay(current)
	case MovePlusTwo:
		t.DueDate = domain.PlusTwoDays(current)
	case MoveNextMonday:
		t.DueDate = domain.NextMonday(current)
	default:
		return nil, fmt.Errorf("unknown move type %q: %w", kind, domain.ErrValidation)
	}

	if err := s.saveWithRelation(t); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(id, ownerID)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(domain.NewEvent(domain.EventUpdated, updated))
	return updated, nil
}

// Complete marks a task Completed and stamps the completion time. Calling
// it on an already-Completed task is a no-op returning the unchanged
// record, with no event republished.
func (s *Service) Complete(id, ownerID string) (*domain.Task, error) {
	t, err := s.repo.FindByID(id, ownerID)
	if err != nil {
		return nil, err
	}

	if t.Status == domain.StatusCompleted {
		return t, nil
	}

	now := s.now().UTC()
	t.Status = domain.StatusCompleted
	t.CompletedAt = &now

	if err := s.saveWithRelation(t); err != nil {
		return nil, err
	}

	completed, err := s.repo.FindByID(id, ownerID)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(domain.NewEvent(domain.EventCompleted, completed))
	return completed, nil
}

// Rollover moves every open task whose due date precedes today to today,
// atomically, and publishes one updated event per moved task after the
// write commits. Running it twice with the same today changes nothing on
// the second run.
func (s *Service) Rollover(today time.Time, ownerID string) ([]*domain.Task, error) {
	if today.IsZero() {
		today = s.now()
	}
	todayStart := domain.StartOfDay(today)

	moved, err := s.repo.RolloverOverdue(todayStart, ownerID)
	if err != nil {
		return nil, err
	}

	for _, t := range moved {
		s.bus.Publish(domain.NewEvent(domain.EventUpdated, t))
	}
	return moved, nil
}

// saveWithRelation persists a loaded row without letting GORM upsert the
// preloaded project association.
func (s *Service) saveWithRelation(t *domain.Task) error {
	detached := *t
	detached.Project = nil
	return s.repo.Save(&detached)
}

func (s *Service) checkProject(projectID, ownerID string) error {
	exists, err := s.repo.ProjectExists(projectID, ownerID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
