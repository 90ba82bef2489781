package task

import (
	"context"
	"fmt"
	"time"

	"github.com/go-monolith/mono"

	domain "github.com/example/taskboard/domain/task"
)

// Request-reply handlers exposing the task operations to automation
// callers through the service container. They are thin adapters over the
// Service; every contract (validation, defaults, events) lives there.

func (m *Module) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (*domain.Task, error) {
	return m.service.Create(req)
}

func (m *Module) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (*domain.Task, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("id is required: %w", domain.ErrValidation)
	}
	return m.service.Get(req.ID, req.OwnerID)
}

func (m *Module) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	filter, err := BuildListFilter(req)
	if err != nil {
		return ListTasksResponse{}, err
	}

	tasks, err := m.service.List(filter)
	if err != nil {
		return ListTasksResponse{}, err
	}
	return ListTasksResponse{Tasks: tasks, Total: len(tasks)}, nil
}

func (m *Module) updateTask(_ context.Context, req updateTaskEnvelope, _ *mono.Msg) (*domain.Task, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("id is required: %w", domain.ErrValidation)
	}
	return m.service.Update(req.ID, req.UpdateTaskRequest)
}

func (m *Module) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if req.ID == "" {
		return DeleteTaskResponse{}, fmt.Errorf("id is required: %w", domain.ErrValidation)
	}
	if err := m.service.Delete(req.ID, req.OwnerID); err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteTaskResponse{Deleted: true, ID: req.ID}, nil
}

func (m *Module) movePriority(_ context.Context, req MovePriorityRequest, _ *mono.Msg) (*domain.Task, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("id is required: %w", domain.ErrValidation)
	}
	return m.service.MovePriority(req.ID, req.OwnerID, req.Direction)
}

func (m *Module) moveDate(_ context.Context, req MoveDateRequest, _ *mono.Msg) (*domain.Task, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("id is required: %w", domain.ErrValidation)
	}
	return m.service.MoveDueDate(req.ID, req.OwnerID, req.Type)
}

func (m *Module) completeTask(_ context.Context, req CompleteTaskRequest, _ *mono.Msg) (*domain.Task, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("id is required: %w", domain.ErrValidation)
	}
	return m.service.Complete(req.ID, req.OwnerID)
}

func (m *Module) rollover(_ context.Context, req RolloverRequest, _ *mono.Msg) (RolloverResponse, error) {
	var today time.Time
	if req.Today != nil {
		parsed, err := domain.ParseDate(*req.Today)
		if err != nil {
			return RolloverResponse{}, err
		}
		today = parsed
	}

	moved, err := m.service.Rollover(today, req.OwnerID)
	if err != nil {
		return RolloverResponse{}, err
	}
	return RolloverResponse{Tasks: moved, Total: len(moved)}, nil
}

// updateTaskEnvelope carries the target id alongside the partial payload
// for the request-reply surface, where there is no URL path to hold it.
type updateTaskEnvelope struct {
	ID string `json:"id"`
	UpdateTaskRequest
}

// BuildListFilter translates a list request into a repository filter,
// resolving the All status sentinel and parsing date bounds.
func BuildListFilter(req ListTasksRequest) (domain.ListFilter, error) {
	filter := domain.ListFilter{
		OwnerID:   req.OwnerID,
		Search:    req.Search,
		ProjectID: req.ProjectID,
	}

	switch req.Status {
	case "", string(domain.StatusOpen):
		filter.Status = domain.StatusOpen
	case string(domain.StatusCompleted):
		filter.Status = domain.StatusCompleted
	case "All":
		filter.AllStatuses = true
	default:
		return domain.ListFilter{}, fmt.Errorf("unknown status filter %q: %w", req.Status, domain.ErrValidation)
	}

	if req.From != nil {
		from, err := domain.ParseDate(*req.From)
		if err != nil {
			return domain.ListFilter{}, err
		}
		filter.From = &from
	}
	if req.To != nil {
		to, err := domain.ParseDate(*req.To)
		if err != nil {
			return domain.ListFilter{}, err
		}
		filter.To = &to
	}

	return filter, nil
}
