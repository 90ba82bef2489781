package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	domain "github.com/example/taskboard/domain/task"
)

// Repository provides access to task storage. All mutations go through it;
// no other component touches task rows directly.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// scoped narrows a query to an owner when a scoping key is present.
func scoped(q *gorm.DB, ownerID string) *gorm.DB {
	if ownerID != "" {
		q = q.Where("tasks.owner_id = ?", ownerID)
	}
	return q
}

// Create saves a new task.
func (r *Repository) Create(t *domain.Task) error {
	if err := r.db.Create(t).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task with its project relation resolved.
func (r *Repository) FindByID(id, ownerID string) (*domain.Task, error) {
	var t domain.Task
	q := scoped(r.db.Preload("Project"), ownerID)
	if err := q.First(&t, "tasks.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &t, nil
}

// Save persists the full current state of an already-loaded task row.
func (r *Repository) Save(t *domain.Task) error {
	if err := r.db.Save(t).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// Delete removes a task permanently. There is no soft delete at this layer.
func (r *Repository) Delete(id, ownerID string) error {
	result := scoped(r.db, ownerID).Delete(&domain.Task{}, "tasks.id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List retrieves tasks matching the filter, sorted by due date, then
// urgency (P1 first), then creation time, for deterministic ordering on
// ties.
func (r *Repository) List(filter domain.ListFilter) ([]*domain.Task, error) {
	q := scoped(r.db.Model(&domain.Task{}).Preload("Project"), filter.OwnerID)

	if !filter.AllStatuses {
		status := filter.Status
		if status == "" {
			status = domain.StatusOpen
		}
		q = q.Where("tasks.status = ?", status)
	}

	switch filter.ProjectID {
	case "":
	case domain.UnassignedProject:
		q = q.Where("tasks.project_id IS NULL")
	default:
		q = q.Where("tasks.project_id = ?", filter.ProjectID)
	}

	if filter.From != nil {
		q = q.Where("tasks.due_date >= ?", domain.StartOfDay(*filter.From))
	}
	if filter.To != nil {
		q = q.Where("tasks.due_date <= ?", domain.StartOfDay(*filter.To))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Joins("LEFT JOIN projects ON projects.id = tasks.project_id").
			Where(r.db.
				Where("LOWER(tasks.title) LIKE ?", like).
				Or("LOWER(tasks.description) LIKE ?", like).
				Or("LOWER(tasks.url1) LIKE ?", like).
				Or("LOWER(tasks.url2) LIKE ?", like).
				Or("LOWER(tasks.url3) LIKE ?", like).
				Or("LOWER(projects.name) LIKE ?", like))
	}

	var tasks []*domain.Task
	err := q.Order("tasks.due_date ASC").
		Order("tasks.urgency ASC").
		Order("tasks.created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// RolloverOverdue moves every open task whose due date precedes todayStart
// to todayStart, atomically: the select and the bulk update run in one
// transaction, so either all overdue tasks move or none do. It returns the
// moved tasks in their post-update state, or an empty slice when nothing
// was overdue.
func (r *Repository) RolloverOverdue(todayStart time.Time, ownerID string) ([]*domain.Task, error) {
	var moved []*domain.Task

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ids []string
		q := scoped(tx.Model(&domain.Task{}), ownerID).
			Where("tasks.status = ? AND tasks.due_date < ?", domain.StatusOpen, todayStart)
		if err := q.Pluck("tasks.id", &ids).Error; err != nil {
			return fmt.Errorf("failed to select overdue tasks: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		if err := tx.Model(&domain.Task{}).
			Where("id IN ?", ids).
			Update("due_date", todayStart).Error; err != nil {
			return fmt.Errorf("failed to roll over tasks: %w", err)
		}

		if err := tx.Preload("Project").
			Where("id IN ?", ids).
			Order("created_at ASC").
			Find(&moved).Error; err != nil {
			return fmt.Errorf("failed to reload rolled-over tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if moved == nil {
		moved = []*domain.Task{}
	}
	return moved, nil
}

// ProjectExists reports whether a project id resolves within the owner
// scope.
func (r *Repository) ProjectExists(id, ownerID string) (bool, error) {
	q := r.db.Model(&domain.Project{}).Where("projects.id = ?", id)
	if ownerID != "" {
		q = q.Where("projects.owner_id = ?", ownerID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check project: %w", err)
	}
	return count > 0, nil
}
