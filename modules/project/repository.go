package project

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/example/taskboard/domain/task"
)

// Repository provides access to project storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new project repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func scoped(q *gorm.DB, ownerID string) *gorm.DB {
	if ownerID != "" {
		q = q.Where("projects.owner_id = ?", ownerID)
	}
	return q
}

// Create saves a new project.
func (r *Repository) Create(p *domain.Project) error {
	if err := r.db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// FindByID retrieves a project with its derived task count.
func (r *Repository) FindByID(id, ownerID string) (*domain.Project, error) {
	var p domain.Project
	if err := scoped(r.db, ownerID).First(&p, "projects.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if err := r.fillTaskCounts([]*domain.Project{&p}); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindAll retrieves all projects ordered by name, each with its derived
// task count.
func (r *Repository) FindAll(ownerID string) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := scoped(r.db, ownerID).Order("projects.name ASC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	if err := r.fillTaskCounts(projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Save persists the full current state of an already-loaded project row.
func (r *Repository) Save(p *domain.Project) error {
	if err := r.db.Save(p).Error; err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// Delete removes a project and unassigns its tasks in one transaction.
// Tasks are never cascade-deleted.
func (r *Repository) Delete(id, ownerID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := scoped(tx, ownerID).Delete(&domain.Project{}, "projects.id = ?", id)
		if err := result.Error; err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}

		if err := tx.Model(&domain.Task{}).
			Where("project_id = ?", id).
			Update("project_id", nil).Error; err != nil {
			return fmt.Errorf("failed to unassign tasks: %w", err)
		}
		return nil
	})
}

// fillTaskCounts computes the derived task count for each project. The
// count is never persisted.
func (r *Repository) fillTaskCounts(projects []*domain.Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}

	type countRow struct {
		ProjectID string
		Count     int64
	}
	var rows []countRow
	err := r.db.Model(&domain.Task{}).
		Select("project_id, COUNT(*) AS count").
		Where("project_id IN ?", ids).
		Group("project_id").
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to count tasks: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ProjectID] = row.Count
	}
	for _, p := range projects {
		p.TaskCount = counts[p.ID]
	}
	return nil
}
