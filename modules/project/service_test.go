package project

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/example/taskboard/domain/task"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&domain.Project{}, &domain.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return NewService(NewRepository(db)), db
}

func strPtr(s string) *string { return &s }

func TestCreateProject(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(CreateProjectRequest{Name: "  Renovation  ", Description: strPtr("house")})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Name != "Renovation" {
		t.Errorf("Name = %q, want trimmed %q", created.Name, "Renovation")
	}
	if created.Status != domain.ProjectOpen {
		t.Errorf("Status = %q, want %q", created.Status, domain.ProjectOpen)
	}
	if created.Description != "house" {
		t.Errorf("Description = %q", created.Description)
	}
}

func TestCreateProjectRejectsBlankName(t *testing.T) {
	svc, _ := newTestService(t)

	for _, name := range []string{"", "   "} {
		if _, err := svc.Create(CreateProjectRequest{Name: name}); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Create(name=%q) error = %v, want ErrValidation", name, err)
		}
	}
}

func TestGetProjectIncludesTaskCount(t *testing.T) {
	svc, db := newTestService(t)

	created, err := svc.Create(CreateProjectRequest{Name: "Counted"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		seedProjectTask(t, db, &created.ID)
	}
	seedProjectTask(t, db, nil)

	got, err := svc.Get(created.ID, "")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.TaskCount != 3 {
		t.Errorf("TaskCount = %d, want 3", got.TaskCount)
	}
}

func TestListProjectsOrderedByName(t *testing.T) {
	svc, db := newTestService(t)

	for _, name := range []string{"Zulu", "Alpha", "Mike"} {
		if _, err := svc.Create(CreateProjectRequest{Name: name}); err != nil {
			t.Fatalf("Create(%q) error = %v", name, err)
		}
	}
	projects, err := svc.List("")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"Alpha", "Mike", "Zulu"}
	if len(projects) != len(want) {
		t.Fatalf("List() returned %d projects, want %d", len(projects), len(want))
	}
	for i, name := range want {
		if projects[i].Name != name {
			t.Errorf("List()[%d] = %q, want %q", i, projects[i].Name, name)
		}
	}

	seedProjectTask(t, db, &projects[0].ID)
	projects, err = svc.List("")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if projects[0].TaskCount != 1 {
		t.Errorf("TaskCount = %d, want 1 after assigning a task", projects[0].TaskCount)
	}
}

func TestUpdateProject(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(CreateProjectRequest{Name: "Before"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("partial merge", func(t *testing.T) {
		inProgress := domain.ProjectInProgress
		updated, err := svc.Update(created.ID, UpdateProjectRequest{Status: &inProgress})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Status != domain.ProjectInProgress {
			t.Errorf("Status = %q, want In Progress", updated.Status)
		}
		if updated.Name != "Before" {
			t.Errorf("Name = %q, unsupplied field must keep prior value", updated.Name)
		}
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		if _, err := svc.Update(created.ID, UpdateProjectRequest{}); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Update(empty) error = %v, want ErrValidation", err)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		if _, err := svc.Update(created.ID, UpdateProjectRequest{Name: strPtr("  ")}); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Update(blank name) error = %v, want ErrValidation", err)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		bogus := domain.ProjectStatus("Paused")
		if _, err := svc.Update(created.ID, UpdateProjectRequest{Status: &bogus}); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Update(bogus status) error = %v, want ErrValidation", err)
		}
	})
}

func TestDeleteProjectUnassignsTasks(t *testing.T) {
	svc, db := newTestService(t)

	created, err := svc.Create(CreateProjectRequest{Name: "Doomed"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	taskID := seedProjectTask(t, db, &created.ID)

	if err := svc.Delete(created.ID, ""); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Get(created.ID, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}

	// The task survives with its relation cleared, never cascaded.
	var orphan domain.Task
	if err := db.First(&orphan, "id = ?", taskID).Error; err != nil {
		t.Fatalf("task was deleted with its project: %v", err)
	}
	if orphan.ProjectID != nil {
		t.Errorf("ProjectID = %v, want nil after project delete", *orphan.ProjectID)
	}
}

func TestDeleteMissingProject(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.Delete(uuid.New().String(), ""); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func seedProjectTask(t *testing.T, db *gorm.DB, projectID *string) string {
	t.Helper()
	task := &domain.Task{
		ID:        uuid.New().String(),
		Title:     "seeded",
		Status:    domain.StatusOpen,
		Urgency:   domain.DefaultUrgency,
		DueDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		ProjectID: projectID,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return task.ID
}
