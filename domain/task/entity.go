package task

import "time"

// TaskStatus represents the state of a task.
type TaskStatus string

const (
	StatusOpen      TaskStatus = "Open"
	StatusCompleted TaskStatus = "Completed"
)

// ValidStatus reports whether s is a known task status.
func ValidStatus(s TaskStatus) bool {
	return s == StatusOpen || s == StatusCompleted
}

// Task is the core domain entity representing a unit of work.
// DueDate is always stored normalized to start of day in UTC; comparisons
// between due dates are calendar-day comparisons.
type Task struct {
	ID           string     `gorm:"primarykey;size:36" json:"id"`
	OwnerID      string     `gorm:"size:64;index" json:"owner_id,omitempty"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	Description  string     `gorm:"size:2000" json:"description"`
	Status       TaskStatus `gorm:"size:16;not null;default:Open" json:"status"`
	Urgency      Urgency    `gorm:"size:4;not null;default:P3" json:"urgency"`
	DueDate      time.Time  `gorm:"not null;index" json:"due_date"`
	ProjectID    *string    `gorm:"size:36;index" json:"project_id"`
	Project      *Project   `json:"project,omitempty"`
	FollowUp     bool       `gorm:"not null;default:false" json:"follow_up"`
	URL1         string     `gorm:"size:500" json:"url1,omitempty"`
	URL2         string     `gorm:"size:500" json:"url2,omitempty"`
	URL3         string     `gorm:"size:500" json:"url3,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}

// Snapshot returns a deep copy of the task, detached from any live record.
// Event subscribers receive snapshots so they cannot mutate the store
// through the payload.
func (t *Task) Snapshot() *Task {
	cp := *t
	if t.ProjectID != nil {
		pid := *t.ProjectID
		cp.ProjectID = &pid
	}
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		cp.CompletedAt = &at
	}
	if t.Project != nil {
		proj := *t.Project
		cp.Project = &proj
	}
	return &cp
}

// ProjectStatus represents the state of a project.
type ProjectStatus string

const (
	ProjectOpen       ProjectStatus = "Open"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"
)

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s ProjectStatus) bool {
	return s == ProjectOpen || s == ProjectInProgress || s == ProjectCompleted
}

// Project is a logical grouping of tasks. Deleting a project never cascades
// to its tasks; they become unassigned.
type Project struct {
	ID          string        `gorm:"primarykey;size:36" json:"id"`
	OwnerID     string        `gorm:"size:64;index" json:"owner_id,omitempty"`
	Name        string        `gorm:"size:200;not null" json:"name"`
	Description string        `gorm:"size:2000" json:"description"`
	Status      ProjectStatus `gorm:"size:16;not null;default:Open" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// TaskCount is derived on read and never persisted.
	TaskCount int64 `gorm:"-" json:"task_count"`
}

// TableName returns the table name for the Project model.
func (Project) TableName() string {
	return "projects"
}

// UnassignedProject is the list-filter sentinel selecting tasks that have
// no project relation.
const UnassignedProject = "__unassigned__"

// ListFilter narrows a task listing. Zero-value fields are ignored, except
// Status which defaults to StatusOpen when empty and AllStatuses is false.
type ListFilter struct {
	OwnerID     string
	Status      TaskStatus
	AllStatuses bool
	Search      string
	ProjectID   string // UnassignedProject selects tasks with no project
	From        *time.Time
	To          *time.Time
}
