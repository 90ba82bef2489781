package project

import domain "github.com/example/taskboard/domain/task"

// CreateProjectRequest is the request for creating a project.
type CreateProjectRequest struct {
	OwnerID     string  `json:"owner_id,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// GetProjectRequest is the request for getting a project.
type GetProjectRequest struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id,omitempty"`
}

// UpdateProjectRequest is the partial-update request for a project.
type UpdateProjectRequest struct {
	OwnerID     string                `json:"owner_id,omitempty"`
	Name        *string               `json:"name,omitempty"`
	Description *string               `json:"description,omitempty"`
	Status      *domain.ProjectStatus `json:"status,omitempty"`
}

// DeleteProjectRequest is the request for deleting a project.
type DeleteProjectRequest struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id,omitempty"`
}

// DeleteProjectResponse is the response after deleting a project.
type DeleteProjectResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// ListProjectsRequest is the request for listing projects.
type ListProjectsRequest struct {
	OwnerID string `json:"owner_id,omitempty"`
}

// ListProjectsResponse is the response containing all projects.
type ListProjectsResponse struct {
	Projects []*domain.Project `json:"projects"`
	Total    int               `json:"total"`
}
