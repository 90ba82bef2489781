package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	domain "github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/modules/project"
	"github.com/example/taskboard/modules/task"
)

// respondError maps a domain failure to its HTTP shape. Validation-class
// failures and not-found are distinct 4xx responses; everything else is a
// generic 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   codeNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUrgencyBound):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   codePriorityBoundary,
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   codeInvalidDate,
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   codeValidationError,
			Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   codeInternalError,
			Message: "unexpected server error",
		})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   codeInvalidRequest,
		Message: "invalid request body",
	})
}

func owner(c *fiber.Ctx) string {
	return c.Get(ownerHeader)
}

// Task handlers

// listTasks handles GET /api/v1/tasks.
func (m *Module) listTasks(c *fiber.Ctx) error {
	req := task.ListTasksRequest{
		OwnerID:   owner(c),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		ProjectID: c.Query("project_id"),
	}
	if from := c.Query("from"); from != "" {
		req.From = &from
	}
	if to := c.Query("to"); to != "" {
		req.To = &to
	}

	filter, err := task.BuildListFilter(req)
	if err != nil {
		return respondError(c, err)
	}

	tasks, err := m.taskModule.Service().List(filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(task.ListTasksResponse{Tasks: tasks, Total: len(tasks)})
}

// createTask handles POST /api/v1/tasks.
func (m *Module) createTask(c *fiber.Ctx) error {
	var req task.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	req.OwnerID = owner(c)

	created, err := m.taskModule.Service().Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// getTask handles GET /api/v1/tasks/:id.
func (m *Module) getTask(c *fiber.Ctx) error {
	t, err := m.taskModule.Service().Get(c.Params("id"), owner(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(t)
}

// updateTask handles PATCH /api/v1/tasks/:id.
func (m *Module) updateTask(c *fiber.Ctx) error {
	var req task.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	req.OwnerID = owner(c)

	updated, err := m.taskModule.Service().Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// deleteTask handles DELETE /api/v1/tasks/:id.
func (m *Module) deleteTask(c *fiber.Ctx) error {
	if err := m.taskModule.Service().Delete(c.Params("id"), owner(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// movePriority handles POST /api/v1/tasks/:id/actions/move-priority.
func (m *Module) movePriority(c *fiber.Ctx) error {
	var body struct {
		Direction string `json:"direction"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	updated, err := m.taskModule.Service().MovePriority(c.Params("id"), owner(c), body.Direction)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// moveDate handles POST /api/v1/tasks/:id/actions/move-date.
func (m *Module) moveDate(c *fiber.Ctx) error {
	var body struct {
		Type string `json:"type"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	updated, err := m.taskModule.Service().MoveDueDate(c.Params("id"), owner(c), body.Type)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// completeTask handles POST /api/v1/tasks/:id/actions/complete.
func (m *Module) completeTask(c *fiber.Ctx) error {
	completed, err := m.taskModule.Service().Complete(c.Params("id"), owner(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(completed)
}

// Project handlers

// listProjects handles GET /api/v1/projects.
func (m *Module) listProjects(c *fiber.Ctx) error {
	projects, err := m.projectModule.Service().List(owner(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project.ListProjectsResponse{Projects: projects, Total: len(projects)})
}

// createProject handles POST /api/v1/projects.
func (m *Module) createProject(c *fiber.Ctx) error {
	var req project.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	req.OwnerID = owner(c)

	created, err := m.projectModule.Service().Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// getProject handles GET /api/v1/projects/:id.
func (m *Module) getProject(c *fiber.Ctx) error {
	p, err := m.projectModule.Service().Get(c.Params("id"), owner(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// updateProject handles PATCH /api/v1/projects/:id.
func (m *Module) updateProject(c *fiber.Ctx) error {
	var req project.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	req.OwnerID = owner(c)

	updated, err := m.projectModule.Service().Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// deleteProject handles DELETE /api/v1/projects/:id.
func (m *Module) deleteProject(c *fiber.Ctx) error {
	if err := m.projectModule.Service().Delete(c.Params("id"), owner(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
