package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/analytics"
	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
)

// TaskController handles the tasks page: CRUD, the overdue tab and the
// per-employee progress view
type TaskController struct {
	store repositories.RecordStore
}

// NewTaskController creates a new task controller
func NewTaskController(store repositories.RecordStore) *TaskController {
	return &TaskController{store: store}
}

// GetTasks lists tasks; the tab query parameter selects today, overdue,
// pending or completed subsets
func (c *TaskController) GetTasks(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "tasks")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load tasks")
	}

	today := analytics.TodayISO()
	switch ctx.QueryParam("tab") {
	case "today":
		records = analytics.FilterWhere(records, analytics.OnDate("deadline", today))
	case "overdue":
		records = analytics.FilterWhere(records, func(r models.Record) bool {
			return analytics.IsOverdue(r, today)
		})
	case "pending":
		records = analytics.FilterWhere(records, func(r models.Record) bool {
			return analytics.Str(r, "status") == "Pending"
		})
	case "inprogress":
		records = analytics.FilterWhere(records, func(r models.Record) bool {
			return analytics.Str(r, "status") == "In Progress"
		})
	case "completed":
		records = analytics.FilterWhere(records, func(r models.Record) bool {
			return analytics.Str(r, "status") == "Completed"
		})
	}
	return respond(ctx, http.StatusOK, "Tasks retrieved", records)
}

// CreateTask creates a new task, Pending by default
func (c *TaskController) CreateTask(ctx echo.Context) error {
	var req models.TaskRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if req.Status == "" {
		req.Status = "Pending"
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode task")
	}
	record["createdAt"] = time.Now().Format(time.RFC3339)

	id, err := c.store.Create(ctx.Request().Context(), "tasks", record)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to create task")
	}
	return respond(ctx, http.StatusCreated, "Task created", map[string]string{"id": id})
}

// UpdateTask applies a partial update to a task
func (c *TaskController) UpdateTask(ctx echo.Context) error {
	var req models.TaskRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode task")
	}

	if err := c.store.Update(ctx.Request().Context(), "tasks", ctx.Param("id"), record); err != nil {
		return respondError(ctx, http.StatusNotFound, "Task not found")
	}
	return respond(ctx, http.StatusOK, "Task updated", nil)
}

// UpdateTaskStatus changes just the status of a task
func (c *TaskController) UpdateTaskStatus(ctx echo.Context) error {
	var req models.TaskStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	err := c.store.Update(ctx.Request().Context(), "tasks", ctx.Param("id"), models.Record{
		"status": req.Status,
	})
	if err != nil {
		return respondError(ctx, http.StatusNotFound, "Task not found")
	}
	return respond(ctx, http.StatusOK, "Task status updated", nil)
}

// DeleteTask removes a task
func (c *TaskController) DeleteTask(ctx echo.Context) error {
	if err := c.store.Delete(ctx.Request().Context(), "tasks", ctx.Param("id")); err != nil {
		return respondError(ctx, http.StatusNotFound, "Task not found")
	}
	return respond(ctx, http.StatusOK, "Task deleted", nil)
}

// GetProgress serves per-employee task completion percentages
func (c *TaskController) GetProgress(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	employees, err := c.store.ListAll(reqCtx, "employees")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load employees")
	}
	tasks, err := c.store.ListAll(reqCtx, "tasks")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load tasks")
	}

	return respond(ctx, http.StatusOK, "Task progress", analytics.EmployeeTaskProgress(employees, tasks))
}
