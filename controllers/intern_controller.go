package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
	"github.com/weblynx/backoffice_backend/services"
	"github.com/weblynx/backoffice_backend/websocket"
)

// InternController handles the interns page: intern CRUD, daily task
// assignments and the internship completion workflow
type InternController struct {
	store    repositories.RecordStore
	workflow *services.WorkflowService
	hub      *websocket.Hub
}

// NewInternController creates a new intern controller
func NewInternController(store repositories.RecordStore, workflow *services.WorkflowService, hub *websocket.Hub) *InternController {
	return &InternController{store: store, workflow: workflow, hub: hub}
}

// GetInterns lists every intern
func (c *InternController) GetInterns(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "interns")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load interns")
	}
	return respond(ctx, http.StatusOK, "Interns retrieved", records)
}

// CreateIntern creates a new intern, Active by default
func (c *InternController) CreateIntern(ctx echo.Context) error {
	var req models.InternRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if req.Status == "" {
		req.Status = "Active"
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode intern")
	}
	record["createdAt"] = time.Now().Format(time.RFC3339)

	id, err := c.store.Create(ctx.Request().Context(), "interns", record)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to create intern")
	}
	return respond(ctx, http.StatusCreated, "Intern created", map[string]string{"id": id})
}

// UpdateIntern applies a partial update to an intern
func (c *InternController) UpdateIntern(ctx echo.Context) error {
	var req models.InternRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode intern")
	}

	if err := c.store.Update(ctx.Request().Context(), "interns", ctx.Param("id"), record); err != nil {
		return respondError(ctx, http.StatusNotFound, "Intern not found")
	}
	return respond(ctx, http.StatusOK, "Intern updated", nil)
}

// DeleteIntern removes an intern
func (c *InternController) DeleteIntern(ctx echo.Context) error {
	if err := c.store.Delete(ctx.Request().Context(), "interns", ctx.Param("id")); err != nil {
		return respondError(ctx, http.StatusNotFound, "Intern not found")
	}
	return respond(ctx, http.StatusOK, "Intern deleted", nil)
}

// CompleteInternship runs the completion workflow: the intern flips to
// Completed and a certificate is written from the intern's snapshot
func (c *InternController) CompleteInternship(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	intern, err := c.store.GetOne(reqCtx, "interns", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusNotFound, "Intern not found")
	}

	certID, err := c.workflow.CompleteInternship(reqCtx, intern)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Completion failed: "+err.Error())
	}

	if c.hub != nil {
		c.hub.Broadcast(websocket.Notification{Type: websocket.EventDashboardDirty})
	}
	return respond(ctx, http.StatusOK, "Internship completed", map[string]string{"certificateId": certID})
}

// GetInternTasks lists daily task assignments, optionally for one intern via
// the internId query parameter
func (c *InternController) GetInternTasks(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "internTasks")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load intern tasks")
	}

	if internID := ctx.QueryParam("internId"); internID != "" {
		filtered := make([]models.Record, 0, len(records))
		for _, r := range records {
			if r["internId"] == internID {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}
	return respond(ctx, http.StatusOK, "Intern tasks retrieved", records)
}

// AssignInternTask assigns a daily task to an intern
func (c *InternController) AssignInternTask(ctx echo.Context) error {
	var req models.InternTaskRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if req.Status == "" {
		req.Status = "Assigned"
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode task")
	}

	id, err := c.store.Create(ctx.Request().Context(), "internTasks", record)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to assign task")
	}
	return respond(ctx, http.StatusCreated, "Task assigned", map[string]string{"id": id})
}

// UpdateInternTask edits a daily task assignment
func (c *InternController) UpdateInternTask(ctx echo.Context) error {
	var req models.InternTaskRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode task")
	}

	if err := c.store.Update(ctx.Request().Context(), "internTasks", ctx.Param("id"), record); err != nil {
		return respondError(ctx, http.StatusNotFound, "Task not found")
	}
	return respond(ctx, http.StatusOK, "Task updated", nil)
}

// UpdateInternTaskStatus changes just the status of a task assignment
func (c *InternController) UpdateInternTaskStatus(ctx echo.Context) error {
	var req models.TaskStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	err := c.store.Update(ctx.Request().Context(), "internTasks", ctx.Param("id"), models.Record{
		"status": req.Status,
	})
	if err != nil {
		return respondError(ctx, http.StatusNotFound, "Task not found")
	}
	return respond(ctx, http.StatusOK, "Task status updated", nil)
}

// DeleteInternTask removes a task assignment
func (c *InternController) DeleteInternTask(ctx echo.Context) error {
	if err := c.store.Delete(ctx.Request().Context(), "internTasks", ctx.Param("id")); err != nil {
		return respondError(ctx, http.StatusNotFound, "Task not found")
	}
	return respond(ctx, http.StatusOK, "Task deleted", nil)
}
