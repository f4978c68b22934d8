package controllers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
	"github.com/weblynx/backoffice_backend/utils"
)

// ProjectController handles the projects page
type ProjectController struct {
	store repositories.RecordStore
}

// NewProjectController creates a new project controller
func NewProjectController(store repositories.RecordStore) *ProjectController {
	return &ProjectController{store: store}
}

// GetProjects lists every project
func (c *ProjectController) GetProjects(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "projects")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load projects")
	}
	return respond(ctx, http.StatusOK, "Projects retrieved", records)
}

// CreateProject creates a new project
func (c *ProjectController) CreateProject(ctx echo.Context) error {
	var req models.ProjectRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if req.Status == "" {
		req.Status = "In Progress"
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode project")
	}

	id, err := c.store.Create(ctx.Request().Context(), "projects", record)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to create project")
	}
	return respond(ctx, http.StatusCreated, "Project created", map[string]string{"id": id})
}

// UpdateProject applies a partial update to a project
func (c *ProjectController) UpdateProject(ctx echo.Context) error {
	var req models.ProjectRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode project")
	}

	if err := c.store.Update(ctx.Request().Context(), "projects", ctx.Param("id"), record); err != nil {
		return respondError(ctx, http.StatusNotFound, "Project not found")
	}
	return respond(ctx, http.StatusOK, "Project updated", nil)
}

// DeleteProject removes a project
func (c *ProjectController) DeleteProject(ctx echo.Context) error {
	if err := c.store.Delete(ctx.Request().Context(), "projects", ctx.Param("id")); err != nil {
		return respondError(ctx, http.StatusNotFound, "Project not found")
	}
	return respond(ctx, http.StatusOK, "Project deleted", nil)
}

// UploadProjectFile stores a project attachment and returns its URL; the
// client then attaches the URL to the project via UpdateProject
func (c *ProjectController) UploadProjectFile(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "No file provided")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Failed to read file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Failed to read file")
	}

	url, err := utils.SaveDocument(data, fileHeader.Filename, "projects")
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}
	return respond(ctx, http.StatusOK, "File uploaded", models.FileRef{Name: fileHeader.Filename, URL: url})
}
