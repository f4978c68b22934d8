package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
	"github.com/weblynx/backoffice_backend/utils"
)

// EmployeeController handles the employees page
type EmployeeController struct {
	store repositories.RecordStore
}

// NewEmployeeController creates a new employee controller
func NewEmployeeController(store repositories.RecordStore) *EmployeeController {
	return &EmployeeController{store: store}
}

// GetEmployees lists every employee
func (c *EmployeeController) GetEmployees(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "employees")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load employees")
	}
	return respond(ctx, http.StatusOK, "Employees retrieved", records)
}

// CreateEmployee creates a new employee
func (c *EmployeeController) CreateEmployee(ctx echo.Context) error {
	var req models.EmployeeRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if req.Status == "" {
		req.Status = "Active"
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode employee")
	}
	record["createdAt"] = time.Now().Format(time.RFC3339)

	id, err := c.store.Create(ctx.Request().Context(), "employees", record)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to create employee")
	}
	return respond(ctx, http.StatusCreated, "Employee created", map[string]string{"id": id})
}

// UpdateEmployee applies a partial update to an employee
func (c *EmployeeController) UpdateEmployee(ctx echo.Context) error {
	var req models.EmployeeRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode employee")
	}

	if err := c.store.Update(ctx.Request().Context(), "employees", ctx.Param("id"), record); err != nil {
		return respondError(ctx, http.StatusNotFound, "Employee not found")
	}
	return respond(ctx, http.StatusOK, "Employee updated", nil)
}

// DeleteEmployee removes an employee
func (c *EmployeeController) DeleteEmployee(ctx echo.Context) error {
	if err := c.store.Delete(ctx.Request().Context(), "employees", ctx.Param("id")); err != nil {
		return respondError(ctx, http.StatusNotFound, "Employee not found")
	}
	return respond(ctx, http.StatusOK, "Employee deleted", nil)
}

// UploadEmployeeDocument stores an employee document and returns its URL
func (c *EmployeeController) UploadEmployeeDocument(ctx echo.Context) error {
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

	url, err := utils.SaveDocument(data, fileHeader.Filename, "employees")
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}
	return respond(ctx, http.StatusOK, "Document uploaded", models.FileRef{Name: fileHeader.Filename, URL: url})
}
