package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/analytics"
	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
)

// AttendanceController handles daily attendance and leave applications
type AttendanceController struct {
	store repositories.RecordStore
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(store repositories.RecordStore) *AttendanceController {
	return &AttendanceController{store: store}
}

// GetAttendance lists attendance records, optionally filtered to one date
// via the date query parameter (YYYY-MM-DD)
func (c *AttendanceController) GetAttendance(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "attendance")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load attendance")
	}

	if date := ctx.QueryParam("date"); date != "" {
		records = analytics.FilterWhere(records, analytics.OnDate("date", date))
	}
	return respond(ctx, http.StatusOK, "Attendance retrieved", records)
}

// MarkAttendance records one employee's attendance for a date
func (c *AttendanceController) MarkAttendance(ctx echo.Context) error {
	var req models.AttendanceRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode attendance")
	}

	id, err := c.store.Create(ctx.Request().Context(), "attendance", record)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to mark attendance")
	}
	return respond(ctx, http.StatusCreated, "Attendance marked", map[string]string{"id": id})
}

// UpdateAttendance corrects an attendance record
func (c *AttendanceController) UpdateAttendance(ctx echo.Context) error {
	var req models.AttendanceRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode attendance")
	}

	if err := c.store.Update(ctx.Request().Context(), "attendance", ctx.Param("id"), record); err != nil {
		return respondError(ctx, http.StatusNotFound, "Attendance record not found")
	}
	return respond(ctx, http.StatusOK, "Attendance updated", nil)
}

// DeleteAttendance removes an attendance record
func (c *AttendanceController) DeleteAttendance(ctx echo.Context) error {
	if err := c.store.Delete(ctx.Request().Context(), "attendance", ctx.Param("id")); err != nil {
		return respondError(ctx, http.StatusNotFound, "Attendance record not found")
	}
	return respond(ctx, http.StatusOK, "Attendance deleted", nil)
}

// GetLeaves lists every leave application
func (c *AttendanceController) GetLeaves(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "leaves")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load leaves")
	}
	return respond(ctx, http.StatusOK, "Leaves retrieved", records)
}

// ApplyLeave files a leave application, Pending by default
func (c *AttendanceController) ApplyLeave(ctx echo.Context) error {
	var req models.LeaveRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if req.Status == "" {
		req.Status = "Pending"
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode leave")
	}

	id, err := c.store.Create(ctx.Request().Context(), "leaves", record)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to apply leave")
	}
	return respond(ctx, http.StatusCreated, "Leave applied", map[string]string{"id": id})
}

// UpdateLeave approves, rejects or edits a leave application
func (c *AttendanceController) UpdateLeave(ctx echo.Context) error {
	var req models.LeaveRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode leave")
	}

	if err := c.store.Update(ctx.Request().Context(), "leaves", ctx.Param("id"), record); err != nil {
		return respondError(ctx, http.StatusNotFound, "Leave not found")
	}
	return respond(ctx, http.StatusOK, "Leave updated", nil)
}

// DeleteLeave removes a leave application
func (c *AttendanceController) DeleteLeave(ctx echo.Context) error {
	if err := c.store.Delete(ctx.Request().Context(), "leaves", ctx.Param("id")); err != nil {
		return respondError(ctx, http.StatusNotFound, "Leave not found")
	}
	return respond(ctx, http.StatusOK, "Leave deleted", nil)
}
