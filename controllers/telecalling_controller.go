package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/analytics"
	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
)

// TelecallingController handles the telecalling page: leads CRUD, bulk
// import, quick status updates and per-telecaller performance
type TelecallingController struct {
	store repositories.RecordStore
}

// NewTelecallingController creates a new telecalling controller
func NewTelecallingController(store repositories.RecordStore) *TelecallingController {
	return &TelecallingController{store: store}
}

// GetLeads lists every lead
func (c *TelecallingController) GetLeads(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "leads")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load leads")
	}
	return respond(ctx, http.StatusOK, "Leads retrieved", records)
}

// CreateLead creates a new lead
func (c *TelecallingController) CreateLead(ctx echo.Context) error {
	var req models.LeadRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if req.Status == "" {
		req.Status = "New"
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode lead")
	}
	record["createdAt"] = time.Now().Format(time.RFC3339)

	id, err := c.store.Create(ctx.Request().Context(), "leads", record)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to create lead")
	}
	return respond(ctx, http.StatusCreated, "Lead created", map[string]string{"id": id})
}

// UpdateLead applies a partial update to a lead
func (c *TelecallingController) UpdateLead(ctx echo.Context) error {
	var req models.LeadRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode lead")
	}

	if err := c.store.Update(ctx.Request().Context(), "leads", ctx.Param("id"), record); err != nil {
		return respondError(ctx, http.StatusNotFound, "Lead not found")
	}
	return respond(ctx, http.StatusOK, "Lead updated", nil)
}

// UpdateLeadStatus changes just the pipeline status and bumps the call log
func (c *TelecallingController) UpdateLeadStatus(ctx echo.Context) error {
	var req models.LeadStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	lead, err := c.store.GetOne(reqCtx, "leads", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusNotFound, "Lead not found")
	}

	err = c.store.Update(reqCtx, "leads", ctx.Param("id"), models.Record{
		"status":       req.Status,
		"lastCallDate": analytics.TodayISO(),
		"callCount":    analytics.Num(lead, "callCount") + 1,
	})
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to update lead")
	}
	return respond(ctx, http.StatusOK, "Lead status updated", nil)
}

// DeleteLead removes a lead
func (c *TelecallingController) DeleteLead(ctx echo.Context) error {
	if err := c.store.Delete(ctx.Request().Context(), "leads", ctx.Param("id")); err != nil {
		return respondError(ctx, http.StatusNotFound, "Lead not found")
	}
	return respond(ctx, http.StatusOK, "Lead deleted", nil)
}

// BulkUploadLeads imports newline-separated "name,phone,email,company" rows.
// Rows without a name are skipped; the response reports how many imported.
func (c *TelecallingController) BulkUploadLeads(ctx echo.Context) error {
	var req models.BulkLeadRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	imported := 0
	skipped := 0
	for _, line := range strings.Split(req.Data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		name := strings.TrimSpace(parts[0])
		if name == "" {
			skipped++
			continue
		}

		lead := models.Record{
			"name":      name,
			"status":    "New",
			"source":    "Bulk Import",
			"callCount": 0,
			"createdAt": time.Now().Format(time.RFC3339),
		}
		if len(parts) > 1 {
			lead["phone"] = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			lead["email"] = strings.TrimSpace(parts[2])
		}
		if len(parts) > 3 {
			lead["company"] = strings.TrimSpace(parts[3])
		}

		if _, err := c.store.Create(reqCtx, "leads", lead); err != nil {
			skipped++
			continue
		}
		imported++
	}

	return respond(ctx, http.StatusOK, "Bulk upload complete", map[string]int{
		"imported": imported,
		"skipped":  skipped,
	})
}

// GetTelecallerPerformance serves the per-telecaller call activity stats
func (c *TelecallingController) GetTelecallerPerformance(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	employees, err := c.store.ListAll(reqCtx, "employees")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load employees")
	}
	leads, err := c.store.ListAll(reqCtx, "leads")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load leads")
	}

	stats := analytics.TelecallerPerformance(employees, leads, analytics.TodayISO())
	return respond(ctx, http.StatusOK, "Telecaller performance", stats)
}
