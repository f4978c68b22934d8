package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/analytics"
	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
	"github.com/weblynx/backoffice_backend/services"
	"github.com/weblynx/backoffice_backend/websocket"
)

// SaleController handles the sales page, including the lead conversion
// workflow and the executive performance tab
type SaleController struct {
	store    repositories.RecordStore
	workflow *services.WorkflowService
	hub      *websocket.Hub
}

// NewSaleController creates a new sale controller
func NewSaleController(store repositories.RecordStore, workflow *services.WorkflowService, hub *websocket.Hub) *SaleController {
	return &SaleController{store: store, workflow: workflow, hub: hub}
}

// GetSales lists every sale
func (c *SaleController) GetSales(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "sales")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load sales")
	}
	return respond(ctx, http.StatusOK, "Sales retrieved", records)
}

// CreateSale creates a new sale
func (c *SaleController) CreateSale(ctx echo.Context) error {
	var req models.SaleRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode sale")
	}
	record["createdAt"] = time.Now().Format(time.RFC3339)

	id, err := c.store.Create(ctx.Request().Context(), "sales", record)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to create sale")
	}
	return respond(ctx, http.StatusCreated, "Sale created", map[string]string{"id": id})
}

// UpdateSale applies a partial update to a sale
func (c *SaleController) UpdateSale(ctx echo.Context) error {
	var req models.SaleRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode sale")
	}

	if err := c.store.Update(ctx.Request().Context(), "sales", ctx.Param("id"), record); err != nil {
		return respondError(ctx, http.StatusNotFound, "Sale not found")
	}
	return respond(ctx, http.StatusOK, "Sale updated", nil)
}

// DeleteSale removes a sale
func (c *SaleController) DeleteSale(ctx echo.Context) error {
	if err := c.store.Delete(ctx.Request().Context(), "sales", ctx.Param("id")); err != nil {
		return respondError(ctx, http.StatusNotFound, "Sale not found")
	}
	return respond(ctx, http.StatusOK, "Sale deleted", nil)
}

// ConvertLead runs the lead-to-sale workflow for the lead in the path. The
// lead is fetched once and converted from that snapshot.
func (c *SaleController) ConvertLead(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	lead, err := c.store.GetOne(reqCtx, "leads", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusNotFound, "Lead not found")
	}

	saleID, err := c.workflow.ConvertLeadToSale(reqCtx, lead)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Conversion failed: "+err.Error())
	}

	if c.hub != nil {
		c.hub.Broadcast(websocket.Notification{Type: websocket.EventDashboardDirty})
	}
	return respond(ctx, http.StatusOK, "Lead converted to sale", map[string]string{"saleId": saleID})
}

// GetExecutivePerformance serves the per-executive sales and conversion stats
func (c *SaleController) GetExecutivePerformance(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	employees, err := c.store.ListAll(reqCtx, "employees")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load employees")
	}
	sales, err := c.store.ListAll(reqCtx, "sales")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load sales")
	}
	leads, err := c.store.ListAll(reqCtx, "leads")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load leads")
	}

	stats := analytics.ExecutivePerformance(employees, sales, leads)
	return respond(ctx, http.StatusOK, "Executive performance", stats)
}
