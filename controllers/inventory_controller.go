package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/analytics"
	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
)

// InventoryController handles the inventory page
type InventoryController struct {
	store repositories.RecordStore
}

// NewInventoryController creates a new inventory controller
func NewInventoryController(store repositories.RecordStore) *InventoryController {
	return &InventoryController{store: store}
}

// GetItems lists every inventory item
func (c *InventoryController) GetItems(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "inventory")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load inventory")
	}
	return respond(ctx, http.StatusOK, "Inventory retrieved", records)
}

// CreateItem creates a new inventory item
func (c *InventoryController) CreateItem(ctx echo.Context) error {
	var req models.InventoryRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode item")
	}

	id, err := c.store.Create(ctx.Request().Context(), "inventory", record)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to create item")
	}
	return respond(ctx, http.StatusCreated, "Item created", map[string]string{"id": id})
}

// UpdateItem applies a partial update to an inventory item
func (c *InventoryController) UpdateItem(ctx echo.Context) error {
	var req models.InventoryRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode item")
	}

	if err := c.store.Update(ctx.Request().Context(), "inventory", ctx.Param("id"), record); err != nil {
		return respondError(ctx, http.StatusNotFound, "Item not found")
	}
	return respond(ctx, http.StatusOK, "Item updated", nil)
}

// DeleteItem removes an inventory item
func (c *InventoryController) DeleteItem(ctx echo.Context) error {
	if err := c.store.Delete(ctx.Request().Context(), "inventory", ctx.Param("id")); err != nil {
		return respondError(ctx, http.StatusNotFound, "Item not found")
	}
	return respond(ctx, http.StatusOK, "Item deleted", nil)
}

// GetLowStock lists items at or below the reorder threshold
func (c *InventoryController) GetLowStock(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "inventory")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load inventory")
	}

	low := analytics.FilterWhere(records, analytics.IsLowStock)
	return respond(ctx, http.StatusOK, "Low stock items", low)
}

// GetVendorBreakdown serves the per-vendor inventory value totals
func (c *InventoryController) GetVendorBreakdown(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "inventory")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load inventory")
	}

	return respond(ctx, http.StatusOK, "Vendor breakdown", analytics.VendorBreakdown(records))
}
