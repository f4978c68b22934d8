package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weblynx/backoffice_backend/analytics"
	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
	"github.com/weblynx/backoffice_backend/services"
)

func TestConvertLeadEndpoint(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemStore()
	controller := NewSaleController(store, services.NewWorkflowService(store), nil)

	leadID, err := store.Create(ctx, "leads", models.Record{
		"name":      "Acme Corp",
		"executive": "Asha",
		"notes":     "urgent",
	})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(leadID)

	require.NoError(t, controller.ConvertLead(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	lead, err := store.GetOne(ctx, "leads", leadID)
	require.NoError(t, err)
	assert.Equal(t, "Converted", lead["status"])

	sales, err := store.ListAll(ctx, "sales")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Acme Corp", sales[0]["clientName"])
}

func TestConvertLeadEndpointMissingLead(t *testing.T) {
	store := repositories.NewMemStore()
	controller := NewSaleController(store, services.NewWorkflowService(store), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, controller.ConvertLead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExecutivePerformanceEndpoint(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemStore()
	controller := NewSaleController(store, services.NewWorkflowService(store), nil)

	_, err := store.Create(ctx, "employees", models.Record{"name": "Asha"})
	require.NoError(t, err)
	_, err = store.Create(ctx, "sales", models.Record{"executive": "Asha", "amount": 5000.0})
	require.NoError(t, err)
	_, err = store.Create(ctx, "leads", models.Record{"executive": "Asha", "convertedToSale": true})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, controller.GetExecutivePerformance(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []analytics.ExecutiveStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 5000.0, resp.Data[0].TotalAmount)
	assert.Equal(t, 100.0, resp.Data[0].ConversionRate)
}
