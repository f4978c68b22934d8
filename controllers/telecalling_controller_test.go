package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weblynx/backoffice_backend/analytics"
	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
)

func TestBulkUploadLeads(t *testing.T) {
	store := repositories.NewMemStore()
	controller := NewTelecallingController(store)

	body := `{"data":"Acme Corp,9876543210,hello@acme.example,Acme\nGlobex,,,\n,missing-name\n\nSolo Name"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/leads/bulk", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, controller.BulkUploadLeads(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	leads, err := store.ListAll(context.Background(), "leads")
	require.NoError(t, err)
	require.Len(t, leads, 3, "rows without a name are skipped")

	first := leads[0]
	assert.Equal(t, "Acme Corp", first["name"])
	assert.Equal(t, "9876543210", first["phone"])
	assert.Equal(t, "hello@acme.example", first["email"])
	assert.Equal(t, "Acme", first["company"])
	assert.Equal(t, "New", first["status"])
	assert.Equal(t, "Bulk Import", first["source"])

	assert.Equal(t, "Solo Name", leads[2]["name"])
}

func TestUpdateLeadStatusBumpsCallLog(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemStore()
	controller := NewTelecallingController(store)

	leadID, err := store.Create(ctx, "leads", models.Record{"name": "Acme", "callCount": 2})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"Interested"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(leadID)

	require.NoError(t, controller.UpdateLeadStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	lead, err := store.GetOne(ctx, "leads", leadID)
	require.NoError(t, err)
	assert.Equal(t, "Interested", lead["status"])
	assert.Equal(t, 3.0, lead["callCount"])
	assert.Equal(t, analytics.TodayISO(), lead["lastCallDate"])
}

func TestUpdateLeadStatusMissingLead(t *testing.T) {
	store := repositories.NewMemStore()
	controller := NewTelecallingController(store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"Interested"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, controller.UpdateLeadStatus(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
