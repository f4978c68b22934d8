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
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemStore()

	today := analytics.TodayISO()
	_, err := store.Create(ctx, "sales", models.Record{"amount": 1000.0, "date": today})
	require.NoError(t, err)
	_, err = store.Create(ctx, "sales", models.Record{"amount": 500.0, "date": "2020-01-01"})
	require.NoError(t, err)
	_, err = store.Create(ctx, "projects", models.Record{"type": "Web"})
	require.NoError(t, err)
	_, err = store.Create(ctx, "inventory", models.Record{"quantity": 3})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	controller := NewDashboardController(store)
	require.NoError(t, controller.GetStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data analytics.DashboardStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 1500.0, resp.Data.Sales.Total)
	assert.Equal(t, 1000.0, resp.Data.Sales.Today)
	assert.Equal(t, 1, resp.Data.Projects.Total)
	assert.Equal(t, 1, resp.Data.Projects.Web)
	assert.Equal(t, 1, resp.Data.Inventory.LowStock)
}
