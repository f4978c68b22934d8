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

	"github.com/weblynx/backoffice_backend/repositories"
	"github.com/weblynx/backoffice_backend/websocket"
)

func TestUpdateSettingsCreatesSingleDocument(t *testing.T) {
	store := repositories.NewMemStore()
	hub := websocket.NewHub()
	controller := NewSettingsController(store, nil, hub)

	body := `{"companyName":"WebLynx Solutions","address":"12 MG Road","phone":"+91 98765 43210"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, controller.UpdateSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	records, err := store.ListAll(context.Background(), "settings")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "WebLynx Solutions", records[0]["companyName"])

	// Second update edits the same document instead of adding another
	req = httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"companyName":"Renamed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)

	require.NoError(t, controller.UpdateSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	records, err = store.ListAll(context.Background(), "settings")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Renamed", records[0]["companyName"])
}

func TestUpdateSettingsRequiresCompanyName(t *testing.T) {
	store := repositories.NewMemStore()
	controller := NewSettingsController(store, nil, websocket.NewHub())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"address":"12 MG Road"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := controller.UpdateSettings(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
