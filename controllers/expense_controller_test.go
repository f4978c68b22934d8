package controllers

import (
	"context"
	"encoding/json"
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

func TestExpenseBreakdown(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemStore()

	seed := []models.Record{
		{"category": "Rent", "amount": 6000.0, "date": "2025-03-01"},
		{"category": "Snacks", "amount": 1000.0, "date": "2025-03-10"},
		{"category": "Snacks", "amount": 500.0, "date": "2025-03-10"},
		// Same month, previous year: must not count
		{"category": "Rent", "amount": 9999.0, "date": "2024-03-01"},
	}
	for _, expense := range seed {
		_, err := store.Create(ctx, "expenses", expense)
		require.NoError(t, err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/expenses/breakdown?month=2025-03", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	controller := NewExpenseController(store)
	require.NoError(t, controller.GetBreakdown(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Month      string                    `json:"month"`
			Total      float64                   `json:"total"`
			Categories []analytics.CategoryTotal `json:"categories"`
			DateWise   []analytics.DateTotal     `json:"dateWise"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2025-03", resp.Data.Month)
	assert.Equal(t, 7500.0, resp.Data.Total)

	require.Len(t, resp.Data.Categories, 2)
	assert.Equal(t, "Rent", resp.Data.Categories[0].Category)
	assert.Equal(t, 6000.0, resp.Data.Categories[0].Amount)
	assert.Equal(t, "Snacks", resp.Data.Categories[1].Category)
	assert.Equal(t, 1500.0, resp.Data.Categories[1].Amount)

	require.Len(t, resp.Data.DateWise, 2)
	assert.Equal(t, "2025-03-10", resp.Data.DateWise[0].Date)
	assert.Equal(t, 1500.0, resp.Data.DateWise[0].Amount)
}

func TestCreateExpenseRejectsUnknownCategory(t *testing.T) {
	store := repositories.NewMemStore()
	controller := NewExpenseController(store)

	e := echo.New()
	body := `{"category":"Gifts","amount":100,"date":"2025-03-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := controller.CreateExpense(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
