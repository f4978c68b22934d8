package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/analytics"
	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
)

// DashboardController serves the landing-page stat block
type DashboardController struct {
	store repositories.RecordStore
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(store repositories.RecordStore) *DashboardController {
	return &DashboardController{store: store}
}

// GetStats recomputes every dashboard number from full collection scans.
// Today/this-month windows are resolved per request so the numbers stay
// correct across midnight without a restart.
func (c *DashboardController) GetStats(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var in analytics.DashboardInput
	var err error
	scans := []struct {
		collection string
		dest       *[]models.Record
	}{
		{"projects", &in.Projects},
		{"sales", &in.Sales},
		{"leads", &in.Leads},
		{"expenses", &in.Expenses},
		{"inventory", &in.Inventory},
		{"employees", &in.Employees},
		{"interns", &in.Interns},
		{"tasks", &in.Tasks},
	}
	for _, scan := range scans {
		*scan.dest, err = c.store.ListAll(reqCtx, scan.collection)
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, "Failed to load "+scan.collection)
		}
	}

	stats := analytics.ComputeDashboard(in, analytics.TodayISO(), analytics.CurrentMonth())
	return respond(ctx, http.StatusOK, "Dashboard stats", stats)
}
