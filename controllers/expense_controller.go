package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/analytics"
	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
	"github.com/weblynx/backoffice_backend/utils"
)

// ExpenseController handles the expenses page: CRUD, bill uploads and the
// month-scoped category/date breakdowns
type ExpenseController struct {
	store repositories.RecordStore
}

// NewExpenseController creates a new expense controller
func NewExpenseController(store repositories.RecordStore) *ExpenseController {
	return &ExpenseController{store: store}
}

// GetExpenses lists every expense
func (c *ExpenseController) GetExpenses(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "expenses")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load expenses")
	}
	return respond(ctx, http.StatusOK, "Expenses retrieved", records)
}

// CreateExpense creates a new expense
func (c *ExpenseController) CreateExpense(ctx echo.Context) error {
	var req models.ExpenseRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode expense")
	}
	record["createdAt"] = time.Now().Format(time.RFC3339)

	id, err := c.store.Create(ctx.Request().Context(), "expenses", record)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to create expense")
	}
	return respond(ctx, http.StatusCreated, "Expense created", map[string]string{"id": id})
}

// UpdateExpense applies a partial update to an expense
func (c *ExpenseController) UpdateExpense(ctx echo.Context) error {
	var req models.ExpenseRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode expense")
	}

	if err := c.store.Update(ctx.Request().Context(), "expenses", ctx.Param("id"), record); err != nil {
		return respondError(ctx, http.StatusNotFound, "Expense not found")
	}
	return respond(ctx, http.StatusOK, "Expense updated", nil)
}

// DeleteExpense removes an expense
func (c *ExpenseController) DeleteExpense(ctx echo.Context) error {
	if err := c.store.Delete(ctx.Request().Context(), "expenses", ctx.Param("id")); err != nil {
		return respondError(ctx, http.StatusNotFound, "Expense not found")
	}
	return respond(ctx, http.StatusOK, "Expense deleted", nil)
}

// GetBreakdown serves the month-scoped analytics for the expenses page:
// the category breakdown and the date-wise drill-down. The month query
// parameter is YYYY-MM and defaults to the current month.
func (c *ExpenseController) GetBreakdown(ctx echo.Context) error {
	month := ctx.QueryParam("month")
	if month == "" {
		month = analytics.CurrentMonth()
	}

	records, err := c.store.ListAll(ctx.Request().Context(), "expenses")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load expenses")
	}

	monthly := analytics.FilterWhere(records, analytics.InMonthOf("date", month))

	return respond(ctx, http.StatusOK, "Expense breakdown", map[string]interface{}{
		"month":      month,
		"total":      analytics.SumAmount(monthly, analytics.All),
		"categories": analytics.CategoryBreakdown(monthly, models.ExpenseCategories),
		"dateWise":   analytics.DateWiseBreakdown(records, "date", month),
	})
}

// UploadBill stores an expense bill scan and returns its URL
func (c *ExpenseController) UploadBill(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "No file provided")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Failed to read file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Failed to read file")
	}

	url, err := utils.SaveDocument(data, fileHeader.Filename, "bills")
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}
	return respond(ctx, http.StatusOK, "Bill uploaded", map[string]string{"url": url})
}
