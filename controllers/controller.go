// Package controllers holds the HTTP handlers. Each page module gets its own
// controller over the shared RecordStore; handlers bind a typed request,
// validate it, convert it to a schemaless record and hand it to the store.
package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/models"
)

var validate = validator.New()

// bindAndValidate binds the request body into req and runs struct validation
func bindAndValidate(ctx echo.Context, req interface{}) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// toRecord converts a typed request struct into a schemaless record via its
// json tags, so stored field names match what the API serves back
func toRecord(req interface{}) (models.Record, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	var record models.Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}
	return record, nil
}

func respond(ctx echo.Context, status int, message string, data interface{}) error {
	return ctx.JSON(status, models.Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

func respondError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, models.Response{
		Status:  status,
		Message: message,
	})
}
