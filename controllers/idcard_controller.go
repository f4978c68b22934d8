package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/analytics"
	"github.com/weblynx/backoffice_backend/exports"
	"github.com/weblynx/backoffice_backend/repositories"
	"github.com/weblynx/backoffice_backend/utils"
)

// IDCardController generates printable employee ID cards
type IDCardController struct {
	store repositories.RecordStore
}

// NewIDCardController creates a new ID card controller
func NewIDCardController(store repositories.RecordStore) *IDCardController {
	return &IDCardController{store: store}
}

// GenerateIDCard renders a CR80 PDF card for the employee in the path, with
// the company letterhead and a QR code carrying the employee id
func (c *IDCardController) GenerateIDCard(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	employee, err := c.store.GetOne(reqCtx, "employees", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusNotFound, "Employee not found")
	}

	lh := exports.Letterhead{CompanyName: "Back Office"}
	if settings, err := c.store.ListAll(reqCtx, "settings"); err == nil && len(settings) > 0 {
		profile := settings[0]
		if name := analytics.Str(profile, "companyName"); name != "" {
			lh.CompanyName = name
		}
		lh.Address = analytics.Str(profile, "address")
		lh.Phone = analytics.Str(profile, "phone")
		lh.Email = analytics.Str(profile, "email")
		lh.LogoPath = utils.LocalPathForURL(analytics.Str(profile, "logoUrl"))
	}

	card := exports.IDCardData{
		EmployeeID:  employee.ID(),
		Name:        analytics.Str(employee, "name"),
		Designation: analytics.Str(employee, "designation"),
		Department:  analytics.Str(employee, "department"),
		JoinDate:    analytics.Str(employee, "joinDate"),
	}

	data, err := exports.IDCardPDF(lh, card)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to render ID card")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="idcard-`+card.EmployeeID+`.pdf"`)
	return ctx.Blob(http.StatusOK, "application/pdf", data)
}
