package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/analytics"
	"github.com/weblynx/backoffice_backend/exports"
	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
	"github.com/weblynx/backoffice_backend/utils"
)

// ReportController serves the reports page: the headline summary plus
// CSV/XLSX/PDF export and mail-out of the page tables
type ReportController struct {
	store repositories.RecordStore
}

// NewReportController creates a new report controller
func NewReportController(store repositories.RecordStore) *ReportController {
	return &ReportController{store: store}
}

// GetSummary recomputes the report headline numbers from full scans
func (c *ReportController) GetSummary(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	collections := []string{"sales", "expenses", "projects", "employees", "interns", "tasks"}
	scans := make(map[string][]models.Record, len(collections))
	for _, name := range collections {
		records, err := c.store.ListAll(reqCtx, name)
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, "Failed to load "+name)
		}
		scans[name] = records
	}

	summary := analytics.ComputeReportSummary(
		scans["sales"], scans["expenses"], scans["projects"],
		scans["employees"], scans["interns"], scans["tasks"],
	)
	return respond(ctx, http.StatusOK, "Report summary", summary)
}

// reportCollection maps a report name to the collection it exports
func reportCollection(report string) string {
	if report == "attendance" {
		return "attendance"
	}
	if report == "interns" {
		return "interns"
	}
	return report
}

// Export streams the named report as csv, xlsx or pdf. The report path
// parameter selects the table; format defaults to csv.
func (c *ReportController) Export(ctx echo.Context) error {
	report := ctx.Param("report")
	format := ctx.QueryParam("format")
	if format == "" {
		format = "csv"
	}

	records, err := c.store.ListAll(ctx.Request().Context(), reportCollection(report))
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load report data")
	}

	filename := fmt.Sprintf("%s-%s", report, analytics.TodayISO())

	switch format {
	case "csv":
		data, err := exports.CSV(report, records)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err.Error())
		}
		ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`.csv"`)
		return ctx.Blob(http.StatusOK, "text/csv", data)
	case "xlsx":
		table, err := exports.BuildTable(report, records)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err.Error())
		}
		data, err := exports.XLSX(table)
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, "Failed to render workbook")
		}
		ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`.xlsx"`)
		return ctx.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "pdf":
		table, err := exports.BuildTable(report, records)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err.Error())
		}
		lh, err := c.letterhead(ctx.Request().Context())
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, "Failed to load company profile")
		}
		data, err := exports.ReportPDF(lh, table)
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, "Failed to render PDF")
		}
		ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`.pdf"`)
		return ctx.Blob(http.StatusOK, "application/pdf", data)
	}
	return respondError(ctx, http.StatusBadRequest, "Unknown format "+format)
}

// EmailReport renders the named report and mails it as an attachment
func (c *ReportController) EmailReport(ctx echo.Context) error {
	var req models.EmailReportRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if req.Format == "" {
		req.Format = "csv"
	}

	records, err := c.store.ListAll(ctx.Request().Context(), reportCollection(req.Report))
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load report data")
	}

	var data []byte
	filename := fmt.Sprintf("%s-%s.%s", req.Report, analytics.TodayISO(), req.Format)
	switch req.Format {
	case "xlsx":
		table, err := exports.BuildTable(req.Report, records)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err.Error())
		}
		data, err = exports.XLSX(table)
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, "Failed to render workbook")
		}
	default:
		data, err = exports.CSV(req.Report, records)
		if err != nil {
			return respondError(ctx, http.StatusBadRequest, err.Error())
		}
	}

	subject := fmt.Sprintf("%s report - %s", req.Report, analytics.TodayISO())
	body := "Please find the requested report attached."
	if err := utils.SendReportEmail(req.To, subject, body, filename, data); err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to send email: "+err.Error())
	}
	return respond(ctx, http.StatusOK, "Report emailed to "+req.To, nil)
}

// letterhead builds the PDF letterhead from the stored company profile
func (c *ReportController) letterhead(reqCtx context.Context) (exports.Letterhead, error) {
	records, err := c.store.ListAll(reqCtx, "settings")
	if err != nil {
		return exports.Letterhead{}, err
	}

	lh := exports.Letterhead{CompanyName: "Back Office"}
	if len(records) > 0 {
		profile := records[0]
		if name := analytics.Str(profile, "companyName"); name != "" {
			lh.CompanyName = name
		}
		lh.Address = analytics.Str(profile, "address")
		lh.Phone = analytics.Str(profile, "phone")
		lh.Email = analytics.Str(profile, "email")
		lh.LogoPath = utils.LocalPathForURL(analytics.Str(profile, "logoUrl"))
	}
	return lh, nil
}
