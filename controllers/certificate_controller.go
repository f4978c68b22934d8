package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
)

// CertificateController handles the certificates page. Most certificates are
// written by the internship completion workflow; this controller covers
// listing, manual issuance and deletion.
type CertificateController struct {
	store repositories.RecordStore
}

// NewCertificateController creates a new certificate controller
func NewCertificateController(store repositories.RecordStore) *CertificateController {
	return &CertificateController{store: store}
}

// GetCertificates lists every certificate
func (c *CertificateController) GetCertificates(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "certificates")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load certificates")
	}
	return respond(ctx, http.StatusOK, "Certificates retrieved", records)
}

// CreateCertificate issues a certificate manually
func (c *CertificateController) CreateCertificate(ctx echo.Context) error {
	var req models.CertificateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode certificate")
	}
	record["generatedAt"] = time.Now().Format(time.RFC3339)

	id, err := c.store.Create(ctx.Request().Context(), "certificates", record)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to create certificate")
	}
	return respond(ctx, http.StatusCreated, "Certificate created", map[string]string{"id": id})
}

// DeleteCertificate removes a certificate
func (c *CertificateController) DeleteCertificate(ctx echo.Context) error {
	if err := c.store.Delete(ctx.Request().Context(), "certificates", ctx.Param("id")); err != nil {
		return respondError(ctx, http.StatusNotFound, "Certificate not found")
	}
	return respond(ctx, http.StatusOK, "Certificate deleted", nil)
}
