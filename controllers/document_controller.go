package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/repositories"
	"github.com/weblynx/backoffice_backend/utils"
)

// DocumentController handles the company documents page
type DocumentController struct {
	store repositories.RecordStore
}

// NewDocumentController creates a new document controller
func NewDocumentController(store repositories.RecordStore) *DocumentController {
	return &DocumentController{store: store}
}

// GetDocuments lists every document
func (c *DocumentController) GetDocuments(ctx echo.Context) error {
	records, err := c.store.ListAll(ctx.Request().Context(), "documents")
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to load documents")
	}
	return respond(ctx, http.StatusOK, "Documents retrieved", records)
}

// CreateDocument registers a document entry
func (c *DocumentController) CreateDocument(ctx echo.Context) error {
	var req models.DocumentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode document")
	}
	record["uploadedAt"] = time.Now().Format(time.RFC3339)

	id, err := c.store.Create(ctx.Request().Context(), "documents", record)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to create document")
	}
	return respond(ctx, http.StatusCreated, "Document created", map[string]string{"id": id})
}

// UpdateDocument edits a document entry
func (c *DocumentController) UpdateDocument(ctx echo.Context) error {
	var req models.DocumentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	record, err := toRecord(&req)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to encode document")
	}

	if err := c.store.Update(ctx.Request().Context(), "documents", ctx.Param("id"), record); err != nil {
		return respondError(ctx, http.StatusNotFound, "Document not found")
	}
	return respond(ctx, http.StatusOK, "Document updated", nil)
}

// DeleteDocument removes a document entry and its stored file
func (c *DocumentController) DeleteDocument(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	record, err := c.store.GetOne(reqCtx, "documents", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusNotFound, "Document not found")
	}

	if err := c.store.Delete(reqCtx, "documents", ctx.Param("id")); err != nil {
		return respondError(ctx, http.StatusNotFound, "Document not found")
	}

	if url, ok := record["url"].(string); ok && url != "" {
		_ = utils.DeleteUpload(url)
	}
	return respond(ctx, http.StatusOK, "Document deleted", nil)
}

// UploadDocumentFile stores a document file and returns its URL
func (c *DocumentController) UploadDocumentFile(ctx echo.Context) error {
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

	url, err := utils.SaveDocument(data, fileHeader.Filename, "documents")
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}
	return respond(ctx, http.StatusOK, "File uploaded", map[string]string{"url": url})
}
