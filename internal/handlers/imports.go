package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fashion-catalog/internal/importer"
	"fashion-catalog/internal/repository"
)

type ImportForm struct {
	Brand string                `form:"brand" binding:"required"`
	File  *multipart.FileHeader `form:"file" binding:"required"`
}

type ValidateForm struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// POST /v1/imports
func (h *Handler) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	var form ImportForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindError(c, err)
		return
	}
	file, err := form.File.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "could not read uploaded file"})
		return
	}
	defer file.Close()

	report, err := h.importer.Import(c.Request.Context(), importer.Request{
		Brand:    form.Brand,
		FileName: form.File.Filename,
		Body:     file,
	})
	if err != nil {
		h.importError(c, err, report)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// POST /v1/imports/validate
func (h *Handler) ValidateImport(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	var form ValidateForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindError(c, err)
		return
	}
	file, err := form.File.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "could not read uploaded file"})
		return
	}
	defer file.Close()

	report, err := h.importer.Check(importer.Request{FileName: form.File.Filename, Body: file})
	if err != nil && !errors.Is(err, importer.ErrInvalidSheet) {
		h.importError(c, err, report)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /v1/imports
func (h *Handler) ImportHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	entries, err := h.importer.History(c.Request.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("import history failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not fetch import history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imports": entries})
}

// DELETE /v1/imports/:brand
func (h *Handler) DeleteImport(c *gin.Context) {
	brand := c.Param("brand")
	if err := h.importer.Delete(c.Request.Context(), brand); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "no imported products for brand"})
			return
		}
		h.log.Error().Err(err).Str("brand", brand).Msg("delete import failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not delete imported products"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "imported products deleted"})
}

func (h *Handler) bindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "file too large"})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

func (h *Handler) importError(c *gin.Context, err error, report importer.Report) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "file too large"})
	case errors.Is(err, importer.ErrInvalidSheet):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: report.Validation.Message, Details: report.Validation})
	case importer.IsClientError(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		h.log.Error().Err(err).Msg("import failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not import file"})
	}
}
