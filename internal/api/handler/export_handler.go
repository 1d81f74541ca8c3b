package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/service"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the download endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Weekly downloads the weekly report for the week containing ref.
// GET /api/v1/export/weekly?ref=2026-03-04
func (h *ExportHandler) Weekly(c *gin.Context) {
	ref := c.DefaultQuery("ref", time.Now().Format(model.DateLayout))

	buf, filename, err := h.exportSvc.WeeklyXLSX(c.Request.Context(), ref)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeXLSX(c, buf, filename)
}

// Monthly downloads the monthly report for the anchor's month.
// GET /api/v1/export/monthly?anchor=2026-03-01
func (h *ExportHandler) Monthly(c *gin.Context) {
	anchor := c.DefaultQuery("anchor", time.Now().Format(model.DateLayout))

	buf, filename, err := h.exportSvc.MonthlyXLSX(c.Request.Context(), anchor)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeXLSX(c, buf, filename)
}

// ICSFeed serves the public calendar as an iCalendar subscription.
// GET /api/v1/export/calendar.ics
func (h *ExportHandler) ICSFeed(c *gin.Context) {
	data, err := h.exportSvc.ICSFeed(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="dasu-calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}

func writeXLSX(c *gin.Context, buf *bytes.Buffer, filename string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 15001, err.Error())
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
