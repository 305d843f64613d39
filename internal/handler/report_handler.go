package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gradpoint/gms-api/internal/dto"
	"github.com/gradpoint/gms-api/internal/models"
	"github.com/gradpoint/gms-api/internal/service"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
	"github.com/gradpoint/gms-api/pkg/response"
)

// ReportHandler exposes report generation and download.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Generate godoc
// @Summary Generate a report
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body dto.ReportRequest true "Report request"
// @Success 202 {object} response.Envelope
// @Router /reports/generate [post]
func (h *ReportHandler) Generate(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	task, err := h.reports.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.ReportTaskResponse{TaskID: task.ID, Status: task.Status})
}

// Download godoc
// @Summary Download a generated report
// @Tags Reports
// @Produce application/octet-stream
// @Param id path string true "Report ID"
// @Success 200
// @Router /reports/{id}/download [get]
func (h *ReportHandler) Download(c *gin.Context) {
	download, err := h.reports.ResolveDownload(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer download.File.Close()

	contentType := "text/csv"
	if download.Format == models.FormatPDF {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", `attachment; filename="`+download.Filename+`"`)
	c.Header("Content-Type", contentType)
	http.ServeContent(c.Writer, c.Request, download.Filename, time.Now(), download.File)
}
