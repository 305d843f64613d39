package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradpoint/gms-api/internal/models"
	"github.com/gradpoint/gms-api/internal/service"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
	"github.com/gradpoint/gms-api/pkg/response"
)

// DocumentHandler exposes document request endpoints.
type DocumentHandler struct {
	documents *service.DocumentService
}

// NewDocumentHandler constructs DocumentHandler.
func NewDocumentHandler(documents *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// List godoc
// @Summary List document requests
// @Tags Documents
// @Produce json
// @Param search query string false "Search by student ID"
// @Param kind query string false "Filter by document kind"
// @Param status query string false "Filter by request status"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	var filter models.DocumentFilter
	filter.Search = querySearch(c)
	filter.Kind = models.DocumentKind(c.Query("kind"))
	filter.Status = models.DocumentRequestStatus(c.Query("status"))
	filter.Page, filter.PageSize = parsePaging(c)

	requests, pagination, err := h.documents.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests, pagination)
}

// Request godoc
// @Summary Open a document request
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body service.RequestDocumentRequest true "Request payload"
// @Success 201 {object} response.Envelope
// @Router /documents [post]
func (h *DocumentHandler) Request(c *gin.Context) {
	var req service.RequestDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	request, err := h.documents.Request(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, request)
}

// Generate godoc
// @Summary Render the requested document to PDF
// @Tags Documents
// @Produce json
// @Param id path string true "Request ID"
// @Success 202 {object} response.Envelope
// @Router /documents/{id}/generate [post]
func (h *DocumentHandler) Generate(c *gin.Context) {
	task, err := h.documents.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, task)
}

// Download godoc
// @Summary Download a generated document
// @Tags Documents
// @Produce application/pdf
// @Param id path string true "Request ID"
// @Success 200
// @Router /documents/{id}/download [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	file, request, err := h.documents.Open(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	filename := string(request.Kind) + "-" + request.StudentID + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/pdf")
	http.ServeContent(c.Writer, c.Request, filename, request.RequestedAt, file)
}
