package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradpoint/gms-api/internal/models"
	"github.com/gradpoint/gms-api/internal/service"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
	"github.com/gradpoint/gms-api/pkg/response"
)

// ClearanceHandler exposes the departmental sign-off endpoints.
type ClearanceHandler struct {
	clearance *service.ClearanceService
}

// NewClearanceHandler constructs ClearanceHandler.
func NewClearanceHandler(clearance *service.ClearanceService) *ClearanceHandler {
	return &ClearanceHandler{clearance: clearance}
}

// BulkApprovePayload names the selection and the filter active when it was
// made, so the action stays scoped to what the operator could see.
type BulkApprovePayload struct {
	IDs        []string `json:"ids" binding:"required,min=1"`
	Department string   `json:"department" binding:"required"`
	Search     string   `json:"search"`
	Status     string   `json:"status"`
}

// Overview godoc
// @Summary List clearance rows
// @Tags Clearance
// @Produce json
// @Param search query string false "Search by name, registration code or email"
// @Param status query string false "Filter by aggregate status"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /clearance [get]
func (h *ClearanceHandler) Overview(c *gin.Context) {
	var filter models.StudentFilter
	filter.Search = querySearch(c)
	filter.Clearance = models.ClearanceStatus(c.Query("status"))
	filter.Faculty = c.Query("faculty")
	filter.Page, filter.PageSize = parsePaging(c)

	rows, pagination, err := h.clearance.Overview(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, pagination)
}

// Approve godoc
// @Summary Approve a department for a student
// @Tags Clearance
// @Produce json
// @Param studentId path string true "Student ID"
// @Param department path string true "Department"
// @Success 200 {object} response.Envelope
// @Router /clearance/{studentId}/{department}/approve [post]
func (h *ClearanceHandler) Approve(c *gin.Context) {
	student, err := h.clearance.Approve(c.Request.Context(), c.Param("studentId"), models.Department(c.Param("department")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Reject godoc
// @Summary Reject a department for a student
// @Tags Clearance
// @Produce json
// @Param studentId path string true "Student ID"
// @Param department path string true "Department"
// @Success 200 {object} response.Envelope
// @Router /clearance/{studentId}/{department}/reject [post]
func (h *ClearanceHandler) Reject(c *gin.Context) {
	student, err := h.clearance.Reject(c.Request.Context(), c.Param("studentId"), models.Department(c.Param("department")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// BulkApprove godoc
// @Summary Approve a department for the selected visible students
// @Tags Clearance
// @Accept json
// @Produce json
// @Param payload body BulkApprovePayload true "Selection and active filter"
// @Success 200 {object} response.Envelope
// @Router /clearance/bulk-approve [post]
func (h *ClearanceHandler) BulkApprove(c *gin.Context) {
	var req BulkApprovePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.clearance.BulkApprove(
		c.Request.Context(),
		req.IDs,
		models.Department(req.Department),
		models.StudentFilter{Search: req.Search, Clearance: models.ClearanceStatus(req.Status)},
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
