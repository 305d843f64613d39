package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradpoint/gms-api/internal/service"
	"github.com/gradpoint/gms-api/pkg/response"
)

// GraduationHandler exposes the eligibility and graduation list endpoints.
type GraduationHandler struct {
	graduation *service.GraduationService
}

// NewGraduationHandler constructs GraduationHandler.
func NewGraduationHandler(graduation *service.GraduationService) *GraduationHandler {
	return &GraduationHandler{graduation: graduation}
}

// Eligible godoc
// @Summary List eligible students
// @Tags Graduation
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /graduation/eligible [get]
func (h *GraduationHandler) Eligible(c *gin.Context) {
	eligible := h.graduation.EligibleStudents(c.Request.Context())
	response.JSON(c, http.StatusOK, eligible, nil, map[string]interface{}{"total": len(eligible)})
}

// List godoc
// @Summary Graduation list grouped by school, level and program
// @Tags Graduation
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /graduation/list [get]
func (h *GraduationHandler) List(c *gin.Context) {
	_, hierarchy := h.graduation.Snapshot(c.Request.Context())
	response.JSON(c, http.StatusOK, hierarchy, nil)
}
