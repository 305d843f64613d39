package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gradpoint/gms-api/internal/models"
	"github.com/gradpoint/gms-api/internal/service"
	"github.com/gradpoint/gms-api/pkg/response"
)

// AlumniHandler exposes the alumni register endpoints.
type AlumniHandler struct {
	alumni *service.AlumniService
}

// NewAlumniHandler constructs AlumniHandler.
func NewAlumniHandler(alumni *service.AlumniService) *AlumniHandler {
	return &AlumniHandler{alumni: alumni}
}

// List godoc
// @Summary List alumni
// @Tags Alumni
// @Produce json
// @Param search query string false "Search by name, student ID or email"
// @Param year query int false "Filter by graduation year"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /alumni [get]
func (h *AlumniHandler) List(c *gin.Context) {
	var filter models.AlumniFilter
	filter.Search = querySearch(c)
	if year, err := strconv.Atoi(c.Query("year")); err == nil {
		filter.GraduationYear = year
	}
	filter.Page, filter.PageSize = parsePaging(c)

	alumni, pagination, err := h.alumni.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, alumni, pagination)
}

// Rollover godoc
// @Summary Roll eligible students onto the alumni register
// @Tags Alumni
// @Produce json
// @Success 202 {object} response.Envelope
// @Router /alumni/rollover [post]
func (h *AlumniHandler) Rollover(c *gin.Context) {
	task, err := h.alumni.Rollover(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, task)
}
