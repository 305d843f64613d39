package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradpoint/gms-api/internal/models"
	"github.com/gradpoint/gms-api/internal/service"
	"github.com/gradpoint/gms-api/pkg/response"
)

// CeremonyHandler exposes ceremony logistics endpoints.
type CeremonyHandler struct {
	ceremony *service.CeremonyService
}

// NewCeremonyHandler constructs CeremonyHandler.
func NewCeremonyHandler(ceremony *service.CeremonyService) *CeremonyHandler {
	return &CeremonyHandler{ceremony: ceremony}
}

// List godoc
// @Summary List ceremony attendees
// @Tags Ceremony
// @Produce json
// @Param search query string false "Search by name or student ID"
// @Param confirmed query bool false "Filter by confirmation"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /ceremony/attendees [get]
func (h *CeremonyHandler) List(c *gin.Context) {
	var filter models.CeremonyFilter
	filter.Search = querySearch(c)
	if confirmed := c.Query("confirmed"); confirmed == "true" || confirmed == "false" {
		v := confirmed == "true"
		filter.Confirmed = &v
	}
	filter.Page, filter.PageSize = parsePaging(c)

	attendees, pagination, err := h.ceremony.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, attendees, pagination)
}

// Sync godoc
// @Summary Add newly eligible students to the attendee roster
// @Tags Ceremony
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ceremony/sync [post]
func (h *CeremonyHandler) Sync(c *gin.Context) {
	added := h.ceremony.SyncEligible(c.Request.Context())
	response.JSON(c, http.StatusOK, gin.H{"added": added}, nil)
}

// Confirm godoc
// @Summary Confirm attendance and assign a seat
// @Tags Ceremony
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /ceremony/attendees/{id}/confirm [post]
func (h *CeremonyHandler) Confirm(c *gin.Context) {
	attendee, err := h.ceremony.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, attendee, nil)
}

// CollectGown godoc
// @Summary Record gown collection
// @Tags Ceremony
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /ceremony/attendees/{id}/gown [post]
func (h *CeremonyHandler) CollectGown(c *gin.Context) {
	attendee, err := h.ceremony.CollectGown(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, attendee, nil)
}

// Summary godoc
// @Summary Ceremony logistics summary
// @Tags Ceremony
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ceremony/summary [get]
func (h *CeremonyHandler) Summary(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.ceremony.Summary(c.Request.Context()), nil)
}
