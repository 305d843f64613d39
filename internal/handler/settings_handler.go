package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradpoint/gms-api/internal/service"
	"github.com/gradpoint/gms-api/pkg/response"
)

// SettingsHandler exposes the settings screen endpoints.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Info godoc
// @Summary System information
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings/system [get]
func (h *SettingsHandler) Info(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.settings.Info(c.Request.Context()), nil)
}

// Backup godoc
// @Summary Run the simulated backup
// @Tags Settings
// @Produce json
// @Success 202 {object} response.Envelope
// @Router /settings/backup [post]
func (h *SettingsHandler) Backup(c *gin.Context) {
	task, err := h.settings.Backup(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, task)
}
