package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradpoint/gms-api/internal/models"
	"github.com/gradpoint/gms-api/internal/service"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
	"github.com/gradpoint/gms-api/pkg/response"
)

// FinanceHandler exposes the graduation fee endpoints.
type FinanceHandler struct {
	finance *service.FinanceService
}

// NewFinanceHandler constructs FinanceHandler.
func NewFinanceHandler(finance *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

// ListPayments godoc
// @Summary List recorded payments
// @Tags Finance
// @Produce json
// @Param search query string false "Search by student ID or reference"
// @Param method query string false "Filter by payment method"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /finance/payments [get]
func (h *FinanceHandler) ListPayments(c *gin.Context) {
	var filter models.PaymentFilter
	filter.Search = querySearch(c)
	filter.Method = models.PaymentMethod(c.Query("method"))
	filter.Page, filter.PageSize = parsePaging(c)

	payments, pagination, err := h.finance.ListPayments(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payments, pagination)
}

// Record godoc
// @Summary Record a graduation fee payment
// @Tags Finance
// @Accept json
// @Produce json
// @Param payload body service.RecordPaymentRequest true "Payment payload"
// @Success 202 {object} response.Envelope
// @Router /finance/payments [post]
func (h *FinanceHandler) Record(c *gin.Context) {
	var req service.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	task, err := h.finance.RecordPayment(c.Request.Context(), req, actorID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, task)
}

// Waive godoc
// @Summary Waive a student's graduation fee
// @Tags Finance
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /finance/waive/{id} [post]
func (h *FinanceHandler) Waive(c *gin.Context) {
	student, err := h.finance.Waive(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Remind godoc
// @Summary Send payment reminders to selected unpaid students
// @Tags Finance
// @Accept json
// @Produce json
// @Param payload body service.BulkRemindRequest true "Selection and active filter"
// @Success 202 {object} response.Envelope
// @Router /finance/remind [post]
func (h *FinanceHandler) Remind(c *gin.Context) {
	var req service.BulkRemindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	task, err := h.finance.BulkRemind(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, task)
}

// Summary godoc
// @Summary Fee collection summary
// @Tags Finance
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /finance/summary [get]
func (h *FinanceHandler) Summary(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.finance.Summary(c.Request.Context()), nil)
}
