package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leadradar/leadradar-api/internal/application"
	"github.com/leadradar/leadradar-api/internal/domain/lead"
	"github.com/leadradar/leadradar-api/internal/repository"
	"github.com/leadradar/leadradar-api/pkg/metrics"
	"github.com/leadradar/leadradar-api/pkg/response"
	"github.com/leadradar/leadradar-api/pkg/utils"
	"gorm.io/gorm"
)

type LeadHandler struct {
	svc   *application.LeadService
	audit repository.AuditRepo
	m     *metrics.Metrics
}

func NewLeadHandler(svc *application.LeadService, audit repository.AuditRepo, m *metrics.Metrics) *LeadHandler {
	return &LeadHandler{svc: svc, audit: audit, m: m}
}

// Submit godoc
// @Summary Capture a lead from a public form
// @Description Accepts the capture page's POST. Field answers arrive as
// @Description field_<fieldId> entries; unknown fields are ignored.
// @Tags leads
// @Accept x-www-form-urlencoded
// @Produce json
// @Param formId formData int true "Form ID"
// @Param redirectTo formData string false "Post-submit redirect target"
// @Success 201 {object} lead.Lead
// @Success 303 "Redirect to redirectTo"
// @Failure 400 {object} response.ErrorResponse "Missing or invalid answer"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /api/leads [post]
func (h *LeadHandler) Submit(c *gin.Context) {
	var req struct {
		FormID     uint   `form:"formId" binding:"required"`
		RedirectTo string `form:"redirectTo"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	input := lead.SubmitInput{
		FormID: req.FormID,
		Values: application.FieldValuesFromSubmission(c.Request.PostForm),
	}

	// A logged-in booth user gets attached to the lead; anonymous capture
	// pages submit without a session.
	if userID, err := utils.GetUserIDFromContext(c); err == nil && userID != 0 {
		input.CreatedByUserID = &userID
	}

	l, err := h.svc.SubmitLead(input)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		case errors.Is(err, application.ErrRequiredField),
			errors.Is(err, application.ErrInvalidFieldValue):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	if h.m != nil {
		h.m.RecordLeadSubmitted()
	}

	if req.RedirectTo != "" {
		c.Redirect(http.StatusSeeOther, req.RedirectTo)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// UpdateStatus godoc
// @Summary Move a lead to a new status
// @Tags leads
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param input body lead.StatusUpdateInput true "Lead, status and optional notes"
// @Success 200 {object} lead.Lead
// @Success 303 "Redirect back to the lead detail page"
// @Failure 400 {object} response.ErrorResponse "Unknown status"
// @Failure 404 {object} response.ErrorResponse "Lead not found"
// @Router /api/leads/status [post]
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input lead.StatusUpdateInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	l, err := h.svc.UpdateStatus(accountID, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Lead not found"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	utils.LogAuditWithConsole(c, "status_change", "lead", fmt.Sprintf("%d", l.ID), nil, l, "lead status updated", h.audit)

	if input.RedirectTo != "" {
		c.Redirect(http.StatusSeeOther, input.RedirectTo)
		return
	}
	if input.FormID != 0 {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/forms/%d/leads/%d", input.FormID, l.ID))
		return
	}
	c.JSON(http.StatusOK, l)
}

// ListLeads godoc
// @Summary List a form's leads, oldest first
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {array} lead.Lead
// @Failure 400 {object} response.ErrorResponse "Invalid form id"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /api/forms/{id}/leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	formID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid form id"})
		return
	}

	leads, err := h.svc.ListLeads(accountID, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, leads)
}

// GetLead godoc
// @Summary Get a lead with its answers
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} lead.Lead
// @Failure 400 {object} response.ErrorResponse "Invalid lead id"
// @Failure 404 {object} response.ErrorResponse "Lead not found"
// @Router /api/leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid lead id"})
		return
	}

	l, err := h.svc.GetLead(accountID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Lead not found"})
		return
	}
	c.JSON(http.StatusOK, l)
}
