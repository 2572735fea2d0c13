package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leadradar/leadradar-api/internal/application"
	"github.com/leadradar/leadradar-api/internal/domain/form"
	"github.com/leadradar/leadradar-api/internal/repository"
	"github.com/leadradar/leadradar-api/pkg/response"
	"github.com/leadradar/leadradar-api/pkg/utils"
	"gorm.io/gorm"
)

// FormFieldHandler serves the form-builder actions. The add, reorder,
// duplicate and delete endpoints are posted by plain HTML forms and answer
// with a 303 back to the builder page; update is a JSON API call.
type FormFieldHandler struct {
	svc   *application.FieldService
	audit repository.AuditRepo
}

func NewFormFieldHandler(svc *application.FieldService, audit repository.AuditRepo) *FormFieldHandler {
	return &FormFieldHandler{svc: svc, audit: audit}
}

func builderURL(formID uint) string {
	return fmt.Sprintf("/admin/forms/%d", formID)
}

// AddField godoc
// @Summary Add a field to a form
// @Tags fields
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Param input body form.AddFieldInput true "Field definition"
// @Success 303 "Redirect back to the form builder"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /api/form-fields [post]
func (h *FormFieldHandler) AddField(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input form.AddFieldInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	field, err := h.svc.AddField(accountID, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAuditWithConsole(c, "create", "form_field", fmt.Sprintf("%d", field.ID), nil, field, "field added", h.audit)
	c.Redirect(http.StatusSeeOther, builderURL(input.FormID))
}

// UpdateField godoc
// @Summary Update a field's attributes in place
// @Tags fields
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param fieldId path int true "Field ID"
// @Param input body form.UpdateFieldInput true "Attributes to update"
// @Success 200 {object} form.FormField
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Field not found"
// @Router /api/forms/{id}/fields/{fieldId} [put]
func (h *FormFieldHandler) UpdateField(c *gin.Context) {
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
	fieldID, err := utils.ParseIDParam(c, "fieldId")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid field id"})
		return
	}

	var input form.UpdateFieldInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	field, err := h.svc.UpdateField(accountID, fieldID, formID, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Field not found"})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, field)
}

// ReorderField godoc
// @Summary Swap a field with its neighbor
// @Tags fields
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Param input body form.ReorderFieldInput true "Field, form and direction"
// @Success 303 "Redirect back to the form builder"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Field not found"
// @Router /api/form-fields/reorder [post]
func (h *FormFieldHandler) ReorderField(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input form.ReorderFieldInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if err := h.svc.ReorderField(accountID, input); err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidDirection):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Field not found"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.Redirect(http.StatusSeeOther, builderURL(input.FormID))
}

// DuplicateField godoc
// @Summary Duplicate a field directly after the original
// @Tags fields
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Param input body form.DuplicateFieldInput true "Field and form"
// @Success 303 "Redirect back to the form builder"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Field not found"
// @Router /api/form-fields/duplicate [post]
func (h *FormFieldHandler) DuplicateField(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input form.DuplicateFieldInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	dup, err := h.svc.DuplicateField(accountID, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Field not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAuditWithConsole(c, "duplicate", "form_field", fmt.Sprintf("%d", input.FieldID), nil, dup, "field duplicated", h.audit)
	c.Redirect(http.StatusSeeOther, builderURL(input.FormID))
}

// DeleteField godoc
// @Summary Delete a field and its lead answers
// @Tags fields
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Param input body form.DeleteFieldInput true "Field and form"
// @Success 303 "Redirect back to the form builder"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Field not found"
// @Router /api/form-fields/delete [post]
func (h *FormFieldHandler) DeleteField(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input form.DeleteFieldInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if err := h.svc.DeleteField(accountID, input); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Field not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAuditWithConsole(c, "delete", "form_field", fmt.Sprintf("%d", input.FieldID), nil, nil, "field deleted", h.audit)
	c.Redirect(http.StatusSeeOther, builderURL(input.FormID))
}
