package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/leadradar/leadradar-api/internal/application"
	"github.com/leadradar/leadradar-api/internal/domain/form"
	"github.com/leadradar/leadradar-api/pkg/response"
	"github.com/leadradar/leadradar-api/pkg/utils"
	"gorm.io/gorm"
)

type FormHandler struct {
	svc *application.FormService
}

func NewFormHandler(svc *application.FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

// ListForms godoc
// @Summary List the account's forms, newest first
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Success 200 {array} form.Form
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	forms, err := h.svc.ListForms(accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, forms)
}

// GetForm godoc
// @Summary Get a form with its fields in display order
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} form.Form
// @Failure 400 {object} response.ErrorResponse "Invalid form id"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /api/forms/{id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid form id"})
		return
	}

	f, err := h.svc.GetForm(accountID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		return
	}
	c.JSON(http.StatusOK, f)
}

// CreateForm godoc
// @Summary Create a capture form
// @Tags forms
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param input body form.CreateFormInput true "Form info"
// @Success 201 {object} form.Form
// @Success 303 "Redirect to redirectTo"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Referenced event not found"
// @Router /api/forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input form.CreateFormInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	f, err := h.svc.CreateForm(accountID, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	if input.RedirectTo != "" {
		// The builder posts redirectTo with an {id} placeholder so it can
		// land on the page of the form that was just created.
		target := strings.ReplaceAll(input.RedirectTo, "{id}", fmt.Sprint(f.ID))
		c.Redirect(http.StatusSeeOther, target)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// UpdateForm godoc
// @Summary Partially update a form
// @Tags forms
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Form ID"
// @Param input body form.UpdateFormInput true "Fields to update"
// @Success 200 {object} form.Form
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /api/forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid form id"})
		return
	}

	var input form.UpdateFormInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	f, err := h.svc.UpdateForm(accountID, id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, f)
}
