package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leadradar/leadradar-api/internal/application"
	"github.com/leadradar/leadradar-api/pkg/metrics"
	"github.com/leadradar/leadradar-api/pkg/response"
	"github.com/leadradar/leadradar-api/pkg/utils"
	"gorm.io/gorm"
)

type ExportHandler struct {
	svc *application.ExportService
	m   *metrics.Metrics
}

func NewExportHandler(svc *application.ExportService, m *metrics.Metrics) *ExportHandler {
	return &ExportHandler{svc: svc, m: m}
}

// ExportLeads godoc
// @Summary Download a form's leads as CSV or XLSX
// @Tags leads
// @Security BearerAuth
// @Produce text/csv
// @Param id path int true "Form ID"
// @Param format query string false "Export format: csv (default) or xlsx"
// @Success 200 {string} string "File attachment"
// @Failure 400 {object} response.ErrorResponse "Invalid form id or format"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /admin/forms/{id}/leads/export [get]
func (h *ExportHandler) ExportLeads(c *gin.Context) {
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

	var (
		filename    string
		data        []byte
		contentType string
	)

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		filename, data, err = h.svc.ExportCSV(accountID, formID)
		contentType = "text/csv; charset=utf-8"
	case "xlsx":
		filename, data, err = h.svc.ExportXLSX(accountID, formID)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "format must be csv or xlsx"})
		return
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	if h.m != nil {
		h.m.RecordExportCreated()
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}
