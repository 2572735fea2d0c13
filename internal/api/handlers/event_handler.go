package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leadradar/leadradar-api/internal/application"
	"github.com/leadradar/leadradar-api/internal/domain/event"
	"github.com/leadradar/leadradar-api/pkg/response"
	"github.com/leadradar/leadradar-api/pkg/utils"
	"gorm.io/gorm"
)

type EventHandler struct {
	svc *application.EventService
}

func NewEventHandler(svc *application.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// ListEvents godoc
// @Summary List the account's events, newest start date first
// @Tags events
// @Security BearerAuth
// @Produce json
// @Success 200 {array} event.Event
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	events, err := h.svc.ListEvents(accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get event by ID
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} event.Event
// @Failure 400 {object} response.ErrorResponse "Invalid event id"
// @Failure 404 {object} response.ErrorResponse "Event not found"
// @Router /api/events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid event id"})
		return
	}

	e, err := h.svc.GetEvent(accountID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Event not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param input body event.CreateEventInput true "Event info"
// @Success 201 {object} event.Event
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 500 {object} response.ErrorResponse "Failed to create event"
// @Router /api/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input event.CreateEventInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	e, err := h.svc.CreateEvent(accountID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, e)
}

// UpdateEvent godoc
// @Summary Partially update an event
// @Tags events
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Event ID"
// @Param input body event.UpdateEventInput true "Fields to update"
// @Success 200 {object} event.Event
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Event not found"
// @Router /api/events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	accountID, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid event id"})
		return
	}

	var input event.UpdateEventInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	e, err := h.svc.UpdateEvent(accountID, id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Event not found"})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, e)
}
