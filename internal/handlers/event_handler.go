package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/middleware"
	"github.com/gravadigital/eventi-api/internal/response"
	"github.com/gravadigital/eventi-api/internal/services"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

type CreateEventRequest struct {
	Title          string      `json:"title" binding:"required"`
	StartDate      string      `json:"start_date" binding:"required"`
	EndDate        string      `json:"end_date" binding:"required"`
	EventType      string      `json:"event_type"`
	InvitedUserIDs []uuid.UUID `json:"invited_user_ids"`
}

type UpdateEventRequest struct {
	Title          *string      `json:"title"`
	StartDate      *string      `json:"start_date"`
	EndDate        *string      `json:"end_date"`
	InvitedUserIDs *[]uuid.UUID `json:"invited_user_ids"`

	ConfirmedStartDate  *string    `json:"confirmed_start_date"`
	ConfirmedEndDate    *string    `json:"confirmed_end_date"`
	ConfirmedActivityID *uuid.UUID `json:"confirmed_activity_id"`
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		response.BadRequest(c, "invalid start_date format, expected YYYY-MM-DD")
		return
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		response.BadRequest(c, "invalid end_date format, expected YYYY-MM-DD")
		return
	}

	creator := middleware.CurrentUser(c)

	e, err := h.eventService.CreateEvent(services.CreateEventRequest{
		Title:          req.Title,
		StartDate:      startDate,
		EndDate:        endDate,
		EventType:      req.EventType,
		InvitedUserIDs: req.InvitedUserIDs,
	}, creator)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, e)
}

// UpdateEvent handles PUT /api/events/:event_id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "event_id")
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	startDate, ok := parseOptionalDate(c, req.StartDate, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseOptionalDate(c, req.EndDate, "end_date")
	if !ok {
		return
	}
	confirmedStart, ok := parseOptionalDate(c, req.ConfirmedStartDate, "confirmed_start_date")
	if !ok {
		return
	}
	confirmedEnd, ok := parseOptionalDate(c, req.ConfirmedEndDate, "confirmed_end_date")
	if !ok {
		return
	}

	e, err := h.eventService.UpdateEvent(id, services.UpdateEventRequest{
		Title:               req.Title,
		StartDate:           startDate,
		EndDate:             endDate,
		InvitedUserIDs:      req.InvitedUserIDs,
		ConfirmedStartDate:  confirmedStart,
		ConfirmedEndDate:    confirmedEnd,
		ConfirmedActivityID: req.ConfirmedActivityID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, e)
}

// DeleteEvent handles DELETE /api/events/:event_id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "event_id")
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetEvent handles GET /api/events/:event_id
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "event_id")
	if !ok {
		return
	}

	e, err := h.eventService.GetEventByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, e)
}

// GetAllEvents handles GET /api/events
func (h *EventHandler) GetAllEvents(c *gin.Context) {
	events, err := h.eventService.GetAllEvents()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, events)
}

// GetMyEvents handles GET /api/events/me
func (h *EventHandler) GetMyEvents(c *gin.Context) {
	u := middleware.CurrentUser(c)

	events, err := h.eventService.GetUserEvents(u.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, events)
}
